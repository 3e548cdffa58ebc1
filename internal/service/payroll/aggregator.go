package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// AttendanceAggregator reduces punch events and approved leave into the
// attendance numbers a payslip carries. Day bucketing uses the company
// timezone.
type AttendanceAggregator struct {
	loc *time.Location
}

func NewAttendanceAggregator(loc *time.Location) *AttendanceAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceAggregator{loc: loc}
}

// WorkingDays counts Monday-Friday dates in the inclusive range.
// Weekend exclusion is a fixed business rule, not configurable.
func (a *AttendanceAggregator) WorkingDays(start, end time.Time) int {
	count := 0
	for d := dateOnly(start, a.loc); !d.After(dateOnly(end, a.loc)); d = d.AddDate(0, 0, 1) {
		if isWeekday(d) {
			count++
		}
	}
	return count
}

// Aggregate produces days worked, total hours and regular hours for one
// employee over the inclusive [start, end] range.
//
// With autoCalculate false the employee is assumed to have worked every
// working day at WorkHoursPerDay hours, minus approved-leave weekdays.
// With autoCalculate true the punches are authoritative: a time-in pairs
// with the next time-out on the same calendar date, unmatched punches
// contribute nothing, and leave is informational only.
func (a *AttendanceAggregator) Aggregate(
	events []attendance.Event,
	approvedLeaves []leave.Leave,
	start, end time.Time,
	autoCalculate bool,
) payroll.AttendanceTotals {
	if !autoCalculate {
		return a.assumeFullAttendance(approvedLeaves, start, end)
	}
	return a.fromEvents(events)
}

func (a *AttendanceAggregator) assumeFullAttendance(approvedLeaves []leave.Leave, start, end time.Time) payroll.AttendanceTotals {
	days := a.WorkingDays(start, end) - a.leaveWorkingDays(approvedLeaves, start, end)
	if days < 0 {
		days = 0
	}

	daysWorked := decimal.NewFromInt(int64(days))
	totalHours := daysWorked.Mul(decimal.NewFromInt(payroll.WorkHoursPerDay))

	return payroll.AttendanceTotals{
		DaysWorked:   daysWorked,
		TotalHours:   totalHours,
		RegularHours: totalHours,
	}
}

// leaveWorkingDays counts distinct weekdays in [start, end] covered by at
// least one approved leave. Overlapping leaves count a day once.
func (a *AttendanceAggregator) leaveWorkingDays(approvedLeaves []leave.Leave, start, end time.Time) int {
	covered := make(map[string]bool)
	rangeStart := dateOnly(start, a.loc)
	rangeEnd := dateOnly(end, a.loc)

	for _, l := range approvedLeaves {
		if !l.IsApproved {
			continue
		}
		from := dateOnly(l.StartDate, a.loc)
		if from.Before(rangeStart) {
			from = rangeStart
		}
		to := dateOnly(l.EndDate, a.loc)
		if to.After(rangeEnd) {
			to = rangeEnd
		}
		for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
			if isWeekday(d) {
				covered[d.Format("2006-01-02")] = true
			}
		}
	}

	return len(covered)
}

func (a *AttendanceAggregator) fromEvents(events []attendance.Event) payroll.AttendanceTotals {
	hoursPerDay := make(map[string]decimal.Decimal)

	var pendingIn *time.Time
	var pendingDate string

	for _, ev := range events {
		ts := ev.Timestamp.In(a.loc)
		day := ts.Format("2006-01-02")

		// A pending time-in from a previous date never matches; it is
		// simply dropped.
		if pendingIn != nil && pendingDate != day {
			pendingIn = nil
		}

		switch ev.Type {
		case attendance.EventTypeTimeIn:
			if pendingIn == nil {
				t := ts
				pendingIn = &t
				pendingDate = day
			}
		case attendance.EventTypeTimeOut:
			if pendingIn == nil {
				continue
			}
			worked := ts.Sub(*pendingIn)
			if worked > 0 {
				hours := decimal.NewFromInt(int64(worked / time.Second)).
					Div(decimal.NewFromInt(3600))
				hoursPerDay[day] = hoursPerDay[day].Add(hours)
			}
			pendingIn = nil
		}
	}

	daysWorked := decimal.NewFromInt(int64(len(hoursPerDay)))
	totalHours := decimal.Zero
	for _, h := range hoursPerDay {
		totalHours = totalHours.Add(h)
	}
	totalHours = totalHours.Round(2)

	regularCap := daysWorked.Mul(decimal.NewFromInt(payroll.WorkHoursPerDay))
	regularHours := totalHours
	if regularHours.GreaterThan(regularCap) {
		regularHours = regularCap
	}

	return payroll.AttendanceTotals{
		DaysWorked:   daysWorked,
		TotalHours:   totalHours,
		RegularHours: regularHours,
	}
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

func isWeekday(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
