package attendance

import (
	"context"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.EventRepository
	employeeRepo   employee.EmployeeRepository
	loc            *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.EventRepository,
	employeeRepo employee.EmployeeRepository,
	loc *time.Location,
) attendance.AttendanceService {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		loc:            loc,
	}
}

func (s *AttendanceServiceImpl) RecordEvent(ctx context.Context, req attendance.RecordEventRequest) (attendance.EventResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.EventResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.EventResponse{}, err
	}
	if !emp.IsActive {
		return attendance.EventResponse{}, employee.ErrEmployeeInactive
	}

	ts, _ := validator.IsValidDateTime(req.Timestamp)

	created, err := s.attendanceRepo.Create(ctx, attendance.Event{
		EmployeeID: emp.ID,
		Timestamp:  ts,
		Type:       attendance.EventType(req.Type),
	})
	if err != nil {
		return attendance.EventResponse{}, err
	}

	return toEventResponse(created), nil
}

func (s *AttendanceServiceImpl) ListEvents(ctx context.Context, filter attendance.EventFilter) ([]attendance.EventResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	// Default range is the current month in the company timezone.
	now := time.Now().In(s.loc)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
	endExclusive := start.AddDate(0, 1, 0)

	if filter.StartDate != "" {
		d, _ := validator.IsValidDate(filter.StartDate)
		start = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	}
	if filter.EndDate != "" {
		d, _ := validator.IsValidDate(filter.EndDate)
		endExclusive = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc).AddDate(0, 0, 1)
	}

	events, err := s.attendanceRepo.ListByEmployeeRange(ctx, filter.EmployeeID, start, endExclusive)
	if err != nil {
		return nil, err
	}

	resp := make([]attendance.EventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, toEventResponse(ev))
	}
	return resp, nil
}

func toEventResponse(ev attendance.Event) attendance.EventResponse {
	return attendance.EventResponse{
		ID:         ev.ID,
		EmployeeID: ev.EmployeeID,
		Timestamp:  ev.Timestamp.Format(time.RFC3339),
		Type:       string(ev.Type),
	}
}
