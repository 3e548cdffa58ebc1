package leave

import "time"

type Leave struct {
	ID         string
	EmployeeID string
	LeaveType  LeaveType
	Details    string
	// StartDate and EndDate are an inclusive date range.
	StartDate  time.Time
	EndDate    time.Time
	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type LeaveType string

const (
	LeaveTypeSick      LeaveType = "sick"
	LeaveTypeMaternity LeaveType = "maternity"
	LeaveTypeUnpaid    LeaveType = "unpaid"
)
