package leave

import (
	"context"
	"time"
)

// LeaveRepository defines data access methods for leave records.
type LeaveRepository interface {
	Create(ctx context.Context, l Leave) (Leave, error)
	GetByID(ctx context.Context, id string) (Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, error)

	// ListApprovedOverlapping returns approved leaves for the employee
	// whose inclusive date range overlaps [start, end].
	ListApprovedOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]Leave, error)

	Approve(ctx context.Context, id string) (Leave, error)
}
