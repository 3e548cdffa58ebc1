package leave

import "context"

// LeaveService defines business logic for leave records.
type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) ([]LeaveResponse, error)

	// Approve marks a leave as approved. Only approved leaves suppress
	// attendance expectations during payroll generation.
	Approve(ctx context.Context, id string) (LeaveResponse, error)
}
