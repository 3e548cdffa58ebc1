package attendance

import "context"

// AttendanceService defines business logic for attendance events.
type AttendanceService interface {
	// RecordEvent stores a manual punch for an employee.
	RecordEvent(ctx context.Context, req RecordEventRequest) (EventResponse, error)

	// ListEvents retrieves an employee's punches over a date range.
	ListEvents(ctx context.Context, filter EventFilter) ([]EventResponse, error)
}
