package attendance

import (
	"context"
	"time"
)

// EventRepository defines data access methods for attendance events.
type EventRepository interface {
	Create(ctx context.Context, event Event) (Event, error)

	// ListByEmployeeRange returns events for an employee with
	// start <= timestamp < endExclusive, ordered by timestamp ascending.
	ListByEmployeeRange(ctx context.Context, employeeID string, start, endExclusive time.Time) ([]Event, error)
}
