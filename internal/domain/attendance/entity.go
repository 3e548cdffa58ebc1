package attendance

import "time"

// Event is a single resolved punch. Capture (biometric or manual) happens
// upstream; the engine only consumes the ordered event stream.
type Event struct {
	ID         string
	EmployeeID string
	Timestamp  time.Time
	Type       EventType
	CreatedAt  time.Time
}

type EventType string

const (
	EventTypeTimeIn  EventType = "time_in"
	EventTypeTimeOut EventType = "time_out"
)
