package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.EventRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.EventRepository.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, event attendance.Event) (attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_events (id, employee_id, event_timestamp, event_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, employee_id, event_timestamp, event_type, created_at
	`

	var created attendance.Event
	err := q.QueryRow(ctx, query,
		uuid.NewString(), event.EmployeeID, event.Timestamp, event.Type,
	).Scan(&created.ID, &created.EmployeeID, &created.Timestamp, &created.Type, &created.CreatedAt)
	if err != nil {
		return attendance.Event{}, fmt.Errorf("failed to create attendance event: %w", err)
	}

	return created, nil
}

// ListByEmployeeRange implements attendance.EventRepository.
func (a *attendanceRepositoryImpl) ListByEmployeeRange(ctx context.Context, employeeID string, start, endExclusive time.Time) ([]attendance.Event, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, event_timestamp, event_type, created_at
		FROM attendance_events
		WHERE employee_id = $1 AND event_timestamp >= $2 AND event_timestamp < $3
		ORDER BY event_timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, endExclusive)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance events: %w", err)
	}
	defer rows.Close()

	var events []attendance.Event
	for rows.Next() {
		var ev attendance.Event
		if err := rows.Scan(&ev.ID, &ev.EmployeeID, &ev.Timestamp, &ev.Type, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
