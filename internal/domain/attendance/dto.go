package attendance

import (
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

type RecordEventRequest struct {
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"` // RFC3339
	Type       string `json:"type"`      // "time_in" or "time_out"
}

func (r *RecordEventRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.Timestamp); !ok {
		errs = append(errs, validator.ValidationError{Field: "timestamp", Message: "must be a valid RFC3339 timestamp"})
	}
	if !validator.IsInSlice(r.Type, []string{string(EventTypeTimeIn), string(EventTypeTimeOut)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be 'time_in' or 'time_out'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventFilter struct {
	EmployeeID string
	StartDate  string // YYYY-MM-DD, optional
	EndDate    string // YYYY-MM-DD, optional
}

func (f *EventFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if f.StartDate != "" {
		if _, ok := validator.IsValidDate(f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if f.EndDate != "" {
		if _, ok := validator.IsValidDate(f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EventResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type"`
}
