package response

import (
	"errors"
	"net/http"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Conflict(w, "Employee is inactive")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrEventNotFound):
		NotFound(w, "Attendance event not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, leave.ErrLeaveAlreadyApproved):
		Conflict(w, "Leave already approved")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payroll.ErrAllowanceNotFound):
		NotFound(w, "Allowance not found")
	case errors.Is(err, payroll.ErrDeductionNotFound):
		NotFound(w, "Deduction not found")
	case errors.Is(err, payroll.ErrPayslipPeriodOverlap):
		Conflict(w, "A payslip already covers this period")
	case errors.Is(err, payroll.ErrPayslipLocked):
		Conflict(w, "Payslip is no longer editable")
	case errors.Is(err, payroll.ErrInvalidStatusChange):
		Conflict(w, "Invalid payslip status transition")
	case errors.Is(err, payroll.ErrInvalidWorkingDays):
		BadRequest(w, "Total working days must be greater than zero", nil)
	case errors.Is(err, payroll.ErrNoEmployeesRequested):
		BadRequest(w, "At least one employee is required", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
