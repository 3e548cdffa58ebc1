package payroll

import "errors"

var (
	ErrPayslipNotFound      = errors.New("payslip not found")
	ErrPayslipPeriodOverlap = errors.New("payslip already exists for an overlapping period")
	ErrPayslipLocked        = errors.New("payslip is no longer editable")
	ErrInvalidStatusChange  = errors.New("invalid payslip status transition")
	ErrAllowanceNotFound    = errors.New("allowance not found")
	ErrDeductionNotFound    = errors.New("deduction not found")
	ErrInvalidWorkingDays   = errors.New("total working days must be greater than zero")
	ErrNoEmployeesRequested = errors.New("at least one employee is required")
	ErrEmptyTaxSchedule     = errors.New("tax schedule has no brackets")
)
