package payroll

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRepository defines data access methods for payslips and the
// standing allowance/deduction records.
type PayrollRepository interface {
	// Allowances
	CreateAllowance(ctx context.Context, a Allowance) (Allowance, error)
	GetAllowanceByID(ctx context.Context, id string) (Allowance, error)
	ListAllowancesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Allowance, error)
	UpdateAllowance(ctx context.Context, req UpdateAllowanceRequest) (Allowance, error)

	// Deductions
	CreateDeduction(ctx context.Context, d Deduction) (Deduction, error)
	GetDeductionByID(ctx context.Context, id string) (Deduction, error)
	ListDeductionsByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]Deduction, error)
	UpdateDeduction(ctx context.Context, req UpdateDeductionRequest) (Deduction, error)

	// Payslips
	CreatePayslip(ctx context.Context, p Payslip) (Payslip, error)
	CreatePayslipLines(ctx context.Context, payslipID string, allowances []PayslipAllowance, deductions []PayslipDeduction) error
	ReplacePayslipLines(ctx context.Context, payslipID string, allowances []PayslipAllowance, deductions []PayslipDeduction) error
	GetPayslipByID(ctx context.Context, id string) (Payslip, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) ([]Payslip, int64, error)
	UpdatePayslip(ctx context.Context, p Payslip) (Payslip, error)
	DeletePayslip(ctx context.Context, id string) error

	// HasOverlappingPayslip reports whether a payslip exists for the
	// employee whose period contains [start, end], i.e.
	// start >= existing.start AND end <= existing.end. Range
	// containment, not exact equality: a wider existing period blocks a
	// narrower one. excludeID ignores one payslip, so a period edit does
	// not collide with the payslip being edited; pass "" on generation.
	HasOverlappingPayslip(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)

	// YTDGross sums gross_salary over the employee's approved/paid
	// payslips whose start date falls in the given calendar year.
	YTDGross(ctx context.Context, employeeID string, year int) (decimal.Decimal, error)

	// Stats
	GetStats(ctx context.Context, filter StatsFilter) (PayslipStats, error)

	// ListForRegister returns payslips (with employee names) whose
	// period falls inside [start, end], for the XLSX register export.
	ListForRegister(ctx context.Context, start, end time.Time) ([]Payslip, error)
}
