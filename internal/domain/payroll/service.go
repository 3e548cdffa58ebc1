package payroll

import "context"

// PayrollService defines the payslip engine's business operations.
type PayrollService interface {
	// GeneratePayslips runs the calculation pipeline for each requested
	// employee. Each employee is persisted in its own transaction;
	// per-employee failures are collected and never abort siblings.
	GeneratePayslips(ctx context.Context, req GeneratePayslipsRequest) (GeneratePayslipsResponse, error)

	GetPayslip(ctx context.Context, id string) (PayslipResponse, error)
	ListPayslips(ctx context.Context, filter PayslipFilter) (ListPayslipsResponse, error)

	// UpdatePayslip patches a draft/generated payslip. Changing the
	// period, total working days or pay frequency triggers a full
	// recomputation with current field values.
	UpdatePayslip(ctx context.Context, req UpdatePayslipRequest) (PayslipResponse, error)

	DeletePayslip(ctx context.Context, id string) error

	GetStats(ctx context.Context, filter StatsFilter) (PayslipStatsResponse, error)

	// Allowance / deduction management
	CreateAllowance(ctx context.Context, req CreateAllowanceRequest) (AllowanceResponse, error)
	ListAllowances(ctx context.Context, employeeID string, activeOnly bool) ([]AllowanceResponse, error)
	UpdateAllowance(ctx context.Context, req UpdateAllowanceRequest) (AllowanceResponse, error)
	CreateDeduction(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	ListDeductions(ctx context.Context, employeeID string, activeOnly bool) ([]DeductionResponse, error)
	UpdateDeduction(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error)
}
