package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========== GENERATION DTOs ==========

type GeneratePayslipsRequest struct {
	EmployeeIDs             []string `json:"employee_ids"`
	StartDate               string   `json:"start_date"` // YYYY-MM-DD
	EndDate                 string   `json:"end_date"`   // YYYY-MM-DD, inclusive
	TotalWorkingDays        int      `json:"total_working_days"`
	AutoCalculateAttendance bool     `json:"auto_calculate_attendance"`
	PayFrequency            string   `json:"pay_frequency"`
}

func (r *GeneratePayslipsRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employee_ids", Message: "at least one employee is required"})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if r.TotalWorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_working_days", Message: "must be greater than zero"})
	}
	if !validator.IsInSlice(r.PayFrequency, PayFrequencies) {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be one of weekly, biweekly, semi_monthly, monthly"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Period returns the parsed date range. Call Validate first.
func (r *GeneratePayslipsRequest) Period() (start, end time.Time) {
	start, _ = validator.IsValidDate(r.StartDate)
	end, _ = validator.IsValidDate(r.EndDate)
	return start, end
}

// GenerationError is a per-employee failure inside a batch; it never
// aborts sibling employees.
type GenerationError struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

type GeneratePayslipsResponse struct {
	Generated []string          `json:"generated"`
	Errors    []GenerationError `json:"errors"`
}

// ========== PAYSLIP DTOs ==========

type UpdatePayslipRequest struct {
	ID               string
	StartDate        *string `json:"start_date,omitempty"`
	EndDate          *string `json:"end_date,omitempty"`
	TotalWorkingDays *int    `json:"total_working_days,omitempty"`
	PayFrequency     *string `json:"pay_frequency,omitempty"`
	Status           *string `json:"status,omitempty"`
}

func (r *UpdatePayslipRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}
	if r.TotalWorkingDays != nil && *r.TotalWorkingDays <= 0 {
		errs = append(errs, validator.ValidationError{Field: "total_working_days", Message: "must be greater than zero"})
	}
	if r.PayFrequency != nil && !validator.IsInSlice(*r.PayFrequency, PayFrequencies) {
		errs = append(errs, validator.ValidationError{Field: "pay_frequency", Message: "must be one of weekly, biweekly, semi_monthly, monthly"})
	}
	if r.Status != nil && !ValidPayslipStatus(*r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "must be one of draft, generated, approved, paid, cancelled"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RequiresRecompute reports whether the patch touches inputs of the
// calculation pipeline. Recomputation always uses current field values.
func (r *UpdatePayslipRequest) RequiresRecompute() bool {
	return r.StartDate != nil || r.EndDate != nil || r.TotalWorkingDays != nil || r.PayFrequency != nil
}

type PayslipFilter struct {
	EmployeeID *string
	Status     *string
	StartDate  *time.Time
	EndDate    *time.Time
	Page       int
	Limit      int
}

type PayslipAllowanceResponse struct {
	ID            string          `json:"id"`
	AllowanceType string          `json:"allowance_type"`
	Amount        decimal.Decimal `json:"amount"`
}

type PayslipDeductionResponse struct {
	ID            string          `json:"id"`
	DeductionType string          `json:"deduction_type"`
	Amount        decimal.Decimal `json:"amount"`
}

type PayslipResponse struct {
	ID               string                     `json:"id"`
	EmployeeID       string                     `json:"employee_id"`
	EmployeeName     string                     `json:"employee_name,omitempty"`
	StartDate        string                     `json:"start_date"`
	EndDate          string                     `json:"end_date"`
	TotalWorkingDays int                        `json:"total_working_days"`
	DaysWorked       decimal.Decimal            `json:"days_worked"`
	TotalHours       decimal.Decimal            `json:"total_hours"`
	RegularHours     decimal.Decimal            `json:"regular_hours"`
	BasicPay         decimal.Decimal            `json:"basic_pay"`
	TotalAllowances  decimal.Decimal            `json:"total_allowances"`
	TotalDeductions  decimal.Decimal            `json:"total_deductions"`
	GrossSalary      decimal.Decimal            `json:"gross_salary"`
	WithholdingTax   decimal.Decimal            `json:"withholding_tax"`
	NetSalary        decimal.Decimal            `json:"net_salary"`
	YTDGross         decimal.Decimal            `json:"ytd_gross"`
	Status           string                     `json:"status"`
	PayFrequency     string                     `json:"pay_frequency"`
	GeneratedAt      string                     `json:"generated_at"`
	ApprovedAt       *string                    `json:"approved_at,omitempty"`
	Allowances       []PayslipAllowanceResponse `json:"allowances,omitempty"`
	Deductions       []PayslipDeductionResponse `json:"deductions,omitempty"`
}

type ListPayslipsResponse struct {
	Data       []PayslipResponse `json:"data"`
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
}

// ========== STATS DTOs ==========

type StatsFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Department *string
}

type PayslipStatsResponse struct {
	TotalCount     int             `json:"total_count"`
	TotalGross     decimal.Decimal `json:"total_gross"`
	TotalNet       decimal.Decimal `json:"total_net"`
	CountsByStatus map[string]int  `json:"counts_by_status"`
}

// ========== ALLOWANCE / DEDUCTION DTOs ==========

type CreateAllowanceRequest struct {
	EmployeeID    string           `json:"-"`
	AllowanceType string           `json:"allowance_type"`
	Value         *decimal.Decimal `json:"value"`
	Description   *string          `json:"description,omitempty"`
	IsTaxable     *bool            `json:"is_taxable,omitempty"` // defaults to true
}

func (r *CreateAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.AllowanceType, AllowanceTypes) {
		errs = append(errs, validator.ValidationError{Field: "allowance_type", Message: "must be one of meal, transportation, medical, bonus"})
	}
	if r.Value == nil {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "is required"})
	} else if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAllowanceRequest struct {
	ID       string
	Value    *decimal.Decimal `json:"value,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AllowanceResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	AllowanceType string          `json:"allowance_type"`
	Value         decimal.Decimal `json:"value"`
	Description   *string         `json:"description,omitempty"`
	IsTaxable     bool            `json:"is_taxable"`
	IsActive      bool            `json:"is_active"`
}

type CreateDeductionRequest struct {
	EmployeeID    string           `json:"-"`
	DeductionType string           `json:"deduction_type"`
	Value         *decimal.Decimal `json:"value"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.DeductionType, DeductionTypes) {
		errs = append(errs, validator.ValidationError{Field: "deduction_type", Message: "must be one of tax, health, social_security, others"})
	}
	if r.Value == nil {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "is required"})
	} else if r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	ID       string
	Value    *decimal.Decimal `json:"value,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Value != nil && r.Value.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "value", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	DeductionType string          `json:"deduction_type"`
	Value         decimal.Decimal `json:"value"`
	IsActive      bool            `json:"is_active"`
}
