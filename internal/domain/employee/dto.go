package employee

import (
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	FullName   string           `json:"full_name"`
	SalaryType string           `json:"salary_type"` // "hourly" or "monthly"
	BaseSalary *decimal.Decimal `json:"base_salary"`
	Department *string          `json:"department,omitempty"`
	Details    *string          `json:"details,omitempty"`
	HireDate   *string          `json:"hire_date,omitempty"` // YYYY-MM-DD, defaults to today
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsInSlice(r.SalaryType, []string{string(SalaryTypeHourly), string(SalaryTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be 'hourly' or 'monthly'"})
	}
	if r.BaseSalary == nil {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "is required"})
	} else if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "hire_date", Message: "must be a valid date (YYYY-MM-DD)"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID         string
	FullName   *string          `json:"full_name,omitempty"`
	SalaryType *string          `json:"salary_type,omitempty"`
	BaseSalary *decimal.Decimal `json:"base_salary,omitempty"`
	Department *string          `json:"department,omitempty"`
	Details    *string          `json:"details,omitempty"`
	IsActive   *bool            `json:"is_active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.SalaryType != nil && !validator.IsInSlice(*r.SalaryType, []string{string(SalaryTypeHourly), string(SalaryTypeMonthly)}) {
		errs = append(errs, validator.ValidationError{Field: "salary_type", Message: "must be 'hourly' or 'monthly'"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID         string          `json:"id"`
	FullName   string          `json:"full_name"`
	SalaryType string          `json:"salary_type"`
	BaseSalary decimal.Decimal `json:"base_salary"`
	Department *string         `json:"department,omitempty"`
	Details    *string         `json:"details,omitempty"`
	HireDate   string          `json:"hire_date"`
	IsActive   bool            `json:"is_active"`
}
