package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID         string
	FullName   string
	SalaryType SalaryType
	// BaseSalary is a rate per hour for hourly employees and a rate per
	// month for monthly employees. Rate changes apply to future periods
	// only; closed periods keep the snapshot on their payslips.
	BaseSalary decimal.Decimal
	Department *string
	Details    *string
	HireDate   time.Time
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SalaryType string

const (
	SalaryTypeHourly  SalaryType = "hourly"
	SalaryTypeMonthly SalaryType = "monthly"
)
