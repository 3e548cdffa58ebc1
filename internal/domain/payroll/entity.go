package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkHoursPerDay is the fixed business rule for a full working day.
const WorkHoursPerDay = 8

// PayFrequency is the payment cadence. It is used to annualize and
// de-annualize withholding tax, never to re-derive base pay for hourly or
// monthly employees.
type PayFrequency string

const (
	PayFrequencyWeekly      PayFrequency = "weekly"
	PayFrequencyBiweekly    PayFrequency = "biweekly"
	PayFrequencySemiMonthly PayFrequency = "semi_monthly"
	PayFrequencyMonthly     PayFrequency = "monthly"
)

// PayFrequencies lists the accepted values, for validation.
var PayFrequencies = []string{
	string(PayFrequencyWeekly),
	string(PayFrequencyBiweekly),
	string(PayFrequencySemiMonthly),
	string(PayFrequencyMonthly),
}

var (
	periodsPerYear = map[PayFrequency]decimal.Decimal{
		PayFrequencyWeekly:      decimal.NewFromInt(52),
		PayFrequencyBiweekly:    decimal.NewFromInt(26),
		PayFrequencySemiMonthly: decimal.NewFromInt(24),
		PayFrequencyMonthly:     decimal.NewFromInt(12),
	}

	monthlyDivisors = map[PayFrequency]decimal.Decimal{
		PayFrequencyWeekly:      decimal.RequireFromString("4.33"),
		PayFrequencyBiweekly:    decimal.RequireFromString("2.17"),
		PayFrequencySemiMonthly: decimal.NewFromInt(2),
		PayFrequencyMonthly:     decimal.NewFromInt(1),
	}
)

// AnnualizationFactor returns the number of pay periods per year.
func (f PayFrequency) AnnualizationFactor() decimal.Decimal {
	if factor, ok := periodsPerYear[f]; ok {
		return factor
	}
	return periodsPerYear[PayFrequencyMonthly]
}

// MonthlyDivisor converts a monthly-equivalent amount to a period amount.
// Only the forward-compatibility path for unrecognized salary types uses
// this; hourly and monthly employees are attendance-driven.
func (f PayFrequency) MonthlyDivisor() decimal.Decimal {
	if d, ok := monthlyDivisors[f]; ok {
		return d
	}
	return monthlyDivisors[PayFrequencyMonthly]
}

// Allowance is a standing monthly-equivalent (or flat, for hourly
// employees) amount. Soft-disabled via IsActive; never deleted once a
// payslip line references it.
type Allowance struct {
	ID            string
	EmployeeID    string
	AllowanceType AllowanceType
	Value         decimal.Decimal
	Description   *string
	IsTaxable     bool
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AllowanceType string

const (
	AllowanceTypeMeal           AllowanceType = "meal"
	AllowanceTypeTransportation AllowanceType = "transportation"
	AllowanceTypeMedical        AllowanceType = "medical"
	AllowanceTypeBonus          AllowanceType = "bonus"
)

var AllowanceTypes = []string{
	string(AllowanceTypeMeal),
	string(AllowanceTypeTransportation),
	string(AllowanceTypeMedical),
	string(AllowanceTypeBonus),
}

// Deduction mirrors Allowance for amounts withheld from gross pay.
type Deduction struct {
	ID            string
	EmployeeID    string
	DeductionType DeductionType
	Value         decimal.Decimal
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type DeductionType string

const (
	DeductionTypeTax            DeductionType = "tax"
	DeductionTypeHealth         DeductionType = "health"
	DeductionTypeSocialSecurity DeductionType = "social_security"
	DeductionTypeOthers         DeductionType = "others"
)

var DeductionTypes = []string{
	string(DeductionTypeTax),
	string(DeductionTypeHealth),
	string(DeductionTypeSocialSecurity),
	string(DeductionTypeOthers),
}

// PayslipStatus enum
type PayslipStatus string

const (
	PayslipStatusDraft     PayslipStatus = "draft"
	PayslipStatusGenerated PayslipStatus = "generated"
	PayslipStatusApproved  PayslipStatus = "approved"
	PayslipStatusPaid      PayslipStatus = "paid"
	PayslipStatusCancelled PayslipStatus = "cancelled"
)

var payslipTransitions = map[PayslipStatus][]PayslipStatus{
	PayslipStatusDraft:     {PayslipStatusGenerated},
	PayslipStatusGenerated: {PayslipStatusApproved, PayslipStatusCancelled},
	PayslipStatusApproved:  {PayslipStatusPaid, PayslipStatusCancelled},
	// paid and cancelled are terminal
}

// CanTransitionTo reports whether the status change is allowed by the
// payslip lifecycle.
func (s PayslipStatus) CanTransitionTo(target PayslipStatus) bool {
	for _, allowed := range payslipTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsEditable reports whether payslip fields may still be changed.
func (s PayslipStatus) IsEditable() bool {
	return s == PayslipStatusDraft || s == PayslipStatusGenerated
}

// IsTerminal reports whether the payslip is immutable.
func (s PayslipStatus) IsTerminal() bool {
	return s == PayslipStatusPaid || s == PayslipStatusCancelled
}

// ValidPayslipStatus reports whether v names a known status.
func ValidPayslipStatus(v string) bool {
	switch PayslipStatus(v) {
	case PayslipStatusDraft, PayslipStatusGenerated, PayslipStatusApproved, PayslipStatusPaid, PayslipStatusCancelled:
		return true
	}
	return false
}

// Payslip is the computed pay for one employee over one period. Amounts
// are computed once at generation/update time and never silently
// recomputed.
type Payslip struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time

	// Attendance numbers
	TotalWorkingDays int
	DaysWorked       decimal.Decimal
	TotalHours       decimal.Decimal
	RegularHours     decimal.Decimal

	// Amounts
	BasicPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	GrossSalary     decimal.Decimal
	WithholdingTax  decimal.Decimal
	NetSalary       decimal.Decimal
	// YTDGross is informational: approved/paid gross for the calendar
	// year including this payslip. The bracket lookup never uses it.
	YTDGross decimal.Decimal

	Status       PayslipStatus
	PayFrequency PayFrequency
	GeneratedAt  time.Time
	ApprovedAt   *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string

	Allowances []PayslipAllowance
	Deductions []PayslipDeduction
}

// PayslipAllowance is an immutable snapshot of an allowance contribution
// at generation time, decoupled from the live Allowance record.
type PayslipAllowance struct {
	ID            string
	PayslipID     string
	AllowanceType AllowanceType
	Amount        decimal.Decimal
}

// PayslipDeduction is an immutable snapshot of a deduction contribution
// at generation time.
type PayslipDeduction struct {
	ID            string
	PayslipID     string
	DeductionType DeductionType
	Amount        decimal.Decimal
}

// AttendanceTotals is the aggregator's output for one employee/period.
type AttendanceTotals struct {
	DaysWorked   decimal.Decimal
	TotalHours   decimal.Decimal
	RegularHours decimal.Decimal
}

// PayslipStats is the aggregate view over a set of payslips.
type PayslipStats struct {
	TotalCount     int
	TotalGross     decimal.Decimal
	TotalNet       decimal.Decimal
	CountsByStatus map[string]int
}
