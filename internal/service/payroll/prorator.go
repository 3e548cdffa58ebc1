package payroll

import (
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// ProrationResult is the prorated pay for one employee/period, with the
// per-line amounts that become immutable payslip snapshots.
type ProrationResult struct {
	BasicPay        decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	AllowanceLines  []payroll.PayslipAllowance
	DeductionLines  []payroll.PayslipDeduction
}

// CompensationProrator converts base salary and standing allowance and
// deduction records into period amounts. Callers must guarantee
// totalWorkingDays > 0; it is a request-validation failure, not a runtime
// guard, when a monthly employee arrives with zero working days.
type CompensationProrator struct{}

func NewCompensationProrator() *CompensationProrator {
	return &CompensationProrator{}
}

// Prorate computes basic pay plus allowance/deduction lines.
//
// Hourly employees earn rate x regular hours; their component values are
// flat per-period amounts. Monthly employees earn a days-worked fraction
// of the monthly rate, and components prorate the same way. Unrecognized
// salary types fall back to treating base salary and component values as
// monthly amounts divided by the frequency divisor.
func (p *CompensationProrator) Prorate(
	emp employee.Employee,
	allowances []payroll.Allowance,
	deductions []payroll.Deduction,
	totals payroll.AttendanceTotals,
	totalWorkingDays int,
	freq payroll.PayFrequency,
) ProrationResult {
	var result ProrationResult

	switch emp.SalaryType {
	case employee.SalaryTypeHourly:
		result.BasicPay = emp.BaseSalary.Mul(totals.RegularHours).Round(2)
		for _, a := range allowances {
			result.AllowanceLines = append(result.AllowanceLines, payroll.PayslipAllowance{
				AllowanceType: a.AllowanceType,
				Amount:        a.Value.Round(2),
			})
		}
		for _, d := range deductions {
			result.DeductionLines = append(result.DeductionLines, payroll.PayslipDeduction{
				DeductionType: d.DeductionType,
				Amount:        d.Value.Round(2),
			})
		}

	case employee.SalaryTypeMonthly:
		twd := decimal.NewFromInt(int64(totalWorkingDays))
		fraction := totals.DaysWorked.Div(twd)
		result.BasicPay = emp.BaseSalary.Mul(fraction).Round(2)
		for _, a := range allowances {
			result.AllowanceLines = append(result.AllowanceLines, payroll.PayslipAllowance{
				AllowanceType: a.AllowanceType,
				Amount:        a.Value.Mul(fraction).Round(2),
			})
		}
		for _, d := range deductions {
			result.DeductionLines = append(result.DeductionLines, payroll.PayslipDeduction{
				DeductionType: d.DeductionType,
				Amount:        d.Value.Mul(fraction).Round(2),
			})
		}

	default:
		divisor := freq.MonthlyDivisor()
		result.BasicPay = emp.BaseSalary.Div(divisor).Round(2)
		for _, a := range allowances {
			result.AllowanceLines = append(result.AllowanceLines, payroll.PayslipAllowance{
				AllowanceType: a.AllowanceType,
				Amount:        a.Value.Div(divisor).Round(2),
			})
		}
		for _, d := range deductions {
			result.DeductionLines = append(result.DeductionLines, payroll.PayslipDeduction{
				DeductionType: d.DeductionType,
				Amount:        d.Value.Div(divisor).Round(2),
			})
		}
	}

	result.TotalAllowances = decimal.Zero
	for _, line := range result.AllowanceLines {
		result.TotalAllowances = result.TotalAllowances.Add(line.Amount)
	}
	result.TotalDeductions = decimal.Zero
	for _, line := range result.DeductionLines {
		result.TotalDeductions = result.TotalDeductions.Add(line.Amount)
	}

	return result
}
