package payroll

import (
	"testing"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func totals(days, total, regular string) payroll.AttendanceTotals {
	return payroll.AttendanceTotals{
		DaysWorked:   decimal.RequireFromString(days),
		TotalHours:   decimal.RequireFromString(total),
		RegularHours: decimal.RequireFromString(regular),
	}
}

func TestProrateHourly(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryTypeHourly,
		BaseSalary: decimal.RequireFromString("150"),
	}
	allowances := []payroll.Allowance{
		{AllowanceType: payroll.AllowanceTypeMeal, Value: decimal.RequireFromString("1500")},
	}
	deductions := []payroll.Deduction{
		{DeductionType: payroll.DeductionTypeHealth, Value: decimal.RequireFromString("400")},
	}

	result := p.Prorate(emp, allowances, deductions, totals("10", "80", "80"), 22, payroll.PayFrequencyMonthly)

	assert.Equal(t, "12000.00", result.BasicPay.StringFixed(2))
	// Hourly component values are flat per-period amounts
	assert.Equal(t, "1500.00", result.TotalAllowances.StringFixed(2))
	assert.Equal(t, "400.00", result.TotalDeductions.StringFixed(2))
}

func TestProrateMonthlyFullAttendance(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: decimal.RequireFromString("45000"),
	}

	result := p.Prorate(emp, nil, nil, totals("22", "176", "176"), 22, payroll.PayFrequencyMonthly)

	// Full attendance reproduces the full monthly rate
	assert.Equal(t, "45000.00", result.BasicPay.StringFixed(2))
	assert.True(t, result.TotalAllowances.IsZero())
	assert.True(t, result.TotalDeductions.IsZero())
}

func TestProrateMonthlyPartialAttendance(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: decimal.RequireFromString("45000"),
	}
	allowances := []payroll.Allowance{
		{AllowanceType: payroll.AllowanceTypeTransportation, Value: decimal.RequireFromString("2200")},
	}
	deductions := []payroll.Deduction{
		{DeductionType: payroll.DeductionTypeSocialSecurity, Value: decimal.RequireFromString("1100")},
	}

	result := p.Prorate(emp, allowances, deductions, totals("11", "88", "88"), 22, payroll.PayFrequencyMonthly)

	assert.Equal(t, "22500.00", result.BasicPay.StringFixed(2))
	assert.Equal(t, "1100.00", result.TotalAllowances.StringFixed(2))
	assert.Equal(t, "550.00", result.TotalDeductions.StringFixed(2))
}

func TestProrateZeroDaysWorked(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryTypeMonthly,
		BaseSalary: decimal.RequireFromString("45000"),
	}

	result := p.Prorate(emp, nil, nil, totals("0", "0", "0"), 22, payroll.PayFrequencyMonthly)

	assert.Equal(t, "0.00", result.BasicPay.StringFixed(2))
}

func TestProrateUnknownSalaryTypeFallsBackToDivisor(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryType("commission"),
		BaseSalary: decimal.RequireFromString("43300"),
	}

	monthly := p.Prorate(emp, nil, nil, totals("0", "0", "0"), 22, payroll.PayFrequencyMonthly)
	assert.Equal(t, "43300.00", monthly.BasicPay.StringFixed(2))

	weekly := p.Prorate(emp, nil, nil, totals("0", "0", "0"), 22, payroll.PayFrequencyWeekly)
	assert.Equal(t, "10000.00", weekly.BasicPay.StringFixed(2))

	semiMonthly := p.Prorate(emp, nil, nil, totals("0", "0", "0"), 22, payroll.PayFrequencySemiMonthly)
	assert.Equal(t, "21650.00", semiMonthly.BasicPay.StringFixed(2))
}

func TestProrateSnapshotsLineTypes(t *testing.T) {
	p := NewCompensationProrator()
	emp := employee.Employee{
		ID:         "emp-1",
		SalaryType: employee.SalaryTypeHourly,
		BaseSalary: decimal.RequireFromString("100"),
	}
	allowances := []payroll.Allowance{
		{AllowanceType: payroll.AllowanceTypeMeal, Value: decimal.RequireFromString("500")},
		{AllowanceType: payroll.AllowanceTypeBonus, Value: decimal.RequireFromString("1000")},
	}

	result := p.Prorate(emp, allowances, nil, totals("5", "40", "40"), 22, payroll.PayFrequencyMonthly)

	assert.Len(t, result.AllowanceLines, 2)
	assert.Equal(t, payroll.AllowanceTypeMeal, result.AllowanceLines[0].AllowanceType)
	assert.Equal(t, payroll.AllowanceTypeBonus, result.AllowanceLines[1].AllowanceType)
	assert.Equal(t, "1500.00", result.TotalAllowances.StringFixed(2))
}
