package payroll

import (
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// WithholdingTaxCalculator applies a progressive annual schedule to
// per-period gross pay: annualize by pay frequency, scan brackets,
// de-annualize back to the period.
type WithholdingTaxCalculator struct {
	table payroll.TaxTable
}

func NewWithholdingTaxCalculator(table payroll.TaxTable) *WithholdingTaxCalculator {
	if len(table) == 0 {
		table = payroll.DefaultTaxTable
	}
	return &WithholdingTaxCalculator{table: table}
}

// PeriodTax returns the withholding tax for one pay period, rounded to
// two decimal places and never negative. asOf selects the schedule in
// force, so historical payslips stay reproducible across rate changes.
func (c *WithholdingTaxCalculator) PeriodTax(periodGross decimal.Decimal, freq payroll.PayFrequency, asOf time.Time) (decimal.Decimal, error) {
	factor := freq.AnnualizationFactor()

	annualTax, err := c.AnnualTax(periodGross.Mul(factor), asOf)
	if err != nil {
		return decimal.Zero, err
	}

	periodTax := annualTax.Div(factor).Round(2)
	if periodTax.IsNegative() {
		return decimal.Zero, nil
	}
	return periodTax, nil
}

// AnnualTax computes tax on an annualized gross. A gross exactly on a
// bracket's upper bound is taxed by that bracket.
func (c *WithholdingTaxCalculator) AnnualTax(annualGross decimal.Decimal, asOf time.Time) (decimal.Decimal, error) {
	schedule := c.table.ScheduleFor(asOf)
	if len(schedule.Brackets) == 0 {
		return decimal.Zero, payroll.ErrEmptyTaxSchedule
	}

	for _, b := range schedule.Brackets {
		if b.UpperBound != nil && annualGross.GreaterThan(*b.UpperBound) {
			continue
		}
		tax := b.BaseTax.Add(annualGross.Sub(b.ExcessOver).Mul(b.Rate))
		if tax.IsNegative() {
			return decimal.Zero, nil
		}
		return tax, nil
	}

	// Brackets always end with an unbounded row; reaching here means the
	// schedule is malformed.
	return decimal.Zero, payroll.ErrEmptyTaxSchedule
}
