package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxBracket is one row of a progressive annual schedule. Brackets are
// ordered ascending; a nil UpperBound marks the unbounded top bracket.
// A gross exactly equal to an upper bound is taxed by that bracket, i.e.
// boundaries are inclusive to the lower bracket.
type TaxBracket struct {
	UpperBound *decimal.Decimal
	BaseTax    decimal.Decimal
	Rate       decimal.Decimal
	ExcessOver decimal.Decimal
}

// TaxSchedule is a bracket table valid from EffectiveFrom onward.
type TaxSchedule struct {
	EffectiveFrom time.Time
	Brackets      []TaxBracket
}

// TaxTable holds schedules ordered by effective date so historical
// payslips stay reproducible when rates change.
type TaxTable []TaxSchedule

// ScheduleFor returns the latest schedule effective on or before date.
// Falls back to the earliest schedule for dates preceding all entries.
func (t TaxTable) ScheduleFor(date time.Time) TaxSchedule {
	if len(t) == 0 {
		return TaxSchedule{}
	}
	selected := t[0]
	for _, s := range t {
		if s.EffectiveFrom.After(date) {
			break
		}
		selected = s
	}
	return selected
}

func amount(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func amountPtr(v string) *decimal.Decimal {
	d := decimal.RequireFromString(v)
	return &d
}

// DefaultTaxTable carries the TRAIN-law annual withholding schedule
// (PHP) effective January 2018.
var DefaultTaxTable = TaxTable{
	{
		EffectiveFrom: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC),
		Brackets: []TaxBracket{
			{UpperBound: amountPtr("250000"), BaseTax: amount("0"), Rate: amount("0"), ExcessOver: amount("0")},
			{UpperBound: amountPtr("400000"), BaseTax: amount("0"), Rate: amount("0.20"), ExcessOver: amount("250000")},
			{UpperBound: amountPtr("800000"), BaseTax: amount("30000"), Rate: amount("0.25"), ExcessOver: amount("400000")},
			{UpperBound: amountPtr("2000000"), BaseTax: amount("130000"), Rate: amount("0.30"), ExcessOver: amount("800000")},
			{UpperBound: amountPtr("8000000"), BaseTax: amount("490000"), Rate: amount("0.32"), ExcessOver: amount("2000000")},
			{UpperBound: nil, BaseTax: amount("2410000"), Rate: amount("0.35"), ExcessOver: amount("8000000")},
		},
	},
}
