package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPayslipStatusTransitions(t *testing.T) {
	cases := []struct {
		from    PayslipStatus
		to      PayslipStatus
		allowed bool
	}{
		{PayslipStatusDraft, PayslipStatusGenerated, true},
		{PayslipStatusDraft, PayslipStatusApproved, false},
		{PayslipStatusDraft, PayslipStatusPaid, false},
		{PayslipStatusGenerated, PayslipStatusApproved, true},
		{PayslipStatusGenerated, PayslipStatusCancelled, true},
		{PayslipStatusGenerated, PayslipStatusPaid, false},
		{PayslipStatusGenerated, PayslipStatusDraft, false},
		{PayslipStatusApproved, PayslipStatusPaid, true},
		{PayslipStatusApproved, PayslipStatusCancelled, true},
		{PayslipStatusApproved, PayslipStatusGenerated, false},
		{PayslipStatusPaid, PayslipStatusCancelled, false},
		{PayslipStatusPaid, PayslipStatusApproved, false},
		{PayslipStatusCancelled, PayslipStatusDraft, false},
	}

	for _, c := range cases {
		got := c.from.CanTransitionTo(c.to)
		assert.Equal(t, c.allowed, got, "%s -> %s", c.from, c.to)
	}
}

func TestPayslipStatusFlags(t *testing.T) {
	assert.True(t, PayslipStatusDraft.IsEditable())
	assert.True(t, PayslipStatusGenerated.IsEditable())
	assert.False(t, PayslipStatusApproved.IsEditable())
	assert.False(t, PayslipStatusPaid.IsEditable())
	assert.False(t, PayslipStatusCancelled.IsEditable())

	assert.True(t, PayslipStatusPaid.IsTerminal())
	assert.True(t, PayslipStatusCancelled.IsTerminal())
	assert.False(t, PayslipStatusApproved.IsTerminal())
}

func TestValidPayslipStatus(t *testing.T) {
	for _, v := range []string{"draft", "generated", "approved", "paid", "cancelled"} {
		assert.True(t, ValidPayslipStatus(v), v)
	}
	assert.False(t, ValidPayslipStatus("pending"))
	assert.False(t, ValidPayslipStatus(""))
}

func TestScheduleForPicksLatestEffective(t *testing.T) {
	old := TaxSchedule{EffectiveFrom: time.Date(2018, time.January, 1, 0, 0, 0, 0, time.UTC)}
	current := TaxSchedule{EffectiveFrom: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)}
	table := TaxTable{old, current}

	assert.Equal(t, old.EffectiveFrom, table.ScheduleFor(time.Date(2020, time.June, 1, 0, 0, 0, 0, time.UTC)).EffectiveFrom)
	assert.Equal(t, current.EffectiveFrom, table.ScheduleFor(time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)).EffectiveFrom)
	assert.Equal(t, current.EffectiveFrom, table.ScheduleFor(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)).EffectiveFrom)

	// Before all entries falls back to the earliest schedule
	assert.Equal(t, old.EffectiveFrom, table.ScheduleFor(time.Date(2017, time.June, 1, 0, 0, 0, 0, time.UTC)).EffectiveFrom)
}

func TestAnnualizationFactors(t *testing.T) {
	assert.Equal(t, "52", PayFrequencyWeekly.AnnualizationFactor().String())
	assert.Equal(t, "26", PayFrequencyBiweekly.AnnualizationFactor().String())
	assert.Equal(t, "24", PayFrequencySemiMonthly.AnnualizationFactor().String())
	assert.Equal(t, "12", PayFrequencyMonthly.AnnualizationFactor().String())

	// Unknown frequency behaves as monthly
	assert.Equal(t, "12", PayFrequency("quarterly").AnnualizationFactor().String())
}

func TestGeneratePayslipsRequestValidate(t *testing.T) {
	valid := GeneratePayslipsRequest{
		EmployeeIDs:      []string{"emp-1"},
		StartDate:        "2025-01-01",
		EndDate:          "2025-01-31",
		TotalWorkingDays: 22,
		PayFrequency:     "monthly",
	}
	assert.NoError(t, valid.Validate())

	t.Run("no employees", func(t *testing.T) {
		r := valid
		r.EmployeeIDs = nil
		assert.Error(t, r.Validate())
	})

	t.Run("end before start", func(t *testing.T) {
		r := valid
		r.EndDate = "2024-12-31"
		assert.Error(t, r.Validate())
	})

	t.Run("zero working days", func(t *testing.T) {
		r := valid
		r.TotalWorkingDays = 0
		assert.Error(t, r.Validate())
	})

	t.Run("bad frequency", func(t *testing.T) {
		r := valid
		r.PayFrequency = "quarterly"
		assert.Error(t, r.Validate())
	})

	t.Run("bad date", func(t *testing.T) {
		r := valid
		r.StartDate = "01/01/2025"
		assert.Error(t, r.Validate())
	})
}

func TestUpdatePayslipRequestRequiresRecompute(t *testing.T) {
	twd := 20
	status := "generated"

	r := UpdatePayslipRequest{ID: "p-1", Status: &status}
	assert.False(t, r.RequiresRecompute())

	r.TotalWorkingDays = &twd
	assert.True(t, r.RequiresRecompute())
}
