package payroll

import (
	"context"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fakes embed the repository interface and override only what each test
// path reaches.

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

type fakePayrollRepo struct {
	payroll.PayrollRepository
	payslips      map[string]payroll.Payslip
	overlap       bool
	lastExcludeID string
}

func (f *fakePayrollRepo) HasOverlappingPayslip(_ context.Context, _ string, _, _ time.Time, excludeID string) (bool, error) {
	f.lastExcludeID = excludeID
	return f.overlap, nil
}

func (f *fakePayrollRepo) GetPayslipByID(_ context.Context, id string) (payroll.Payslip, error) {
	p, ok := f.payslips[id]
	if !ok {
		return payroll.Payslip{}, payroll.ErrPayslipNotFound
	}
	return p, nil
}

func newTestService(employees map[string]employee.Employee, payslips map[string]payroll.Payslip, overlap bool) payroll.PayrollService {
	return NewPayrollService(
		nil,
		&fakePayrollRepo{payslips: payslips, overlap: overlap},
		&fakeEmployeeRepo{employees: employees},
		nil,
		nil,
		time.UTC,
		nil,
	)
}

func validGenerateRequest(employeeIDs ...string) payroll.GeneratePayslipsRequest {
	return payroll.GeneratePayslipsRequest{
		EmployeeIDs:      employeeIDs,
		StartDate:        "2025-01-01",
		EndDate:          "2025-01-31",
		TotalWorkingDays: 22,
		PayFrequency:     "monthly",
	}
}

func TestGeneratePayslipsRejectsInvalidRequest(t *testing.T) {
	svc := newTestService(nil, nil, false)

	req := validGenerateRequest("emp-1")
	req.TotalWorkingDays = 0

	_, err := svc.GeneratePayslips(context.Background(), req)
	assert.Error(t, err)
}

func TestGeneratePayslipsCollectsPerEmployeeErrors(t *testing.T) {
	employees := map[string]employee.Employee{
		"emp-inactive": {ID: "emp-inactive", SalaryType: employee.SalaryTypeMonthly, BaseSalary: decimal.NewFromInt(45000), IsActive: false},
	}
	svc := newTestService(employees, nil, false)

	resp, err := svc.GeneratePayslips(context.Background(), validGenerateRequest("emp-missing", "emp-inactive"))
	require.NoError(t, err)

	assert.Empty(t, resp.Generated)
	require.Len(t, resp.Errors, 2)
	assert.Equal(t, "emp-missing", resp.Errors[0].EmployeeID)
	assert.Equal(t, employee.ErrEmployeeNotFound.Error(), resp.Errors[0].Message)
	assert.Equal(t, "emp-inactive", resp.Errors[1].EmployeeID)
	assert.Equal(t, employee.ErrEmployeeInactive.Error(), resp.Errors[1].Message)
}

func TestGeneratePayslipsRejectsOverlappingPeriod(t *testing.T) {
	employees := map[string]employee.Employee{
		"emp-1": {ID: "emp-1", SalaryType: employee.SalaryTypeMonthly, BaseSalary: decimal.NewFromInt(45000), IsActive: true},
	}
	svc := newTestService(employees, nil, true)

	resp, err := svc.GeneratePayslips(context.Background(), validGenerateRequest("emp-1"))
	require.NoError(t, err)

	assert.Empty(t, resp.Generated)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, payroll.ErrPayslipPeriodOverlap.Error(), resp.Errors[0].Message)
}

func TestUpdatePayslipRejectsInvalidTransition(t *testing.T) {
	payslips := map[string]payroll.Payslip{
		"p-1": {ID: "p-1", Status: payroll.PayslipStatusDraft},
	}
	svc := newTestService(nil, payslips, false)

	status := "paid"
	_, err := svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: "p-1", Status: &status})
	assert.ErrorIs(t, err, payroll.ErrInvalidStatusChange)
}

func TestUpdatePayslipRejectsTerminalStatuses(t *testing.T) {
	payslips := map[string]payroll.Payslip{
		"p-paid":      {ID: "p-paid", Status: payroll.PayslipStatusPaid},
		"p-cancelled": {ID: "p-cancelled", Status: payroll.PayslipStatusCancelled},
	}
	svc := newTestService(nil, payslips, false)

	// A no-op status patch must not rewrite a terminal row.
	samePaid := "paid"
	_, err := svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: "p-paid", Status: &samePaid})
	assert.ErrorIs(t, err, payroll.ErrPayslipLocked)

	// Neither must an empty patch.
	_, err = svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: "p-cancelled"})
	assert.ErrorIs(t, err, payroll.ErrPayslipLocked)
}

func TestUpdatePayslipRechecksOverlapWhenPeriodMoves(t *testing.T) {
	payrollRepo := &fakePayrollRepo{
		payslips: map[string]payroll.Payslip{
			"p-draft": {
				ID:        "p-draft",
				Status:    payroll.PayslipStatusDraft,
				StartDate: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
			},
		},
		overlap: true,
	}
	svc := NewPayrollService(nil, payrollRepo, &fakeEmployeeRepo{}, nil, nil, time.UTC, nil)

	start := "2025-02-01"
	end := "2025-02-28"
	_, err := svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: "p-draft", StartDate: &start, EndDate: &end})
	assert.ErrorIs(t, err, payroll.ErrPayslipPeriodOverlap)

	// The edited payslip must not collide with itself.
	assert.Equal(t, "p-draft", payrollRepo.lastExcludeID)
}

func TestUpdatePayslipRejectsFieldEditsOnceLocked(t *testing.T) {
	payslips := map[string]payroll.Payslip{
		"p-approved": {ID: "p-approved", Status: payroll.PayslipStatusApproved},
		"p-paid":     {ID: "p-paid", Status: payroll.PayslipStatusPaid},
	}
	svc := newTestService(nil, payslips, false)

	twd := 20
	for _, id := range []string{"p-approved", "p-paid"} {
		_, err := svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: id, TotalWorkingDays: &twd})
		assert.ErrorIs(t, err, payroll.ErrPayslipLocked, id)
	}
}

func TestUpdatePayslipNotFound(t *testing.T) {
	svc := newTestService(nil, nil, false)

	status := "generated"
	_, err := svc.UpdatePayslip(context.Background(), payroll.UpdatePayslipRequest{ID: "missing", Status: &status})
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestDeletePayslipOnlyWhileEditable(t *testing.T) {
	payslips := map[string]payroll.Payslip{
		"p-approved": {ID: "p-approved", Status: payroll.PayslipStatusApproved},
	}
	svc := newTestService(nil, payslips, false)

	err := svc.DeletePayslip(context.Background(), "p-approved")
	assert.ErrorIs(t, err, payroll.ErrPayslipLocked)

	err = svc.DeletePayslip(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestCreateAllowanceRequiresKnownEmployee(t *testing.T) {
	svc := newTestService(nil, nil, false)

	value := decimal.NewFromInt(1500)
	_, err := svc.CreateAllowance(context.Background(), payroll.CreateAllowanceRequest{
		EmployeeID:    "missing",
		AllowanceType: "meal",
		Value:         &value,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateDeductionRejectsNegativeValue(t *testing.T) {
	svc := newTestService(nil, nil, false)

	value := decimal.NewFromInt(-100)
	_, err := svc.CreateDeduction(context.Background(), payroll.CreateDeductionRequest{
		EmployeeID:    "emp-1",
		DeductionType: "health",
		Value:         &value,
	})
	assert.Error(t, err)
}
