package postgresql_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/bayanihr/payroll-backend-go/internal/repository/postgresql"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testDB     *database.DB
	schemaOnce sync.Once
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		salary_type TEXT NOT NULL,
		base_salary NUMERIC(14,2) NOT NULL,
		department TEXT,
		details TEXT,
		hire_date TIMESTAMPTZ NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS attendance_events (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		event_timestamp TIMESTAMPTZ NOT NULL,
		event_type TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS leaves (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		leave_type TEXT NOT NULL,
		details TEXT NOT NULL DEFAULT '',
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		is_approved BOOLEAN NOT NULL DEFAULT false,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS allowances (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		allowance_type TEXT NOT NULL,
		value NUMERIC(14,2) NOT NULL,
		description TEXT,
		is_taxable BOOLEAN NOT NULL DEFAULT true,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS deductions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		deduction_type TEXT NOT NULL,
		value NUMERIC(14,2) NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT true,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payslips (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id),
		start_date TIMESTAMPTZ NOT NULL,
		end_date TIMESTAMPTZ NOT NULL,
		total_working_days INT NOT NULL,
		days_worked NUMERIC(8,2) NOT NULL,
		total_hours NUMERIC(8,2) NOT NULL,
		regular_hours NUMERIC(8,2) NOT NULL,
		basic_pay NUMERIC(14,2) NOT NULL,
		total_allowances NUMERIC(14,2) NOT NULL,
		total_deductions NUMERIC(14,2) NOT NULL,
		gross_salary NUMERIC(14,2) NOT NULL,
		withholding_tax NUMERIC(14,2) NOT NULL,
		net_salary NUMERIC(14,2) NOT NULL,
		ytd_gross NUMERIC(14,2) NOT NULL,
		status TEXT NOT NULL,
		pay_frequency TEXT NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL,
		approved_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payslip_allowances (
		id TEXT PRIMARY KEY,
		payslip_id TEXT NOT NULL REFERENCES payslips(id),
		allowance_type TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS payslip_deductions (
		id TEXT PRIMARY KEY,
		payslip_id TEXT NOT NULL REFERENCES payslips(id),
		deduction_type TEXT NOT NULL,
		amount NUMERIC(14,2) NOT NULL
	)`,
}

func setupDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	if testDB == nil {
		var err error
		testDB, err = database.NewPostgreSQLDB(dsn)
		require.NoError(t, err)
	}

	schemaOnce.Do(func() {
		ctx := context.Background()
		for _, stmt := range schema {
			_, err := testDB.Exec(ctx, stmt)
			require.NoError(t, err)
		}
	})

	ctx := context.Background()
	for _, table := range []string{"payslip_allowances", "payslip_deductions", "payslips", "allowances", "deductions", "leaves", "attendance_events", "employees"} {
		_, err := testDB.Exec(ctx, "DELETE FROM "+table)
		require.NoError(t, err)
	}

	return testDB
}

func createTestEmployee(t *testing.T, db *database.DB, name string, salaryType employee.SalaryType) employee.Employee {
	repo := postgresql.NewEmployeeRepository(db)
	emp, err := repo.Create(context.Background(), employee.Employee{
		FullName:   name,
		SalaryType: salaryType,
		BaseSalary: decimal.NewFromInt(45000),
		HireDate:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		IsActive:   true,
	})
	require.NoError(t, err)
	return emp
}

func TestEmployeeRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewEmployeeRepository(db)

	emp := createTestEmployee(t, db, "Maria Santos", employee.SalaryTypeMonthly)
	require.NotEmpty(t, emp.ID)

	got, err := repo.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos", got.FullName)
	assert.True(t, got.BaseSalary.Equal(decimal.NewFromInt(45000)))

	_, err = repo.GetByID(ctx, "does-not-exist")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	got.FullName = "Maria Santos-Cruz"
	updated, err := repo.Update(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Maria Santos-Cruz", updated.FullName)

	require.NoError(t, repo.Deactivate(ctx, emp.ID))
	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestAttendanceRepositoryRange(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewAttendanceRepository(db)
	emp := createTestEmployee(t, db, "Jose Rizal", employee.SalaryTypeHourly)

	inRange := time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC)
	outOfRange := time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{inRange, outOfRange} {
		_, err := repo.Create(ctx, attendance.Event{EmployeeID: emp.ID, Timestamp: ts, Type: attendance.EventTypeTimeIn})
		require.NoError(t, err)
	}

	events, err := repo.ListByEmployeeRange(ctx, emp.ID,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.True(t, events[0].Timestamp.Equal(inRange))
}

func TestLeaveRepositoryApproveAndOverlap(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)
	emp := createTestEmployee(t, db, "Ana Lim", employee.SalaryTypeMonthly)

	l, err := repo.Create(ctx, leave.Leave{
		EmployeeID: emp.ID,
		LeaveType:  leave.LeaveTypeSick,
		Details:    "flu",
		StartDate:  time.Date(2025, time.January, 6, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, l.IsApproved)

	// Unapproved leaves never reach payroll
	overlapping, err := repo.ListApprovedOverlapping(ctx, emp.ID,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, overlapping)

	approved, err := repo.Approve(ctx, l.ID)
	require.NoError(t, err)
	assert.True(t, approved.IsApproved)

	overlapping, err = repo.ListApprovedOverlapping(ctx, emp.ID,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, overlapping, 1)
}

func createTestPayslip(t *testing.T, db *database.DB, employeeID string, start, end time.Time, status payroll.PayslipStatus) payroll.Payslip {
	repo := postgresql.NewPayrollRepository(db)
	p, err := repo.CreatePayslip(context.Background(), payroll.Payslip{
		EmployeeID:       employeeID,
		StartDate:        start,
		EndDate:          end,
		TotalWorkingDays: 22,
		DaysWorked:       decimal.NewFromInt(22),
		TotalHours:       decimal.NewFromInt(176),
		RegularHours:     decimal.NewFromInt(176),
		BasicPay:         decimal.NewFromInt(45000),
		TotalAllowances:  decimal.NewFromInt(3000),
		TotalDeductions:  decimal.NewFromInt(1500),
		GrossSalary:      decimal.NewFromInt(48000),
		WithholdingTax:   decimal.RequireFromString("6166.67"),
		NetSalary:        decimal.RequireFromString("40333.33"),
		YTDGross:         decimal.NewFromInt(48000),
		Status:           status,
		PayFrequency:     payroll.PayFrequencyMonthly,
		GeneratedAt:      time.Now(),
	})
	require.NoError(t, err)
	return p
}

func TestPayrollRepositoryPayslipLifecycle(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)
	emp := createTestEmployee(t, db, "Carlos Reyes", employee.SalaryTypeMonthly)

	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC)
	p := createTestPayslip(t, db, emp.ID, start, end, payroll.PayslipStatusDraft)

	err := repo.CreatePayslipLines(ctx, p.ID,
		[]payroll.PayslipAllowance{{AllowanceType: payroll.AllowanceTypeMeal, Amount: decimal.NewFromInt(3000)}},
		[]payroll.PayslipDeduction{{DeductionType: payroll.DeductionTypeHealth, Amount: decimal.NewFromInt(1500)}})
	require.NoError(t, err)

	got, err := repo.GetPayslipByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.EmployeeName)
	assert.Equal(t, "Carlos Reyes", *got.EmployeeName)
	require.Len(t, got.Allowances, 1)
	require.Len(t, got.Deductions, 1)
	assert.True(t, got.Allowances[0].Amount.Equal(decimal.NewFromInt(3000)))

	// Containment blocks a narrower period, not a staggered one
	overlap, err := repo.HasOverlappingPayslip(ctx, emp.ID,
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.True(t, overlap)

	overlap, err = repo.HasOverlappingPayslip(ctx, emp.ID,
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	assert.False(t, overlap)

	// A payslip being edited is excluded from its own overlap check
	overlap, err = repo.HasOverlappingPayslip(ctx, emp.ID,
		time.Date(2025, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC), p.ID)
	require.NoError(t, err)
	assert.False(t, overlap)

	// Draft payslips are excluded from year-to-date gross
	ytd, err := repo.YTDGross(ctx, emp.ID, 2025)
	require.NoError(t, err)
	assert.True(t, ytd.IsZero())

	got.Status = payroll.PayslipStatusApproved
	now := time.Now()
	got.ApprovedAt = &now
	_, err = repo.UpdatePayslip(ctx, got)
	require.NoError(t, err)

	ytd, err = repo.YTDGross(ctx, emp.ID, 2025)
	require.NoError(t, err)
	assert.True(t, ytd.Equal(decimal.NewFromInt(48000)))

	require.NoError(t, repo.DeletePayslip(ctx, p.ID))
	_, err = repo.GetPayslipByID(ctx, p.ID)
	assert.ErrorIs(t, err, payroll.ErrPayslipNotFound)
}

func TestPayrollRepositoryListAndStats(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)
	emp := createTestEmployee(t, db, "Dina Cruz", employee.SalaryTypeMonthly)

	createTestPayslip(t, db, emp.ID,
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC),
		payroll.PayslipStatusDraft)
	createTestPayslip(t, db, emp.ID,
		time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
		payroll.PayslipStatusApproved)

	status := string(payroll.PayslipStatusDraft)
	payslips, total, err := repo.ListPayslips(ctx, payroll.PayslipFilter{
		EmployeeID: &emp.ID,
		Status:     &status,
		Page:       1,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, payslips, 1)
	assert.Equal(t, payroll.PayslipStatusDraft, payslips[0].Status)

	stats, err := repo.GetStats(ctx, payroll.StatsFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCount)
	assert.True(t, stats.TotalGross.Equal(decimal.NewFromInt(96000)))
	assert.Equal(t, 1, stats.CountsByStatus["draft"])
	assert.Equal(t, 1, stats.CountsByStatus["approved"])
}

func TestAllowanceAndDeductionRepository(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewPayrollRepository(db)
	emp := createTestEmployee(t, db, "Elena Torres", employee.SalaryTypeHourly)

	a, err := repo.CreateAllowance(ctx, payroll.Allowance{
		EmployeeID:    emp.ID,
		AllowanceType: payroll.AllowanceTypeMeal,
		Value:         decimal.NewFromInt(1500),
		IsTaxable:     true,
		IsActive:      true,
	})
	require.NoError(t, err)

	inactive := false
	_, err = repo.UpdateAllowance(ctx, payroll.UpdateAllowanceRequest{ID: a.ID, IsActive: &inactive})
	require.NoError(t, err)

	active, err := repo.ListAllowancesByEmployee(ctx, emp.ID, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.ListAllowancesByEmployee(ctx, emp.ID, false)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	d, err := repo.CreateDeduction(ctx, payroll.Deduction{
		EmployeeID:    emp.ID,
		DeductionType: payroll.DeductionTypeSocialSecurity,
		Value:         decimal.NewFromInt(1100),
		IsActive:      true,
	})
	require.NoError(t, err)

	newValue := decimal.NewFromInt(1200)
	updated, err := repo.UpdateDeduction(ctx, payroll.UpdateDeductionRequest{ID: d.ID, Value: &newValue})
	require.NoError(t, err)
	assert.True(t, updated.Value.Equal(newValue))

	_, err = repo.UpdateDeduction(ctx, payroll.UpdateDeductionRequest{ID: "missing", Value: &newValue})
	assert.ErrorIs(t, err, payroll.ErrDeductionNotFound)
}
