package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// ========== ALLOWANCES ==========

const allowanceColumns = `id, employee_id, allowance_type, value, description, is_taxable, is_active, created_at, updated_at`

func scanAllowance(row pgx.Row) (payroll.Allowance, error) {
	var a payroll.Allowance
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.AllowanceType, &a.Value, &a.Description,
		&a.IsTaxable, &a.IsActive, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// CreateAllowance implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateAllowance(ctx context.Context, a payroll.Allowance) (payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO allowances (id, employee_id, allowance_type, value, description, is_taxable, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + allowanceColumns

	created, err := scanAllowance(q.QueryRow(ctx, query,
		uuid.NewString(), a.EmployeeID, a.AllowanceType, a.Value, a.Description, a.IsTaxable, a.IsActive,
	))
	if err != nil {
		return payroll.Allowance{}, fmt.Errorf("failed to create allowance: %w", err)
	}

	return created, nil
}

// GetAllowanceByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetAllowanceByID(ctx context.Context, id string) (payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + allowanceColumns + ` FROM allowances WHERE id = $1`

	a, err := scanAllowance(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Allowance{}, payroll.ErrAllowanceNotFound
		}
		return payroll.Allowance{}, fmt.Errorf("failed to get allowance: %w", err)
	}

	return a, nil
}

// ListAllowancesByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListAllowancesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + allowanceColumns + ` FROM allowances WHERE employee_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list allowances: %w", err)
	}
	defer rows.Close()

	var allowances []payroll.Allowance
	for rows.Next() {
		a, err := scanAllowance(rows)
		if err != nil {
			return nil, err
		}
		allowances = append(allowances, a)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return allowances, nil
}

// UpdateAllowance implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateAllowance(ctx context.Context, req payroll.UpdateAllowanceRequest) (payroll.Allowance, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	if req.Value != nil {
		setParts = append(setParts, fmt.Sprintf("value = $%d", argIdx))
		args = append(args, *req.Value)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE allowances SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), argIdx, allowanceColumns)
	args = append(args, req.ID)

	updated, err := scanAllowance(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Allowance{}, payroll.ErrAllowanceNotFound
		}
		return payroll.Allowance{}, fmt.Errorf("failed to update allowance: %w", err)
	}

	return updated, nil
}

// ========== DEDUCTIONS ==========

const deductionColumns = `id, employee_id, deduction_type, value, is_active, created_at, updated_at`

func scanDeduction(row pgx.Row) (payroll.Deduction, error) {
	var d payroll.Deduction
	err := row.Scan(
		&d.ID, &d.EmployeeID, &d.DeductionType, &d.Value,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

// CreateDeduction implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateDeduction(ctx context.Context, d payroll.Deduction) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO deductions (id, employee_id, deduction_type, value, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + deductionColumns

	created, err := scanDeduction(q.QueryRow(ctx, query,
		uuid.NewString(), d.EmployeeID, d.DeductionType, d.Value, d.IsActive,
	))
	if err != nil {
		return payroll.Deduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return created, nil
}

// GetDeductionByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetDeductionByID(ctx context.Context, id string) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE id = $1`

	d, err := scanDeduction(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Deduction{}, payroll.ErrDeductionNotFound
		}
		return payroll.Deduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

// ListDeductionsByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListDeductionsByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deductionColumns + ` FROM deductions WHERE employee_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	var deductions []payroll.Deduction
	for rows.Next() {
		d, err := scanDeduction(rows)
		if err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deductions, nil
}

// UpdateDeduction implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdateDeduction(ctx context.Context, req payroll.UpdateDeductionRequest) (payroll.Deduction, error) {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	var args []interface{}
	argIdx := 1

	if req.Value != nil {
		setParts = append(setParts, fmt.Sprintf("value = $%d", argIdx))
		args = append(args, *req.Value)
		argIdx++
	}
	if req.IsActive != nil {
		setParts = append(setParts, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}

	query := fmt.Sprintf(`UPDATE deductions SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setParts, ", "), argIdx, deductionColumns)
	args = append(args, req.ID)

	updated, err := scanDeduction(q.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Deduction{}, payroll.ErrDeductionNotFound
		}
		return payroll.Deduction{}, fmt.Errorf("failed to update deduction: %w", err)
	}

	return updated, nil
}

// ========== PAYSLIPS ==========

const payslipColumns = `p.id, p.employee_id, p.start_date, p.end_date, p.total_working_days,
	p.days_worked, p.total_hours, p.regular_hours,
	p.basic_pay, p.total_allowances, p.total_deductions, p.gross_salary, p.withholding_tax, p.net_salary, p.ytd_gross,
	p.status, p.pay_frequency, p.generated_at, p.approved_at, p.created_at, p.updated_at`

func scanPayslip(row pgx.Row, withEmployeeName bool) (payroll.Payslip, error) {
	var p payroll.Payslip
	dest := []interface{}{
		&p.ID, &p.EmployeeID, &p.StartDate, &p.EndDate, &p.TotalWorkingDays,
		&p.DaysWorked, &p.TotalHours, &p.RegularHours,
		&p.BasicPay, &p.TotalAllowances, &p.TotalDeductions, &p.GrossSalary, &p.WithholdingTax, &p.NetSalary, &p.YTDGross,
		&p.Status, &p.PayFrequency, &p.GeneratedAt, &p.ApprovedAt, &p.CreatedAt, &p.UpdatedAt,
	}
	if withEmployeeName {
		dest = append(dest, &p.EmployeeName)
	}
	err := row.Scan(dest...)
	return p, err
}

// CreatePayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payslips (
			id, employee_id, start_date, end_date, total_working_days,
			days_worked, total_hours, regular_hours,
			basic_pay, total_allowances, total_deductions, gross_salary, withholding_tax, net_salary, ytd_gross,
			status, pay_frequency, generated_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18
		)
		RETURNING ` + payslipColumns

	created, err := scanPayslip(q.QueryRow(ctx, query,
		uuid.NewString(), p.EmployeeID, p.StartDate, p.EndDate, p.TotalWorkingDays,
		p.DaysWorked, p.TotalHours, p.RegularHours,
		p.BasicPay, p.TotalAllowances, p.TotalDeductions, p.GrossSalary, p.WithholdingTax, p.NetSalary, p.YTDGross,
		p.Status, p.PayFrequency, p.GeneratedAt,
	), false)
	if err != nil {
		return payroll.Payslip{}, fmt.Errorf("failed to create payslip: %w", err)
	}

	return created, nil
}

// CreatePayslipLines implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreatePayslipLines(ctx context.Context, payslipID string, allowances []payroll.PayslipAllowance, deductions []payroll.PayslipDeduction) error {
	q := GetQuerier(ctx, r.db)

	for _, line := range allowances {
		_, err := q.Exec(ctx, `
			INSERT INTO payslip_allowances (id, payslip_id, allowance_type, amount)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), payslipID, line.AllowanceType, line.Amount)
		if err != nil {
			return fmt.Errorf("failed to create payslip allowance line: %w", err)
		}
	}

	for _, line := range deductions {
		_, err := q.Exec(ctx, `
			INSERT INTO payslip_deductions (id, payslip_id, deduction_type, amount)
			VALUES ($1, $2, $3, $4)
		`, uuid.NewString(), payslipID, line.DeductionType, line.Amount)
		if err != nil {
			return fmt.Errorf("failed to create payslip deduction line: %w", err)
		}
	}

	return nil
}

// ReplacePayslipLines implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ReplacePayslipLines(ctx context.Context, payslipID string, allowances []payroll.PayslipAllowance, deductions []payroll.PayslipDeduction) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payslip_allowances WHERE payslip_id = $1`, payslipID); err != nil {
		return fmt.Errorf("failed to clear payslip allowance lines: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM payslip_deductions WHERE payslip_id = $1`, payslipID); err != nil {
		return fmt.Errorf("failed to clear payslip deduction lines: %w", err)
	}

	return r.CreatePayslipLines(ctx, payslipID, allowances, deductions)
}

// GetPayslipByID implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetPayslipByID(ctx context.Context, id string) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `, e.full_name
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.id = $1
	`

	p, err := scanPayslip(q.QueryRow(ctx, query, id), true)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to get payslip: %w", err)
	}

	if p.Allowances, err = r.listPayslipAllowances(ctx, q, id); err != nil {
		return payroll.Payslip{}, err
	}
	if p.Deductions, err = r.listPayslipDeductions(ctx, q, id); err != nil {
		return payroll.Payslip{}, err
	}

	return p, nil
}

func (r *payrollRepositoryImpl) listPayslipAllowances(ctx context.Context, q database.Querier, payslipID string) ([]payroll.PayslipAllowance, error) {
	rows, err := q.Query(ctx, `
		SELECT id, payslip_id, allowance_type, amount
		FROM payslip_allowances
		WHERE payslip_id = $1
		ORDER BY allowance_type
	`, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip allowance lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.PayslipAllowance
	for rows.Next() {
		var line payroll.PayslipAllowance
		if err := rows.Scan(&line.ID, &line.PayslipID, &line.AllowanceType, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

func (r *payrollRepositoryImpl) listPayslipDeductions(ctx context.Context, q database.Querier, payslipID string) ([]payroll.PayslipDeduction, error) {
	rows, err := q.Query(ctx, `
		SELECT id, payslip_id, deduction_type, amount
		FROM payslip_deductions
		WHERE payslip_id = $1
		ORDER BY deduction_type
	`, payslipID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslip deduction lines: %w", err)
	}
	defer rows.Close()

	var lines []payroll.PayslipDeduction
	for rows.Next() {
		var line payroll.PayslipDeduction
		if err := rows.Scan(&line.ID, &line.PayslipID, &line.DeductionType, &line.Amount); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// ListPayslips implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) ([]payroll.Payslip, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.EmployeeID != nil {
		where += fmt.Sprintf(" AND p.employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil {
		where += fmt.Sprintf(" AND p.status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND p.start_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND p.end_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM payslips p` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payslips: %w", err)
	}

	query := `
		SELECT ` + payslipColumns + `, e.full_name
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id` + where +
		fmt.Sprintf(` ORDER BY p.start_date DESC, e.full_name LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows, true)
		if err != nil {
			return nil, 0, err
		}
		payslips = append(payslips, p)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return payslips, total, nil
}

// UpdatePayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) UpdatePayslip(ctx context.Context, p payroll.Payslip) (payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payslips
		SET start_date = $1, end_date = $2, total_working_days = $3,
			days_worked = $4, total_hours = $5, regular_hours = $6,
			basic_pay = $7, total_allowances = $8, total_deductions = $9,
			gross_salary = $10, withholding_tax = $11, net_salary = $12, ytd_gross = $13,
			status = $14, pay_frequency = $15, approved_at = $16, updated_at = NOW()
		WHERE id = $17
		RETURNING ` + payslipColumns

	updated, err := scanPayslip(q.QueryRow(ctx, query,
		p.StartDate, p.EndDate, p.TotalWorkingDays,
		p.DaysWorked, p.TotalHours, p.RegularHours,
		p.BasicPay, p.TotalAllowances, p.TotalDeductions,
		p.GrossSalary, p.WithholdingTax, p.NetSalary, p.YTDGross,
		p.Status, p.PayFrequency, p.ApprovedAt, p.ID,
	), false)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payslip{}, payroll.ErrPayslipNotFound
		}
		return payroll.Payslip{}, fmt.Errorf("failed to update payslip: %w", err)
	}

	return updated, nil
}

// DeletePayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeletePayslip(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM payslip_allowances WHERE payslip_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payslip allowance lines: %w", err)
	}
	if _, err := q.Exec(ctx, `DELETE FROM payslip_deductions WHERE payslip_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete payslip deduction lines: %w", err)
	}

	tag, err := q.Exec(ctx, `DELETE FROM payslips WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payslip: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayslipNotFound
	}

	return nil
}

// HasOverlappingPayslip implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) HasOverlappingPayslip(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Containment, not intersection: an existing wider period blocks a
	// narrower one, but staggered periods are allowed.
	query := `
		SELECT EXISTS (
			SELECT 1 FROM payslips
			WHERE employee_id = $1 AND start_date <= $2 AND end_date >= $3 AND id <> $4
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, start, end, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check payslip overlap: %w", err)
	}

	return exists, nil
}

// YTDGross implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) YTDGross(ctx context.Context, employeeID string, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(gross_salary), 0)
		FROM payslips
		WHERE employee_id = $1
			AND status IN ('approved', 'paid')
			AND EXTRACT(YEAR FROM start_date) = $2
	`

	var total decimal.Decimal
	if err := q.QueryRow(ctx, query, employeeID, year).Scan(&total); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum year-to-date gross: %w", err)
	}

	return total, nil
}

// GetStats implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetStats(ctx context.Context, filter payroll.StatsFilter) (payroll.PayslipStats, error) {
	q := GetQuerier(ctx, r.db)

	where := ` WHERE 1=1`
	var args []interface{}
	argIdx := 1

	if filter.StartDate != nil {
		where += fmt.Sprintf(" AND p.start_date >= $%d", argIdx)
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		where += fmt.Sprintf(" AND p.end_date <= $%d", argIdx)
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Department != nil {
		where += fmt.Sprintf(" AND e.department = $%d", argIdx)
		args = append(args, *filter.Department)
		argIdx++
	}

	stats := payroll.PayslipStats{
		TotalGross:     decimal.Zero,
		TotalNet:       decimal.Zero,
		CountsByStatus: make(map[string]int),
	}

	aggregateQuery := `
		SELECT COUNT(*), COALESCE(SUM(p.gross_salary), 0), COALESCE(SUM(p.net_salary), 0)
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id` + where
	if err := q.QueryRow(ctx, aggregateQuery, args...).Scan(&stats.TotalCount, &stats.TotalGross, &stats.TotalNet); err != nil {
		return payroll.PayslipStats{}, fmt.Errorf("failed to aggregate payslip stats: %w", err)
	}

	statusQuery := `
		SELECT p.status, COUNT(*)
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id` + where + `
		GROUP BY p.status`
	rows, err := q.Query(ctx, statusQuery, args...)
	if err != nil {
		return payroll.PayslipStats{}, fmt.Errorf("failed to count payslips by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return payroll.PayslipStats{}, err
		}
		stats.CountsByStatus[status] = count
	}

	if err = rows.Err(); err != nil {
		return payroll.PayslipStats{}, err
	}

	return stats, nil
}

// ListForRegister implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListForRegister(ctx context.Context, start, end time.Time) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payslipColumns + `, e.full_name
		FROM payslips p
		JOIN employees e ON p.employee_id = e.id
		WHERE p.start_date >= $1 AND p.end_date <= $2
		ORDER BY e.full_name, p.start_date
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips for register: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		p, err := scanPayslip(rows, true)
		if err != nil {
			return nil, err
		}
		payslips = append(payslips, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payslips, nil
}
