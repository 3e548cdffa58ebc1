package payroll

import (
	"context"
	"time"

	"github.com/bayanihr/payroll-backend-go/internal/domain/attendance"
	"github.com/bayanihr/payroll-backend-go/internal/domain/employee"
	"github.com/bayanihr/payroll-backend-go/internal/domain/leave"
	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/database"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/bayanihr/payroll-backend-go/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.EventRepository
	leaveRepo      leave.LeaveRepository

	aggregator *AttendanceAggregator
	prorator   *CompensationProrator
	taxCalc    *WithholdingTaxCalculator
	loc        *time.Location
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.EventRepository,
	leaveRepo leave.LeaveRepository,
	loc *time.Location,
	taxTable payroll.TaxTable,
) payroll.PayrollService {
	if loc == nil {
		loc = time.UTC
	}
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		aggregator:     NewAttendanceAggregator(loc),
		prorator:       NewCompensationProrator(),
		taxCalc:        NewWithholdingTaxCalculator(taxTable),
		loc:            loc,
	}
}

// computed carries the full calculation pipeline output for one
// employee/period before persistence.
type computed struct {
	totals payroll.AttendanceTotals
	pror   ProrationResult
	gross  decimal.Decimal
	tax    decimal.Decimal
	net    decimal.Decimal
}

func (s *PayrollServiceImpl) compute(
	ctx context.Context,
	emp employee.Employee,
	start, end time.Time,
	totalWorkingDays int,
	autoCalculate bool,
	freq payroll.PayFrequency,
) (computed, error) {
	periodStart := dateOnly(start, s.loc)
	periodEnd := dateOnly(end, s.loc)

	var events []attendance.Event
	var leaves []leave.Leave
	var err error

	if autoCalculate {
		events, err = s.attendanceRepo.ListByEmployeeRange(ctx, emp.ID, periodStart, periodEnd.AddDate(0, 0, 1))
		if err != nil {
			return computed{}, err
		}
	} else {
		leaves, err = s.leaveRepo.ListApprovedOverlapping(ctx, emp.ID, periodStart, periodEnd)
		if err != nil {
			return computed{}, err
		}
	}

	totals := s.aggregator.Aggregate(events, leaves, periodStart, periodEnd, autoCalculate)

	allowances, err := s.payrollRepo.ListAllowancesByEmployee(ctx, emp.ID, true)
	if err != nil {
		return computed{}, err
	}
	deductions, err := s.payrollRepo.ListDeductionsByEmployee(ctx, emp.ID, true)
	if err != nil {
		return computed{}, err
	}

	pror := s.prorator.Prorate(emp, allowances, deductions, totals, totalWorkingDays, freq)

	gross := pror.BasicPay.Add(pror.TotalAllowances)
	tax, err := s.taxCalc.PeriodTax(gross, freq, periodEnd)
	if err != nil {
		return computed{}, err
	}
	net := gross.Sub(pror.TotalDeductions).Sub(tax)

	return computed{
		totals: totals,
		pror:   pror,
		gross:  gross,
		tax:    tax,
		net:    net,
	}, nil
}

// ========== GENERATION ==========

func (s *PayrollServiceImpl) GeneratePayslips(ctx context.Context, req payroll.GeneratePayslipsRequest) (payroll.GeneratePayslipsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GeneratePayslipsResponse{}, err
	}

	start, end := req.Period()
	freq := payroll.PayFrequency(req.PayFrequency)

	resp := payroll.GeneratePayslipsResponse{
		Generated: []string{},
		Errors:    []payroll.GenerationError{},
	}

	for _, employeeID := range req.EmployeeIDs {
		id, err := s.generateOne(ctx, employeeID, req, start, end, freq)
		if err != nil {
			resp.Errors = append(resp.Errors, payroll.GenerationError{
				EmployeeID: employeeID,
				Message:    err.Error(),
			})
			continue
		}
		resp.Generated = append(resp.Generated, id)
	}

	return resp, nil
}

func (s *PayrollServiceImpl) generateOne(
	ctx context.Context,
	employeeID string,
	req payroll.GeneratePayslipsRequest,
	start, end time.Time,
	freq payroll.PayFrequency,
) (string, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	if !emp.IsActive {
		return "", employee.ErrEmployeeInactive
	}

	overlap, err := s.payrollRepo.HasOverlappingPayslip(ctx, emp.ID, dateOnly(start, s.loc), dateOnly(end, s.loc), "")
	if err != nil {
		return "", err
	}
	if overlap {
		return "", payroll.ErrPayslipPeriodOverlap
	}

	comp, err := s.compute(ctx, emp, start, end, req.TotalWorkingDays, req.AutoCalculateAttendance, freq)
	if err != nil {
		return "", err
	}

	ytd, err := s.payrollRepo.YTDGross(ctx, emp.ID, dateOnly(start, s.loc).Year())
	if err != nil {
		return "", err
	}

	p := payroll.Payslip{
		EmployeeID:       emp.ID,
		StartDate:        dateOnly(start, s.loc),
		EndDate:          dateOnly(end, s.loc),
		TotalWorkingDays: req.TotalWorkingDays,
		DaysWorked:       comp.totals.DaysWorked,
		TotalHours:       comp.totals.TotalHours,
		RegularHours:     comp.totals.RegularHours,
		BasicPay:         comp.pror.BasicPay,
		TotalAllowances:  comp.pror.TotalAllowances,
		TotalDeductions:  comp.pror.TotalDeductions,
		GrossSalary:      comp.gross,
		WithholdingTax:   comp.tax,
		NetSalary:        comp.net,
		YTDGross:         ytd.Add(comp.gross),
		Status:           payroll.PayslipStatusDraft,
		PayFrequency:     freq,
		GeneratedAt:      time.Now(),
	}

	var createdID string
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		created, err := s.payrollRepo.CreatePayslip(txCtx, p)
		if err != nil {
			return err
		}
		if err := s.payrollRepo.CreatePayslipLines(txCtx, created.ID, comp.pror.AllowanceLines, comp.pror.DeductionLines); err != nil {
			return err
		}

		createdID = created.ID
		return nil
	})
	if err != nil {
		return "", err
	}

	return createdID, nil
}

// ========== PAYSLIPS ==========

func (s *PayrollServiceImpl) GetPayslip(ctx context.Context, id string) (payroll.PayslipResponse, error) {
	p, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return toPayslipResponse(p), nil
}

func (s *PayrollServiceImpl) ListPayslips(ctx context.Context, filter payroll.PayslipFilter) (payroll.ListPayslipsResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 || filter.Limit > 100 {
		filter.Limit = 20
	}

	payslips, total, err := s.payrollRepo.ListPayslips(ctx, filter)
	if err != nil {
		return payroll.ListPayslipsResponse{}, err
	}

	data := make([]payroll.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		data = append(data, toPayslipResponse(p))
	}

	return payroll.ListPayslipsResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

func (s *PayrollServiceImpl) UpdatePayslip(ctx context.Context, req payroll.UpdatePayslipRequest) (payroll.PayslipResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayslipResponse{}, err
	}

	p, err := s.payrollRepo.GetPayslipByID(ctx, req.ID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	// Terminal payslips reject every patch, including no-op ones; even an
	// empty update would rewrite the row.
	if p.Status.IsTerminal() {
		return payroll.PayslipResponse{}, payroll.ErrPayslipLocked
	}

	if req.RequiresRecompute() && !p.Status.IsEditable() {
		return payroll.PayslipResponse{}, payroll.ErrPayslipLocked
	}

	var targetStatus *payroll.PayslipStatus
	if req.Status != nil {
		target := payroll.PayslipStatus(*req.Status)
		if target != p.Status {
			if !p.Status.CanTransitionTo(target) {
				return payroll.PayslipResponse{}, payroll.ErrInvalidStatusChange
			}
			targetStatus = &target
		}
	}

	periodChanged := req.StartDate != nil || req.EndDate != nil
	if req.StartDate != nil {
		d, _ := validator.IsValidDate(*req.StartDate)
		p.StartDate = dateOnly(d, s.loc)
	}
	if req.EndDate != nil {
		d, _ := validator.IsValidDate(*req.EndDate)
		p.EndDate = dateOnly(d, s.loc)
	}
	if p.EndDate.Before(p.StartDate) {
		return payroll.PayslipResponse{}, validator.ValidationErrors{
			{Field: "end_date", Message: "must not be before start_date"},
		}
	}

	// A moved period must pass the same conflict check as generation,
	// ignoring the payslip being edited.
	if periodChanged {
		overlap, err := s.payrollRepo.HasOverlappingPayslip(ctx, p.EmployeeID, p.StartDate, p.EndDate, p.ID)
		if err != nil {
			return payroll.PayslipResponse{}, err
		}
		if overlap {
			return payroll.PayslipResponse{}, payroll.ErrPayslipPeriodOverlap
		}
	}
	if req.TotalWorkingDays != nil {
		p.TotalWorkingDays = *req.TotalWorkingDays
	}
	if req.PayFrequency != nil {
		p.PayFrequency = payroll.PayFrequency(*req.PayFrequency)
	}

	var lines *ProrationResult
	if req.RequiresRecompute() {
		emp, err := s.employeeRepo.GetByID(ctx, p.EmployeeID)
		if err != nil {
			return payroll.PayslipResponse{}, err
		}

		// A period edit assumes full attendance; punch-driven payslips
		// are regenerated, not patched.
		comp, err := s.compute(ctx, emp, p.StartDate, p.EndDate, p.TotalWorkingDays, false, p.PayFrequency)
		if err != nil {
			return payroll.PayslipResponse{}, err
		}

		ytd, err := s.payrollRepo.YTDGross(ctx, emp.ID, p.StartDate.Year())
		if err != nil {
			return payroll.PayslipResponse{}, err
		}

		p.DaysWorked = comp.totals.DaysWorked
		p.TotalHours = comp.totals.TotalHours
		p.RegularHours = comp.totals.RegularHours
		p.BasicPay = comp.pror.BasicPay
		p.TotalAllowances = comp.pror.TotalAllowances
		p.TotalDeductions = comp.pror.TotalDeductions
		p.GrossSalary = comp.gross
		p.WithholdingTax = comp.tax
		p.NetSalary = comp.net
		p.YTDGross = ytd.Add(comp.gross)
		lines = &comp.pror
	}

	if targetStatus != nil {
		p.Status = *targetStatus
		if *targetStatus == payroll.PayslipStatusApproved {
			now := time.Now()
			p.ApprovedAt = &now
		}
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.payrollRepo.UpdatePayslip(txCtx, p); err != nil {
			return err
		}
		if lines != nil {
			if err := s.payrollRepo.ReplacePayslipLines(txCtx, p.ID, lines.AllowanceLines, lines.DeductionLines); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return payroll.PayslipResponse{}, err
	}

	return s.GetPayslip(ctx, p.ID)
}

func (s *PayrollServiceImpl) DeletePayslip(ctx context.Context, id string) error {
	p, err := s.payrollRepo.GetPayslipByID(ctx, id)
	if err != nil {
		return err
	}
	if !p.Status.IsEditable() {
		return payroll.ErrPayslipLocked
	}

	return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		return s.payrollRepo.DeletePayslip(txCtx, id)
	})
}

func (s *PayrollServiceImpl) GetStats(ctx context.Context, filter payroll.StatsFilter) (payroll.PayslipStatsResponse, error) {
	stats, err := s.payrollRepo.GetStats(ctx, filter)
	if err != nil {
		return payroll.PayslipStatsResponse{}, err
	}

	return payroll.PayslipStatsResponse{
		TotalCount:     stats.TotalCount,
		TotalGross:     stats.TotalGross,
		TotalNet:       stats.TotalNet,
		CountsByStatus: stats.CountsByStatus,
	}, nil
}

// ========== ALLOWANCES ==========

func (s *PayrollServiceImpl) CreateAllowance(ctx context.Context, req payroll.CreateAllowanceRequest) (payroll.AllowanceResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AllowanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.AllowanceResponse{}, err
	}

	isTaxable := true
	if req.IsTaxable != nil {
		isTaxable = *req.IsTaxable
	}

	created, err := s.payrollRepo.CreateAllowance(ctx, payroll.Allowance{
		EmployeeID:    emp.ID,
		AllowanceType: payroll.AllowanceType(req.AllowanceType),
		Value:         *req.Value,
		Description:   req.Description,
		IsTaxable:     isTaxable,
		IsActive:      true,
	})
	if err != nil {
		return payroll.AllowanceResponse{}, err
	}

	return toAllowanceResponse(created), nil
}

func (s *PayrollServiceImpl) ListAllowances(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.AllowanceResponse, error) {
	allowances, err := s.payrollRepo.ListAllowancesByEmployee(ctx, employeeID, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.AllowanceResponse, 0, len(allowances))
	for _, a := range allowances {
		resp = append(resp, toAllowanceResponse(a))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) UpdateAllowance(ctx context.Context, req payroll.UpdateAllowanceRequest) (payroll.AllowanceResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.AllowanceResponse{}, err
	}

	updated, err := s.payrollRepo.UpdateAllowance(ctx, req)
	if err != nil {
		return payroll.AllowanceResponse{}, err
	}

	return toAllowanceResponse(updated), nil
}

// ========== DEDUCTIONS ==========

func (s *PayrollServiceImpl) CreateDeduction(ctx context.Context, req payroll.CreateDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	created, err := s.payrollRepo.CreateDeduction(ctx, payroll.Deduction{
		EmployeeID:    emp.ID,
		DeductionType: payroll.DeductionType(req.DeductionType),
		Value:         *req.Value,
		IsActive:      true,
	})
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	return toDeductionResponse(created), nil
}

func (s *PayrollServiceImpl) ListDeductions(ctx context.Context, employeeID string, activeOnly bool) ([]payroll.DeductionResponse, error) {
	deductions, err := s.payrollRepo.ListDeductionsByEmployee(ctx, employeeID, activeOnly)
	if err != nil {
		return nil, err
	}

	resp := make([]payroll.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		resp = append(resp, toDeductionResponse(d))
	}
	return resp, nil
}

func (s *PayrollServiceImpl) UpdateDeduction(ctx context.Context, req payroll.UpdateDeductionRequest) (payroll.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.DeductionResponse{}, err
	}

	updated, err := s.payrollRepo.UpdateDeduction(ctx, req)
	if err != nil {
		return payroll.DeductionResponse{}, err
	}

	return toDeductionResponse(updated), nil
}

// ========== MAPPERS ==========

func toPayslipResponse(p payroll.Payslip) payroll.PayslipResponse {
	resp := payroll.PayslipResponse{
		ID:               p.ID,
		EmployeeID:       p.EmployeeID,
		StartDate:        p.StartDate.Format("2006-01-02"),
		EndDate:          p.EndDate.Format("2006-01-02"),
		TotalWorkingDays: p.TotalWorkingDays,
		DaysWorked:       p.DaysWorked,
		TotalHours:       p.TotalHours,
		RegularHours:     p.RegularHours,
		BasicPay:         p.BasicPay,
		TotalAllowances:  p.TotalAllowances,
		TotalDeductions:  p.TotalDeductions,
		GrossSalary:      p.GrossSalary,
		WithholdingTax:   p.WithholdingTax,
		NetSalary:        p.NetSalary,
		YTDGross:         p.YTDGross,
		Status:           string(p.Status),
		PayFrequency:     string(p.PayFrequency),
		GeneratedAt:      p.GeneratedAt.Format(time.RFC3339),
	}

	if p.EmployeeName != nil {
		resp.EmployeeName = *p.EmployeeName
	}
	if p.ApprovedAt != nil {
		approvedAt := p.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &approvedAt
	}

	for _, a := range p.Allowances {
		resp.Allowances = append(resp.Allowances, payroll.PayslipAllowanceResponse{
			ID:            a.ID,
			AllowanceType: string(a.AllowanceType),
			Amount:        a.Amount,
		})
	}
	for _, d := range p.Deductions {
		resp.Deductions = append(resp.Deductions, payroll.PayslipDeductionResponse{
			ID:            d.ID,
			DeductionType: string(d.DeductionType),
			Amount:        d.Amount,
		})
	}

	return resp
}

func toAllowanceResponse(a payroll.Allowance) payroll.AllowanceResponse {
	return payroll.AllowanceResponse{
		ID:            a.ID,
		EmployeeID:    a.EmployeeID,
		AllowanceType: string(a.AllowanceType),
		Value:         a.Value,
		Description:   a.Description,
		IsTaxable:     a.IsTaxable,
		IsActive:      a.IsActive,
	}
}

func toDeductionResponse(d payroll.Deduction) payroll.DeductionResponse {
	return payroll.DeductionResponse{
		ID:            d.ID,
		EmployeeID:    d.EmployeeID,
		DeductionType: string(d.DeductionType),
		Value:         d.Value,
		IsActive:      d.IsActive,
	}
}
