package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bayanihr/payroll-backend-go/internal/domain/payroll"
	"github.com/bayanihr/payroll-backend-go/internal/handler/http/response"
	"github.com/bayanihr/payroll-backend-go/internal/pkg/validator"
	"github.com/bayanihr/payroll-backend-go/internal/service/document"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	// Payslips
	GeneratePayslips(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	ListPayslips(w http.ResponseWriter, r *http.Request)
	UpdatePayslip(w http.ResponseWriter, r *http.Request)
	DeletePayslip(w http.ResponseWriter, r *http.Request)
	GetStats(w http.ResponseWriter, r *http.Request)

	// Documents
	DownloadPayslipPDF(w http.ResponseWriter, r *http.Request)
	DownloadRegisterXLSX(w http.ResponseWriter, r *http.Request)

	// Allowances and deductions
	CreateAllowance(w http.ResponseWriter, r *http.Request)
	ListAllowances(w http.ResponseWriter, r *http.Request)
	UpdateAllowance(w http.ResponseWriter, r *http.Request)
	DeactivateAllowance(w http.ResponseWriter, r *http.Request)
	CreateDeduction(w http.ResponseWriter, r *http.Request)
	ListDeductions(w http.ResponseWriter, r *http.Request)
	UpdateDeduction(w http.ResponseWriter, r *http.Request)
	DeactivateDeduction(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService  payroll.PayrollService
	documentService document.DocumentService
}

func NewPayrollHandler(payrollService payroll.PayrollService, documentService document.DocumentService) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService:  payrollService,
		documentService: documentService,
	}
}

// ========== PAYSLIPS ==========

func (h *payrollHandlerImpl) GeneratePayslips(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayslipsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.GeneratePayslips(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip generation completed", result)
}

func (h *payrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) ListPayslips(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PayslipFilter

	if v := r.URL.Query().Get("employee_id"); v != "" {
		filter.EmployeeID = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		if !payroll.ValidPayslipStatus(v) {
			response.BadRequest(w, "Invalid status filter", nil)
			return
		}
		filter.Status = &v
	}
	if v := r.URL.Query().Get("start_date"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "start_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.StartDate = &d
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "end_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.EndDate = &d
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.payrollService.ListPayslips(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) UpdatePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdatePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeletePayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.DeletePayslip(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip deleted", nil)
}

func (h *payrollHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	var filter payroll.StatsFilter

	if v := r.URL.Query().Get("start_date"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "start_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.StartDate = &d
	}
	if v := r.URL.Query().Get("end_date"); v != "" {
		d, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "end_date must be a valid date (YYYY-MM-DD)", nil)
			return
		}
		filter.EndDate = &d
	}
	if v := r.URL.Query().Get("department"); v != "" {
		filter.Department = &v
	}

	result, err := h.payrollService.GetStats(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== DOCUMENTS ==========

func (h *payrollHandlerImpl) DownloadPayslipPDF(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	data, filename, err := h.documentService.PayslipPDF(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/pdf", filename, data)
}

func (h *payrollHandlerImpl) DownloadRegisterXLSX(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")

	data, filename, err := h.documentService.PayrollRegisterXLSX(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", filename, data)
}

// ========== ALLOWANCES ==========

func (h *payrollHandlerImpl) CreateAllowance(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateAllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.payrollService.CreateAllowance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Allowance created", result)
}

func (h *payrollHandlerImpl) ListAllowances(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.payrollService.ListAllowances(r.Context(), employeeID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateAllowance(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateAllowanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdateAllowance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeactivateAllowance(w http.ResponseWriter, r *http.Request) {
	inactive := false
	req := payroll.UpdateAllowanceRequest{
		ID:       chi.URLParam(r, "id"),
		IsActive: &inactive,
	}

	if _, err := h.payrollService.UpdateAllowance(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Allowance deactivated", nil)
}

// ========== DEDUCTIONS ==========

func (h *payrollHandlerImpl) CreateDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.EmployeeID = chi.URLParam(r, "id")

	result, err := h.payrollService.CreateDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction created", result)
}

func (h *payrollHandlerImpl) ListDeductions(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.payrollService.ListDeductions(r.Context(), employeeID, activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) UpdateDeduction(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdateDeductionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.payrollService.UpdateDeduction(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) DeactivateDeduction(w http.ResponseWriter, r *http.Request) {
	inactive := false
	req := payroll.UpdateDeductionRequest{
		ID:       chi.URLParam(r, "id"),
		IsActive: &inactive,
	}

	if _, err := h.payrollService.UpdateDeduction(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction deactivated", nil)
}
