package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type PayrollHandler interface {
	Generate(w http.ResponseWriter, r *http.Request)
	GetEntry(w http.ResponseWriter, r *http.Request)
	ListEntries(w http.ResponseWriter, r *http.Request)
	Release(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	GetPayslip(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Generate implements PayrollHandler.
func (h *PayrollHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	var req payroll.GeneratePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Generate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	entries, err := h.payrollService.Generate(r.Context(), req)
	if err != nil {
		slog.Error("Generate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll generated", entries)
}

// GetEntry implements PayrollHandler.
func (h *PayrollHandlerImpl) GetEntry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.payrollService.GetEntry(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// ListEntries implements PayrollHandler.
func (h *PayrollHandlerImpl) ListEntries(w http.ResponseWriter, r *http.Request) {
	var filter payroll.PayrollFilter

	if v := r.URL.Query().Get("period_start"); v != "" {
		filter.PeriodStart = &v
	}
	if v := r.URL.Query().Get("period_end"); v != "" {
		filter.PeriodEnd = &v
	}
	if v := r.URL.Query().Get("status"); v != "" {
		filter.Status = &v
	}
	if v := r.URL.Query().Get("personnel_id"); v != "" {
		filter.PersonnelID = &v
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 20
	}

	listResp, err := h.payrollService.ListEntries(r.Context(), filter)
	if err != nil {
		slog.Error("ListEntries service error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((listResp.TotalCount + int64(filter.Limit) - 1) / int64(filter.Limit))
	response.SuccessWithMeta(w, listResp.Data, &response.Meta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalItems: listResp.TotalCount,
		TotalPages: totalPages,
	})
}

// Release implements PayrollHandler.
func (h *PayrollHandlerImpl) Release(w http.ResponseWriter, r *http.Request) {
	var req payroll.ReleasePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Release decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.payrollService.Release(r.Context(), req); err != nil {
		slog.Error("Release service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll released", nil)
}

// Archive implements PayrollHandler.
func (h *PayrollHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Archive(r.Context(), id); err != nil {
		slog.Error("Archive service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry archived", nil)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entry deleted", nil)
}

// BulkDelete implements PayrollHandler.
func (h *PayrollHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	var req payroll.BulkDeleteRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkDelete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.payrollService.BulkDelete(r.Context(), req)
	if err != nil {
		slog.Error("BulkDelete service error", "error", err, "failed_id", result.FailedID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll entries deleted", result)
}

// GetPayslip implements PayrollHandler.
func (h *PayrollHandlerImpl) GetPayslip(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payslip, err := h.payrollService.GetPayslip(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, payslip)
}

// GetSummary implements PayrollHandler.
func (h *PayrollHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payrollService.GetSummary(
		r.Context(),
		r.URL.Query().Get("period_start"),
		r.URL.Query().Get("period_end"),
	)
	if err != nil {
		slog.Error("GetSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
