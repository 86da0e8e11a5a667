package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/deduction"
	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

type DeductionHandler interface {
	CreateType(w http.ResponseWriter, r *http.Request)
	GetType(w http.ResponseWriter, r *http.Request)
	ListTypes(w http.ResponseWriter, r *http.Request)
	UpdateType(w http.ResponseWriter, r *http.Request)
	DeleteType(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	CheckObligation(w http.ResponseWriter, r *http.Request)
	GetPersonnelDeductions(w http.ResponseWriter, r *http.Request)
	ArchiveInstance(w http.ResponseWriter, r *http.Request)
}

type DeductionHandlerImpl struct {
	deductionService deduction.DeductionService
}

func NewDeductionHandler(deductionService deduction.DeductionService) DeductionHandler {
	return &DeductionHandlerImpl{deductionService: deductionService}
}

// CreateType implements DeductionHandler.
func (h *DeductionHandlerImpl) CreateType(w http.ResponseWriter, r *http.Request) {
	var req deduction.CreateDeductionTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.deductionService.CreateType(r.Context(), req)
	if err != nil {
		slog.Error("CreateType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction type created", created)
}

// GetType implements DeductionHandler.
func (h *DeductionHandlerImpl) GetType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	dt, err := h.deductionService.GetType(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dt)
}

// ListTypes implements DeductionHandler.
func (h *DeductionHandlerImpl) ListTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.deductionService.ListTypes(r.Context())
	if err != nil {
		slog.Error("ListTypes service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, types)
}

// UpdateType implements DeductionHandler.
func (h *DeductionHandlerImpl) UpdateType(w http.ResponseWriter, r *http.Request) {
	var req deduction.UpdateDeductionTypeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateType decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	if err := h.deductionService.UpdateType(r.Context(), req); err != nil {
		slog.Error("UpdateType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction type updated", nil)
}

// DeleteType implements DeductionHandler.
func (h *DeductionHandlerImpl) DeleteType(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.DeleteType(r.Context(), id); err != nil {
		slog.Error("DeleteType service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction type deleted", nil)
}

// Apply implements DeductionHandler.
func (h *DeductionHandlerImpl) Apply(w http.ResponseWriter, r *http.Request) {
	var req deduction.ApplyDeductionRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Apply decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	applyResp, err := h.deductionService.Apply(r.Context(), req)
	if err != nil {
		slog.Error("Apply service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if applyResp.RequiresConfirmation {
		response.SuccessWithMessage(w, "Confirmation required for duplicate deductions", applyResp)
		return
	}
	response.Created(w, "Deductions applied", applyResp)
}

// CheckObligation implements DeductionHandler.
func (h *DeductionHandlerImpl) CheckObligation(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "personnelId")

	proposed, err := decimal.NewFromString(r.URL.Query().Get("proposed"))
	if err != nil {
		response.BadRequest(w, "Invalid proposed amount", nil)
		return
	}

	checkResp, err := h.deductionService.CheckObligation(r.Context(), personnelID, proposed)
	if err != nil {
		slog.Error("CheckObligation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, checkResp)
}

// GetPersonnelDeductions implements DeductionHandler.
func (h *DeductionHandlerImpl) GetPersonnelDeductions(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "personnelId")

	instances, err := h.deductionService.GetPersonnelDeductions(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, instances)
}

// ArchiveInstance implements DeductionHandler.
func (h *DeductionHandlerImpl) ArchiveInstance(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.deductionService.ArchiveInstance(r.Context(), id); err != nil {
		slog.Error("ArchiveInstance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction instance archived", nil)
}
