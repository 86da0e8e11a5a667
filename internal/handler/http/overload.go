package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/overload"
	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type OverloadPayHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetPersonnelOverloadPay(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type OverloadPayHandlerImpl struct {
	overloadService overload.OverloadPayService
}

func NewOverloadPayHandler(overloadService overload.OverloadPayService) OverloadPayHandler {
	return &OverloadPayHandlerImpl{overloadService: overloadService}
}

// Create implements OverloadPayHandler.
func (h *OverloadPayHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req overload.CreateOverloadPayRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create overload pay decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.overloadService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create overload pay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Overload pay created", created)
}

// GetPersonnelOverloadPay implements OverloadPayHandler.
func (h *OverloadPayHandlerImpl) GetPersonnelOverloadPay(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "personnelId")

	items, err := h.overloadService.GetPersonnelOverloadPay(r.Context(), personnelID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, items)
}

// Archive implements OverloadPayHandler.
func (h *OverloadPayHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.overloadService.Archive(r.Context(), id); err != nil {
		slog.Error("Archive overload pay service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Overload pay archived", nil)
}
