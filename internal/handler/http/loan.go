package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/loan"
	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LoanHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	PostPayment(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Archive(w http.ResponseWriter, r *http.Request)
}

type LoanHandlerImpl struct {
	loanService loan.LoanService
}

func NewLoanHandler(loanService loan.LoanService) LoanHandler {
	return &LoanHandlerImpl{loanService: loanService}
}

// Create implements LoanHandler.
func (h *LoanHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req loan.CreateLoanRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.loanService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create loan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created", created)
}

// Get implements LoanHandler.
func (h *LoanHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	l, err := h.loanService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, l)
}

// List implements LoanHandler.
func (h *LoanHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var filter loan.ListFilter

	if v := r.URL.Query().Get("personnel_id"); v != "" {
		filter.PersonnelID = &v
	}
	if v := r.URL.Query().Get("kind"); v != "" {
		kind := loan.Kind(v)
		filter.Kind = &kind
	}
	if v := r.URL.Query().Get("status"); v != "" {
		status := loan.Status(v)
		filter.Status = &status
	}

	loans, err := h.loanService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List loans service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, loans)
}

// PostPayment implements LoanHandler.
func (h *LoanHandlerImpl) PostPayment(w http.ResponseWriter, r *http.Request) {
	var req loan.PostPaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("PostPayment decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.loanService.PostPayment(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("PostPayment service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payment posted", updated)
}

// Cancel implements LoanHandler.
func (h *LoanHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.loanService.Cancel(r.Context(), id); err != nil {
		slog.Error("Cancel loan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan cancelled", nil)
}

// Archive implements LoanHandler.
func (h *LoanHandlerImpl) Archive(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.loanService.Archive(r.Context(), id); err != nil {
		slog.Error("Archive loan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan archived", nil)
}
