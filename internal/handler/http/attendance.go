package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/brgysanroque/payroll-backend-go/internal/domain/attendance"
	"github.com/brgysanroque/payroll-backend-go/internal/domain/payroll"
	"github.com/brgysanroque/payroll-backend-go/internal/handler/http/response"
	"github.com/brgysanroque/payroll-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	ManualEntry(w http.ResponseWriter, r *http.Request)
	GetForPeriod(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceService}
}

// ManualEntry implements AttendanceHandler.
func (h *AttendanceHandlerImpl) ManualEntry(w http.ResponseWriter, r *http.Request) {
	var req attendance.ManualEntryRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ManualEntry decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.attendanceService.ManualEntry(r.Context(), req)
	if err != nil {
		slog.Error("ManualEntry service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance deduction recorded", created)
}

// GetForPeriod implements AttendanceHandler.
func (h *AttendanceHandlerImpl) GetForPeriod(w http.ResponseWriter, r *http.Request) {
	personnelID := chi.URLParam(r, "personnelId")

	start, okStart := validator.IsValidDate(r.URL.Query().Get("period_start"))
	end, okEnd := validator.IsValidDate(r.URL.Query().Get("period_end"))
	if !okStart || !okEnd || end.Before(start) {
		response.HandleError(w, payroll.ErrInvalidPeriod)
		return
	}

	records, err := h.attendanceService.GetForPeriod(r.Context(), personnelID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// Delete implements AttendanceHandler.
func (h *AttendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.attendanceService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete attendance deduction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deduction deleted", nil)
}
