package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type AttendanceHandler interface {
	ClockIn(w http.ResponseWriter, r *http.Request)
	BreakStart(w http.ResponseWriter, r *http.Request)
	BreakEnd(w http.ResponseWriter, r *http.Request)
	ClockOut(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ManualUpsert(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{
		attendanceService: attendanceService,
	}
}

func (h *attendanceHandlerImpl) transition(
	w http.ResponseWriter,
	r *http.Request,
	message string,
	fn func(workerID int64) (attendance.AttendanceResponse, error),
) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := fn(workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, message, result)
}

// ClockIn implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockIn(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Clocked in", func(workerID int64) (attendance.AttendanceResponse, error) {
		return h.attendanceService.ClockIn(r.Context(), workerID)
	})
}

// BreakStart implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakStart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Break started", func(workerID int64) (attendance.AttendanceResponse, error) {
		return h.attendanceService.BreakStart(r.Context(), workerID)
	})
}

// BreakEnd implements AttendanceHandler.
func (h *attendanceHandlerImpl) BreakEnd(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Break ended", func(workerID int64) (attendance.AttendanceResponse, error) {
		return h.attendanceService.BreakEnd(r.Context(), workerID)
	})
}

// ClockOut implements AttendanceHandler.
func (h *attendanceHandlerImpl) ClockOut(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, "Clocked out", func(workerID int64) (attendance.AttendanceResponse, error) {
		return h.attendanceService.ClockOut(r.Context(), workerID)
	})
}

// ListMine implements AttendanceHandler.
func (h *attendanceHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	records, err := h.attendanceService.ListMine(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, records)
}

// ManualUpsert implements AttendanceHandler. Admin-only corrective path:
// the target worker comes from the URL, not the token.
func (h *attendanceHandlerImpl) ManualUpsert(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid worker id", nil)
		return
	}

	var req attendance.ManualUpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ManualUpsert decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.ManualUpsert(r.Context(), workerID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Attendance record saved", result)
}
