package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type WageHandler interface {
	CreateWindow(w http.ResponseWriter, r *http.Request)
	ListWindows(w http.ResponseWriter, r *http.Request)
	CreateDefault(w http.ResponseWriter, r *http.Request)
	ListDefaults(w http.ResponseWriter, r *http.Request)
}

type wageHandlerImpl struct {
	wageService wage.WageService
}

func NewWageHandler(wageService wage.WageService) WageHandler {
	return &wageHandlerImpl{wageService: wageService}
}

// CreateWindow implements WageHandler.
func (h *wageHandlerImpl) CreateWindow(w http.ResponseWriter, r *http.Request) {
	var req wage.CreateWageWindowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateWindow decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.wageService.CreateWindow(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Wage window created", result)
}

// ListWindows implements WageHandler.
func (h *wageHandlerImpl) ListWindows(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid worker id", nil)
		return
	}

	windows, err := h.wageService.ListWindows(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, windows)
}

// CreateDefault implements WageHandler.
func (h *wageHandlerImpl) CreateDefault(w http.ResponseWriter, r *http.Request) {
	var req wage.CreateDefaultWageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateDefault decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.wageService.CreateDefault(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Default wage created", result)
}

// ListDefaults implements WageHandler.
func (h *wageHandlerImpl) ListDefaults(w http.ResponseWriter, r *http.Request) {
	defaults, err := h.wageService.ListDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, defaults)
}
