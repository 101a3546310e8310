package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/holiday"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/insurance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
	"github.com/clockwork-hr/timeclock-backend-go/internal/service/master"
)

type MasterHandler interface {
	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	UpdateHoliday(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)
	SetInsuranceRate(w http.ResponseWriter, r *http.Request)
	ListInsuranceRates(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.MasterService
}

func NewMasterHandler(masterService master.MasterService) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

// CreateHoliday implements MasterHandler.
func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Holiday created", result)
}

// ListHolidays implements MasterHandler.
func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	var start, end *string
	if v := r.URL.Query().Get("start"); v != "" {
		start = &v
	}
	if v := r.URL.Query().Get("end"); v != "" {
		end = &v
	}

	holidays, err := h.masterService.ListHolidays(r.Context(), start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, holidays)
}

// UpdateHoliday implements MasterHandler.
func (h *masterHandlerImpl) UpdateHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "holidayID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid holiday id", nil)
		return
	}

	var req holiday.UpdateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateHoliday decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateHoliday(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday updated", result)
}

// DeleteHoliday implements MasterHandler.
func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "holidayID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid holiday id", nil)
		return
	}

	if err := h.masterService.DeleteHoliday(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// SetInsuranceRate implements MasterHandler.
func (h *masterHandlerImpl) SetInsuranceRate(w http.ResponseWriter, r *http.Request) {
	var req insurance.SetRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetInsuranceRate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.SetRate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Insurance rate saved", result)
}

// ListInsuranceRates implements MasterHandler.
func (h *masterHandlerImpl) ListInsuranceRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.masterService.ListRates(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, rates)
}
