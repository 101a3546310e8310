package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	GetMonthly(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListMyWeekly(w http.ResponseWriter, r *http.Request)
	ListAll(w http.ResponseWriter, r *http.Request)
	Recompute(w http.ResponseWriter, r *http.Request)
	RecalculateAll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// GetMonthly implements PayrollHandler. Year and month come from query
// parameters and default to the current period.
func (h *payrollHandlerImpl) GetMonthly(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid worker id", nil)
		return
	}

	now := time.Now()
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	if year == 0 {
		year = now.Year()
	}
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}

	result, err := h.payrollService.GetMonthly(r.Context(), workerID, year, month)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// ListMine implements PayrollHandler.
func (h *payrollHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payrolls, err := h.payrollService.ListMine(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payrolls)
}

// ListMyWeekly implements PayrollHandler.
func (h *payrollHandlerImpl) ListMyWeekly(w http.ResponseWriter, r *http.Request) {
	workerID, err := workerIDFromClaims(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	payrolls, err := h.payrollService.ListWeekly(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payrolls)
}

// ListAll implements PayrollHandler.
func (h *payrollHandlerImpl) ListAll(w http.ResponseWriter, r *http.Request) {
	payrolls, err := h.payrollService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, payrolls)
}

// Recompute implements PayrollHandler. Rebuilds one worker's current
// rollups on demand.
func (h *payrollHandlerImpl) Recompute(w http.ResponseWriter, r *http.Request) {
	workerID, err := strconv.ParseInt(chi.URLParam(r, "workerID"), 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid worker id", nil)
		return
	}

	result, err := h.payrollService.Recompute(r.Context(), workerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll recomputed", payroll.NewMonthlyPayrollResponse(result))
}

// RecalculateAll implements PayrollHandler.
func (h *payrollHandlerImpl) RecalculateAll(w http.ResponseWriter, r *http.Request) {
	processed, err := h.payrollService.RecalculateAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Payroll recalculation finished", payroll.RecalculateAllResponse{
		WorkersProcessed: processed,
		Status:           "completed",
	})
}
