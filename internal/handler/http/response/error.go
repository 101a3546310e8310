package response

import (
	"errors"
	"net/http"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/auth"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/holiday"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/insurance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is not active")

	// Worker domain errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, worker.ErrUsernameExists):
		Conflict(w, "Username already in use")
	case errors.Is(err, worker.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Attendance state machine errors
	case errors.Is(err, attendance.ErrAlreadyClockedIn):
		Conflict(w, "Already clocked in today")
	case errors.Is(err, attendance.ErrNotClockedIn):
		BadRequest(w, "No clock-in record for today", nil)
	case errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, "Already clocked out today")
	case errors.Is(err, attendance.ErrBreakAlreadyOpen):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrOnBreakCannotClockOut):
		BadRequest(w, "Cannot clock out while on break", nil)
	case errors.Is(err, attendance.ErrIncompleteRecord):
		BadRequest(w, "Attendance record is missing check-in or check-out", nil)

	// Wage domain errors
	case errors.Is(err, wage.ErrDefaultWageExists):
		Conflict(w, "A default wage for that year already exists")
	case errors.Is(err, wage.ErrWageWindowNotFound):
		NotFound(w, "Wage window not found")
	case errors.Is(err, wage.ErrDefaultWageNotFound):
		NotFound(w, "Default wage not found")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Master data errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrNothingToUpdate):
		BadRequest(w, "No fields to update", nil)
	case errors.Is(err, insurance.ErrRateNotFound):
		NotFound(w, "Insurance rate not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
