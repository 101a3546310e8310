package attendance

import (
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

// ManualUpsertRequest is the corrective entry path: it sets any subset of
// the four clock times for a date, bypassing the transition guards.
type ManualUpsertRequest struct {
	WorkDate   string  `json:"work_date"`
	CheckIn    *string `json:"check_in,omitempty"`
	BreakStart *string `json:"break_start,omitempty"`
	BreakEnd   *string `json:"break_end,omitempty"`
	CheckOut   *string `json:"check_out,omitempty"`
}

func (r *ManualUpsertRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "work_date",
			Message: "work_date must be YYYY-MM-DD",
		})
	}

	for field, value := range map[string]*string{
		"check_in":    r.CheckIn,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
		"check_out":   r.CheckOut,
	} {
		if value == nil {
			continue
		}
		if _, ok := validator.IsValidTimeOfDay(*value); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be HH:MM:SS",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                int64   `json:"id"`
	WorkerID          int64   `json:"worker_id"`
	WorkDate          string  `json:"work_date"`
	CheckIn           *string `json:"check_in"`
	BreakStart        *string `json:"break_start"`
	BreakEnd          *string `json:"break_end"`
	CheckOut          *string `json:"check_out"`
	TotalWorkMinutes  int     `json:"total_work_minutes"`
	TotalBreakMinutes int     `json:"total_break_minutes"`
	State             string  `json:"state"`
}

func clockToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04:05")
	return &s
}

// NewAttendanceResponse maps an Attendance entity to its API shape.
func NewAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:                a.ID,
		WorkerID:          a.WorkerID,
		WorkDate:          a.WorkDate.Format("2006-01-02"),
		CheckIn:           clockToString(a.CheckIn),
		BreakStart:        clockToString(a.BreakStart),
		BreakEnd:          clockToString(a.BreakEnd),
		CheckOut:          clockToString(a.CheckOut),
		TotalWorkMinutes:  a.TotalWorkMinutes,
		TotalBreakMinutes: a.TotalBreakMinutes,
		State:             string(a.State()),
	}
}
