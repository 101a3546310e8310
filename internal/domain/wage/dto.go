package wage

import (
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateWageWindowRequest struct {
	WorkerID  int64   `json:"worker_id"`
	Wage      int     `json:"wage"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date,omitempty"`
}

func (r *CreateWageWindowRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.WorkerID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	}
	if r.Wage <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "wage must be positive",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be YYYY-MM-DD",
		})
	}
	if r.EndDate != nil {
		end, ok := validator.IsValidDate(*r.EndDate)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be YYYY-MM-DD",
			})
		} else if startOK && end.Before(start) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must not precede start_date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDefaultWageRequest struct {
	Year int `json:"year"`
	Wage int `json:"wage"`
}

func (r *CreateDefaultWageRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.Wage <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "wage",
			Message: "wage must be positive",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WageWindowResponse struct {
	ID        int64   `json:"id"`
	WorkerID  int64   `json:"worker_id"`
	Wage      int     `json:"wage"`
	StartDate string  `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func NewWageWindowResponse(w WageWindow) WageWindowResponse {
	resp := WageWindowResponse{
		ID:        w.ID,
		WorkerID:  w.WorkerID,
		Wage:      w.Wage,
		StartDate: w.StartDate.Format("2006-01-02"),
	}
	if w.EndDate != nil {
		d := w.EndDate.Format("2006-01-02")
		resp.EndDate = &d
	}
	return resp
}

type DefaultWageResponse struct {
	ID   int64 `json:"id"`
	Year int   `json:"year"`
	Wage int   `json:"wage"`
}

func NewDefaultWageResponse(d DefaultWage) DefaultWageResponse {
	return DefaultWageResponse{ID: d.ID, Year: d.Year, Wage: d.Wage}
}
