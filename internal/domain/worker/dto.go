package worker

import (
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type CreateWorkerRequest struct {
	Username      string  `json:"username"`
	Password      string  `json:"password"`
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	Gender        *string `json:"gender,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	HireDate      *string `json:"hire_date,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, '.', '_', '-')",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if !Position(r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "unknown position code",
		})
	}
	if r.Gender != nil && !Gender(*r.Gender).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "unknown gender code",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "invalid phone number",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateWorkerRequest carries a partial update; nil fields are left untouched.
type UpdateWorkerRequest struct {
	Password      *string `json:"password,omitempty"`
	Name          *string `json:"name,omitempty"`
	Position      *string `json:"position,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	HireDate      *string `json:"hire_date,omitempty"`
	RetireDate    *string `json:"retire_date,omitempty"`
	IsActive      *bool   `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Password != nil && len(*r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.Position != nil && !Position(*r.Position).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "unknown position code",
		})
	}
	if r.Gender != nil && !Gender(*r.Gender).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "gender",
			Message: "unknown gender code",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email address",
		})
	}
	if r.HireDate != nil {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be YYYY-MM-DD",
			})
		}
	}
	if r.RetireDate != nil {
		if _, ok := validator.IsValidDate(*r.RetireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "retire_date",
				Message: "retire_date must be YYYY-MM-DD",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkerResponse struct {
	ID            int64   `json:"id"`
	Username      string  `json:"username"`
	Name          string  `json:"name"`
	Position      string  `json:"position"`
	Gender        *string `json:"gender,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Email         *string `json:"email,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	HireDate      *string `json:"hire_date,omitempty"`
	RetireDate    *string `json:"retire_date,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// NewWorkerResponse maps a Worker entity to its API shape.
func NewWorkerResponse(w Worker) WorkerResponse {
	resp := WorkerResponse{
		ID:            w.ID,
		Username:      w.Username,
		Name:          w.Name,
		Position:      string(w.Position),
		Phone:         w.Phone,
		Email:         w.Email,
		BankName:      w.BankName,
		AccountNumber: w.AccountNumber,
		IsActive:      w.IsActive,
	}
	if w.Gender != nil {
		g := string(*w.Gender)
		resp.Gender = &g
	}
	if w.HireDate != nil {
		d := w.HireDate.Format("2006-01-02")
		resp.HireDate = &d
	}
	if w.RetireDate != nil {
		d := w.RetireDate.Format("2006-01-02")
		resp.RetireDate = &d
	}
	return resp
}
