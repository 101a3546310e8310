package insurance

import (
	"github.com/shopspring/decimal"

	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type SetRateRequest struct {
	Category      string          `json:"category"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
}

func (r *SetRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Category(r.Category).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "unknown insurance category",
		})
	}
	if r.Rate.IsNegative() || r.Rate.GreaterThan(decimal.NewFromInt(100)) {
		errs = append(errs, validator.ValidationError{
			Field:   "rate",
			Message: "rate must be between 0 and 100",
		})
	}
	if _, ok := validator.IsValidDate(r.EffectiveDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_date",
			Message: "effective_date must be YYYY-MM-DD",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RateResponse struct {
	ID            int64           `json:"id"`
	Category      string          `json:"category"`
	Rate          decimal.Decimal `json:"rate"`
	EffectiveDate string          `json:"effective_date"`
}

func NewRateResponse(r Rate) RateResponse {
	return RateResponse{
		ID:            r.ID,
		Category:      string(r.Category),
		Rate:          r.Rate,
		EffectiveDate: r.EffectiveDate.Format("2006-01-02"),
	}
}
