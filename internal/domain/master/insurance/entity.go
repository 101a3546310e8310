package insurance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is the closed set of social insurance categories.
type Category string

const (
	CategoryHealth     Category = "health"
	CategoryCare       Category = "care"
	CategoryEmployment Category = "employment"
	CategoryPension    Category = "pension"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHealth, CategoryCare, CategoryEmployment, CategoryPension:
		return true
	}
	return false
}

// Rate is one insurance category's contribution rate from a given date.
// Rate is a percentage stored with 2-place precision (9.15% -> 9.15).
// (Category, EffectiveDate) is unique; setting the same pair overwrites.
type Rate struct {
	ID            int64
	Category      Category
	Rate          decimal.Decimal
	EffectiveDate time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
