package postgresql

import (
	"context"
	"fmt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/insurance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
)

type insuranceRateRepository struct {
	db *database.DB
}

func NewInsuranceRateRepository(db *database.DB) insurance.RateRepository {
	return &insuranceRateRepository{db: db}
}

// Upsert implements insurance.RateRepository.
func (r *insuranceRateRepository) Upsert(ctx context.Context, rate insurance.Rate) (insurance.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO insurance_rates (category, rate, effective_date)
		VALUES ($1, $2, $3)
		ON CONFLICT (category, effective_date) DO UPDATE
		SET rate = EXCLUDED.rate,
		    updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, rate.Category, rate.Rate, rate.EffectiveDate).
		Scan(&rate.ID, &rate.CreatedAt, &rate.UpdatedAt)
	if err != nil {
		return insurance.Rate{}, fmt.Errorf("failed to upsert insurance rate: %w", err)
	}
	return rate, nil
}

// List implements insurance.RateRepository.
func (r *insuranceRateRepository) List(ctx context.Context) ([]insurance.Rate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, category, rate, effective_date, created_at, updated_at
		FROM insurance_rates
		ORDER BY effective_date DESC, category
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list insurance rates: %w", err)
	}
	defer rows.Close()

	var rates []insurance.Rate
	for rows.Next() {
		var rate insurance.Rate
		if err := rows.Scan(&rate.ID, &rate.Category, &rate.Rate, &rate.EffectiveDate, &rate.CreatedAt, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan insurance rate: %w", err)
		}
		rates = append(rates, rate)
	}
	return rates, rows.Err()
}
