package insurance

import "context"

type RateRepository interface {
	// Upsert inserts or overwrites the rate keyed by (category,
	// effective_date).
	Upsert(ctx context.Context, r Rate) (Rate, error)

	// List returns rates ordered by effective date desc, category asc.
	List(ctx context.Context) ([]Rate, error)
}
