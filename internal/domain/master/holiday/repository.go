package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	GetByID(ctx context.Context, id int64) (Holiday, error)

	// List returns holidays within the optional [start, end] bounds,
	// newest first. Nil bounds are ignored.
	List(ctx context.Context, start, end *time.Time) ([]Holiday, error)

	Update(ctx context.Context, h Holiday) (Holiday, error)
	Delete(ctx context.Context, id int64) error
}
