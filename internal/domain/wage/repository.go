package wage

import (
	"context"
	"time"
)

// WageRepository defines data access for worker wage windows and the
// yearly default wage table.
type WageRepository interface {
	CreateWindow(ctx context.Context, w WageWindow) (WageWindow, error)
	ListWindowsByWorker(ctx context.Context, workerID int64) ([]WageWindow, error)

	// FindApplicableWindow returns the window covering date with the
	// latest start date, or nil when none covers it. Overlapping windows
	// are resolved by that ordering, deterministically.
	FindApplicableWindow(ctx context.Context, workerID int64, date time.Time) (*WageWindow, error)

	CreateDefault(ctx context.Context, d DefaultWage) (DefaultWage, error)
	ListDefaults(ctx context.Context) ([]DefaultWage, error)

	// GetDefaultByYear returns nil (no error) when no row exists for year.
	GetDefaultByYear(ctx context.Context, year int) (*DefaultWage, error)
}
