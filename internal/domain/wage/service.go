package wage

import (
	"context"
	"time"
)

// Resolver answers "what does this worker earn per hour on this date".
type Resolver interface {
	// ResolveWage returns UnresolvedWage (never an error) when no window
	// and no yearly default applies.
	ResolveWage(ctx context.Context, workerID int64, date time.Time) (int, error)
}

type WageService interface {
	Resolver

	CreateWindow(ctx context.Context, req CreateWageWindowRequest) (WageWindowResponse, error)
	ListWindows(ctx context.Context, workerID int64) ([]WageWindowResponse, error)
	CreateDefault(ctx context.Context, req CreateDefaultWageRequest) (DefaultWageResponse, error)
	ListDefaults(ctx context.Context) ([]DefaultWageResponse, error)
}
