package wage

import "time"

// UnresolvedWage is returned by the resolver when neither a worker window
// nor a yearly default applies. Callers treat it as "no wage known" and
// contribute zero pay rather than failing.
const UnresolvedWage = -1

// WageWindow is a date-bounded hourly wage for one worker. EndDate nil
// means open-ended. Wages are in the smallest currency unit per hour.
type WageWindow struct {
	ID        int64
	WorkerID  int64
	Wage      int
	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultWage is the statutory fallback wage for one calendar year.
type DefaultWage struct {
	ID        int64
	Year      int
	Wage      int
	CreatedAt time.Time
	UpdatedAt time.Time
}
