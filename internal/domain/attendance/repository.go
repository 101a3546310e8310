package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// Dates are compared by calendar day; callers pass midnight-normalized values.
type AttendanceRepository interface {
	// Create inserts a new record. The (worker_id, work_date) unique
	// constraint makes a duplicate insert fail, closing the double
	// clock-in race.
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// GetByWorkerAndDate returns nil (no error) when no record exists.
	GetByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) (*Attendance, error)

	// GetByWorkerAndDateForUpdate locks the row for the enclosing
	// transaction. Returns nil when no record exists.
	GetByWorkerAndDateForUpdate(ctx context.Context, workerID int64, date time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) (Attendance, error)

	// Upsert inserts or overwrites the record keyed by (worker_id,
	// work_date). Used by the corrective entry path.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// ListByWorker returns all records for a worker, newest work date first.
	ListByWorker(ctx context.Context, workerID int64) ([]Attendance, error)

	// ListByWorkerAndRange returns records whose work date falls in
	// [from, to], both inclusive.
	ListByWorkerAndRange(ctx context.Context, workerID int64, from, to time.Time) ([]Attendance, error)
}
