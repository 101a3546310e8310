package worker

import "context"

// WorkerRepository defines data access methods for worker accounts.
type WorkerRepository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	GetByID(ctx context.Context, id int64) (Worker, error)
	GetByUsername(ctx context.Context, username string) (Worker, error)

	// List returns workers matching the optional search term q
	// (name/username/email substring) plus the total match count.
	List(ctx context.Context, q string, limit, offset int) ([]Worker, int64, error)

	// ListActiveIDs returns the ids of all workers still on the roster.
	ListActiveIDs(ctx context.Context) ([]int64, error)

	Update(ctx context.Context, w Worker) (Worker, error)
	Delete(ctx context.Context, id int64) error
}
