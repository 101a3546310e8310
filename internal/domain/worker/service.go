package worker

import "context"

type WorkerService interface {
	Create(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	Get(ctx context.Context, id int64) (WorkerResponse, error)
	List(ctx context.Context, q string, limit, offset int) ([]WorkerResponse, int64, error)
	Update(ctx context.Context, id int64, req UpdateWorkerRequest) (WorkerResponse, error)
	Delete(ctx context.Context, id int64) error
}
