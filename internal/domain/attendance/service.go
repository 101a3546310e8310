package attendance

import "context"

type AttendanceService interface {
	ClockIn(ctx context.Context, workerID int64) (AttendanceResponse, error)
	BreakStart(ctx context.Context, workerID int64) (AttendanceResponse, error)
	BreakEnd(ctx context.Context, workerID int64) (AttendanceResponse, error)
	ClockOut(ctx context.Context, workerID int64) (AttendanceResponse, error)
	ManualUpsert(ctx context.Context, workerID int64, req ManualUpsertRequest) (AttendanceResponse, error)
	ListMine(ctx context.Context, workerID int64) ([]AttendanceResponse, error)
}
