package payroll

import "context"

// PayrollRepository defines data access for payroll rollups. Both upserts
// are backed by a (worker_id, year, month) unique constraint and an
// INSERT ... ON CONFLICT DO UPDATE, so concurrent recomputations can never
// produce duplicate period rows.
type PayrollRepository interface {
	UpsertMonthly(ctx context.Context, p MonthlyPayroll) (MonthlyPayroll, error)
	UpsertWeekly(ctx context.Context, p WeeklyPayroll) (WeeklyPayroll, error)

	GetMonthly(ctx context.Context, workerID int64, year, month int) (*MonthlyPayroll, error)
	ListMonthlyByWorker(ctx context.Context, workerID int64) ([]MonthlyPayroll, error)
	ListMonthlyAll(ctx context.Context) ([]MonthlyPayroll, error)
	ListWeeklyByWorker(ctx context.Context, workerID int64) ([]WeeklyPayroll, error)
}
