package payroll

import "context"

type PayrollService interface {
	// Recompute rebuilds the current monthly and weekly rollups for one
	// worker from the attendance records on file. Idempotent: running it
	// twice with no new attendance data yields identical rows.
	Recompute(ctx context.Context, workerID int64) (MonthlyPayroll, error)

	// RecalculateAll reruns Recompute for every active worker. A failure
	// for one worker is logged and skipped, never aborts the sweep.
	RecalculateAll(ctx context.Context) (int, error)

	// GetMonthly returns one worker's rollup for the given period.
	GetMonthly(ctx context.Context, workerID int64, year, month int) (MonthlyPayrollResponse, error)

	ListMine(ctx context.Context, workerID int64) ([]MonthlyPayrollResponse, error)
	ListAll(ctx context.Context) ([]MonthlyPayrollResponse, error)
	ListWeekly(ctx context.Context, workerID int64) ([]WeeklyPayrollResponse, error)
}
