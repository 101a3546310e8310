package cron

import (
	"context"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
)

// PayrollJobs owns the scheduled payroll maintenance work.
type PayrollJobs struct {
	payrollSvc payroll.PayrollService
	interval   time.Duration
}

func NewPayrollJobs(payrollSvc payroll.PayrollService, interval time.Duration) *PayrollJobs {
	return &PayrollJobs{payrollSvc: payrollSvc, interval: interval}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("recalculate_payrolls", j.interval, j.RecalculatePayrolls)
}

// RecalculatePayrolls rebuilds the current rollups for every active
// worker, repairing any record missed by the inline trigger.
func (j *PayrollJobs) RecalculatePayrolls(ctx context.Context) error {
	_, err := j.payrollSvc.RecalculateAll(ctx)
	return err
}
