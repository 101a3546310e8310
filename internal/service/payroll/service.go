package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
)

var sixty = decimal.NewFromInt(60)

type PayrollServiceImpl struct {
	db *database.DB
	payroll.PayrollRepository
	attendanceRepo attendance.AttendanceRepository
	workerRepo     worker.WorkerRepository
	resolver       wage.Resolver
	clock          clock.Clock
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	resolver wage.Resolver,
	clk clock.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:                db,
		PayrollRepository: payrollRepo,
		attendanceRepo:    attendanceRepo,
		workerRepo:        workerRepo,
		resolver:          resolver,
		clock:             clk,
	}
}

// weekRange returns the Monday and Sunday of the week containing date.
func weekRange(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 6)
}

// monthRange returns the first and last day of the month containing date.
func monthRange(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, -1)
}

// Recompute implements payroll.PayrollService.
//
// Pay policy: each record's worked minutes are priced at that day's
// resolved wage, so a mid-month rate change never biases the total. The
// stored hourly wage is the minute-weighted average across the period.
// A day whose wage cannot be resolved contributes its hours but zero pay.
func (s *PayrollServiceImpl) Recompute(ctx context.Context, workerID int64) (payroll.MonthlyPayroll, error) {
	now := s.clock.Now()
	year, month := now.Year(), int(now.Month())

	weekStart, weekEnd := weekRange(now)
	weekRecords, err := s.attendanceRepo.ListByWorkerAndRange(ctx, workerID, weekStart, weekEnd)
	if err != nil {
		return payroll.MonthlyPayroll{}, fmt.Errorf("failed to load weekly attendance: %w", err)
	}

	var weekMinutes int64
	for _, record := range weekRecords {
		weekMinutes += int64(record.TotalWorkMinutes)
	}
	weeklyHours := decimal.NewFromInt(weekMinutes).DivRound(sixty, 2)

	monthStart, monthEnd := monthRange(now)
	monthRecords, err := s.attendanceRepo.ListByWorkerAndRange(ctx, workerID, monthStart, monthEnd)
	if err != nil {
		return payroll.MonthlyPayroll{}, fmt.Errorf("failed to load monthly attendance: %w", err)
	}

	var workMinutes, breakMinutes int64
	weightedPay := decimal.Zero // minute-wage units: sum of minutes_i * wage_i
	for _, record := range monthRecords {
		workMinutes += int64(record.TotalWorkMinutes)
		breakMinutes += int64(record.TotalBreakMinutes)

		if record.TotalWorkMinutes == 0 {
			continue
		}
		dayWage, err := s.resolver.ResolveWage(ctx, workerID, record.WorkDate)
		if err != nil {
			return payroll.MonthlyPayroll{}, fmt.Errorf("failed to resolve wage: %w", err)
		}
		if dayWage < 0 {
			slog.Warn("no wage resolved, day contributes zero pay",
				"worker_id", workerID,
				"work_date", record.WorkDate.Format("2006-01-02"))
			continue
		}
		weightedPay = weightedPay.Add(
			decimal.NewFromInt(int64(record.TotalWorkMinutes)).
				Mul(decimal.NewFromInt(int64(dayWage))))
	}

	totalHours := decimal.NewFromInt(workMinutes).DivRound(sixty, 2)
	breakHours := decimal.NewFromInt(breakMinutes).DivRound(sixty, 2)

	grossSalary := weightedPay.Div(sixty).IntPart()
	var avgWage int64
	if workMinutes > 0 {
		avgWage = weightedPay.Div(decimal.NewFromInt(workMinutes)).IntPart()
	}

	monthly := payroll.MonthlyPayroll{
		WorkerID:     workerID,
		Year:         year,
		Month:        month,
		HourlyWage:   int(avgWage),
		TotalHours:   totalHours,
		WeeklyHours:  weeklyHours,
		NightHours:   decimal.Zero.Round(2),
		HolidayHours: decimal.Zero.Round(2),
		BreakHours:   breakHours,
		TotalSalary:  int(grossSalary),
		// Deductions are reserved; net mirrors gross until they land.
		NetSalary: int(grossSalary),
	}
	weekly := payroll.WeeklyPayroll{
		WorkerID:       workerID,
		Year:           year,
		Month:          month,
		TotalWorkHours: weeklyHours,
	}

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		monthly, err = s.PayrollRepository.UpsertMonthly(txCtx, monthly)
		if err != nil {
			return err
		}
		weekly, err = s.PayrollRepository.UpsertWeekly(txCtx, weekly)
		return err
	})
	if err != nil {
		return payroll.MonthlyPayroll{}, err
	}

	return monthly, nil
}

// RecalculateAll implements payroll.PayrollService. One worker's failure
// is logged and skipped so a bad rate or corrupt record never blocks the
// rest of the roster.
func (s *PayrollServiceImpl) RecalculateAll(ctx context.Context) (int, error) {
	ids, err := s.workerRepo.ListActiveIDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list active workers: %w", err)
	}

	processed := 0
	for _, workerID := range ids {
		if _, err := s.Recompute(ctx, workerID); err != nil {
			slog.Error("payroll recalculation failed for worker, skipping",
				"worker_id", workerID, "error", err)
			continue
		}
		processed++
	}

	slog.Info("payroll recalculation sweep finished",
		"workers_processed", processed, "workers_total", len(ids))
	return processed, nil
}

// GetMonthly implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetMonthly(ctx context.Context, workerID int64, year, month int) (payroll.MonthlyPayrollResponse, error) {
	p, err := s.PayrollRepository.GetMonthly(ctx, workerID, year, month)
	if err != nil {
		return payroll.MonthlyPayrollResponse{}, err
	}
	if p == nil {
		return payroll.MonthlyPayrollResponse{}, payroll.ErrPayrollNotFound
	}
	return payroll.NewMonthlyPayrollResponse(*p), nil
}

// ListMine implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListMine(ctx context.Context, workerID int64) ([]payroll.MonthlyPayrollResponse, error) {
	payrolls, err := s.PayrollRepository.ListMonthlyByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}
	return monthlyResponses(payrolls), nil
}

// ListAll implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListAll(ctx context.Context) ([]payroll.MonthlyPayrollResponse, error) {
	payrolls, err := s.PayrollRepository.ListMonthlyAll(ctx)
	if err != nil {
		return nil, err
	}
	return monthlyResponses(payrolls), nil
}

func monthlyResponses(payrolls []payroll.MonthlyPayroll) []payroll.MonthlyPayrollResponse {
	responses := make([]payroll.MonthlyPayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.NewMonthlyPayrollResponse(p))
	}
	return responses
}

// ListWeekly implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListWeekly(ctx context.Context, workerID int64) ([]payroll.WeeklyPayrollResponse, error) {
	payrolls, err := s.PayrollRepository.ListWeeklyByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.WeeklyPayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, payroll.NewWeeklyPayrollResponse(p))
	}
	return responses, nil
}
