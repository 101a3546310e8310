package attendance

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/clock"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/database"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
	"github.com/clockwork-hr/timeclock-backend-go/internal/repository/postgresql"
)

// AttendanceServiceImpl is the daily clock state machine. Every
// state-changing call locks the single (worker, work date) row inside a
// transaction, so overlapping requests for the same worker's day are
// serialized while different workers proceed in parallel.
type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	worker.WorkerRepository
	payrollService payroll.PayrollService
	clock          clock.Clock
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	workerRepo worker.WorkerRepository,
	payrollService payroll.PayrollService,
	clk clock.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		WorkerRepository:     workerRepo,
		payrollService:       payrollService,
		clock:                clk,
	}
}

// workDay normalizes an instant to its calendar day.
func workDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// timeOfDay strips the date part, keeping the clock reading.
func timeOfDay(t time.Time) *time.Time {
	clk := time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
	return &clk
}

// ClockIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, workerID int64) (attendance.AttendanceResponse, error) {
	if _, err := s.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := s.clock.Now()
	today := workDay(now)

	existing, err := s.AttendanceRepository.GetByWorkerAndDate(ctx, workerID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check today's record: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyClockedIn
	}

	// The unique key on (worker_id, work_date) turns a racing duplicate
	// insert into ErrAlreadyClockedIn instead of a second row.
	record, err := s.AttendanceRepository.Create(ctx, attendance.Attendance{
		WorkerID: workerID,
		WorkDate: today,
		CheckIn:  timeOfDay(now),
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(record), nil
}

// mutateToday applies fn to today's locked record inside a transaction.
func (s *AttendanceServiceImpl) mutateToday(ctx context.Context, workerID int64, fn func(now time.Time, record *attendance.Attendance) error) (attendance.Attendance, error) {
	now := s.clock.Now()
	today := workDay(now)

	var updated attendance.Attendance
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.TxContext(ctx, tx)

		record, err := s.AttendanceRepository.GetByWorkerAndDateForUpdate(txCtx, workerID, today)
		if err != nil {
			return fmt.Errorf("failed to load today's record: %w", err)
		}
		if record == nil || record.CheckIn == nil {
			return attendance.ErrNotClockedIn
		}

		if err := fn(now, record); err != nil {
			return err
		}

		updated, err = s.AttendanceRepository.Update(txCtx, *record)
		return err
	})
	if err != nil {
		return attendance.Attendance{}, err
	}
	return updated, nil
}

// BreakStart implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) BreakStart(ctx context.Context, workerID int64) (attendance.AttendanceResponse, error) {
	record, err := s.mutateToday(ctx, workerID, func(now time.Time, record *attendance.Attendance) error {
		if record.CheckOut != nil {
			return attendance.ErrAlreadyClockedOut
		}
		if record.BreakStart != nil && record.BreakEnd == nil {
			return attendance.ErrBreakAlreadyOpen
		}
		record.BreakStart = timeOfDay(now)
		record.BreakEnd = nil
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.triggerPayroll(ctx, workerID)
	return attendance.NewAttendanceResponse(record), nil
}

// BreakEnd implements attendance.AttendanceService. A break that was never
// opened is healed by backdating its start 30 minutes, matching the
// calculator's fallback.
func (s *AttendanceServiceImpl) BreakEnd(ctx context.Context, workerID int64) (attendance.AttendanceResponse, error) {
	record, err := s.mutateToday(ctx, workerID, func(now time.Time, record *attendance.Attendance) error {
		if record.CheckOut != nil {
			return attendance.ErrAlreadyClockedOut
		}
		if record.BreakStart == nil {
			record.BreakStart = timeOfDay(now.Add(-30 * time.Minute))
		}
		record.BreakEnd = timeOfDay(now)
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.triggerPayroll(ctx, workerID)
	return attendance.NewAttendanceResponse(record), nil
}

// ClockOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, workerID int64) (attendance.AttendanceResponse, error) {
	record, err := s.mutateToday(ctx, workerID, func(now time.Time, record *attendance.Attendance) error {
		if record.CheckOut != nil {
			return attendance.ErrAlreadyClockedOut
		}
		if record.BreakStart != nil && record.BreakEnd == nil {
			return attendance.ErrOnBreakCannotClockOut
		}
		record.CheckOut = timeOfDay(now)

		worked, brk, err := ComputeMinutes(record.WorkDate, record.CheckIn, record.BreakStart, record.BreakEnd, record.CheckOut)
		if err != nil {
			return err
		}
		record.TotalWorkMinutes = worked
		record.TotalBreakMinutes = brk
		return nil
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.triggerPayroll(ctx, workerID)
	return attendance.NewAttendanceResponse(record), nil
}

// ManualUpsert implements attendance.AttendanceService. It is the
// corrective entry path: the given times become the whole record for that
// date, bypassing the transition guards.
func (s *AttendanceServiceImpl) ManualUpsert(ctx context.Context, workerID int64, req attendance.ManualUpsertRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if _, err := s.WorkerRepository.GetByID(ctx, workerID); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, _ := validator.IsValidDate(req.WorkDate)
	record := attendance.Attendance{
		WorkerID:   workerID,
		WorkDate:   workDay(date),
		CheckIn:    parseClock(req.CheckIn),
		BreakStart: parseClock(req.BreakStart),
		BreakEnd:   parseClock(req.BreakEnd),
		CheckOut:   parseClock(req.CheckOut),
	}

	if record.CheckIn != nil && record.CheckOut != nil {
		worked, brk, err := ComputeMinutes(record.WorkDate, record.CheckIn, record.BreakStart, record.BreakEnd, record.CheckOut)
		if err != nil {
			return attendance.AttendanceResponse{}, err
		}
		record.TotalWorkMinutes = worked
		record.TotalBreakMinutes = brk
	}

	upserted, err := s.AttendanceRepository.Upsert(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.triggerPayroll(ctx, workerID)
	return attendance.NewAttendanceResponse(upserted), nil
}

func parseClock(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := validator.IsValidTimeOfDay(*s)
	if !ok {
		return nil
	}
	return &t
}

// ListMine implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListMine(ctx context.Context, workerID int64) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.NewAttendanceResponse(record))
	}
	return responses, nil
}

// triggerPayroll recomputes the worker's rollups after a committed
// mutation. The attendance change has already landed, so a rollup failure
// is logged instead of failing the request; the sweep repairs it later.
func (s *AttendanceServiceImpl) triggerPayroll(ctx context.Context, workerID int64) {
	if _, err := s.payrollService.Recompute(ctx, workerID); err != nil {
		slog.Error("payroll recomputation failed", "worker_id", workerID, "error", err)
	}
}
