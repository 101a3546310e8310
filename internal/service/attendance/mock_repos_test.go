package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
)

// memAttendanceRepo is an in-memory AttendanceRepository keyed by
// (worker, date), mirroring the unique constraint.
type memAttendanceRepo struct {
	mu      sync.Mutex
	nextID  int64
	records map[string]attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func recordKey(workerID int64, date time.Time) string {
	return fmt.Sprintf("%d|%s", workerID, date.Format("2006-01-02"))
}

func (m *memAttendanceRepo) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey(att.WorkerID, att.WorkDate)
	if _, exists := m.records[key]; exists {
		return attendance.Attendance{}, attendance.ErrAlreadyClockedIn
	}
	m.nextID++
	att.ID = m.nextID
	m.records[key] = att
	return att, nil
}

func (m *memAttendanceRepo) GetByWorkerAndDate(ctx context.Context, workerID int64, date time.Time) (*attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if att, ok := m.records[recordKey(workerID, date)]; ok {
		return &att, nil
	}
	return nil, nil
}

func (m *memAttendanceRepo) GetByWorkerAndDateForUpdate(ctx context.Context, workerID int64, date time.Time) (*attendance.Attendance, error) {
	return m.GetByWorkerAndDate(ctx, workerID, date)
}

func (m *memAttendanceRepo) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.records[recordKey(att.WorkerID, att.WorkDate)] = att
	return att, nil
}

func (m *memAttendanceRepo) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := recordKey(att.WorkerID, att.WorkDate)
	if existing, ok := m.records[key]; ok {
		att.ID = existing.ID
	} else {
		m.nextID++
		att.ID = m.nextID
	}
	m.records[key] = att
	return att, nil
}

func (m *memAttendanceRepo) ListByWorker(ctx context.Context, workerID int64) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range m.records {
		if att.WorkerID == workerID {
			out = append(out, att)
		}
	}
	return out, nil
}

func (m *memAttendanceRepo) ListByWorkerAndRange(ctx context.Context, workerID int64, from, to time.Time) ([]attendance.Attendance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []attendance.Attendance
	for _, att := range m.records {
		if att.WorkerID == workerID && !att.WorkDate.Before(from) && !att.WorkDate.After(to) {
			out = append(out, att)
		}
	}
	return out, nil
}

// memWorkerRepo is an in-memory WorkerRepository.
type memWorkerRepo struct {
	workers map[int64]worker.Worker
}

func newMemWorkerRepo(workers ...worker.Worker) *memWorkerRepo {
	m := &memWorkerRepo{workers: make(map[int64]worker.Worker)}
	for _, w := range workers {
		m.workers[w.ID] = w
	}
	return m
}

func (m *memWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	m.workers[w.ID] = w
	return w, nil
}

func (m *memWorkerRepo) GetByID(ctx context.Context, id int64) (worker.Worker, error) {
	if w, ok := m.workers[id]; ok {
		return w, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (m *memWorkerRepo) GetByUsername(ctx context.Context, username string) (worker.Worker, error) {
	for _, w := range m.workers {
		if w.Username == username {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (m *memWorkerRepo) List(ctx context.Context, q string, limit, offset int) ([]worker.Worker, int64, error) {
	var out []worker.Worker
	for _, w := range m.workers {
		out = append(out, w)
	}
	return out, int64(len(out)), nil
}

func (m *memWorkerRepo) ListActiveIDs(ctx context.Context) ([]int64, error) {
	var ids []int64
	for id, w := range m.workers {
		if w.IsActive {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memWorkerRepo) Update(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	m.workers[w.ID] = w
	return w, nil
}

func (m *memWorkerRepo) Delete(ctx context.Context, id int64) error {
	delete(m.workers, id)
	return nil
}

// stubPayrollService records which workers had a recompute triggered.
type stubPayrollService struct {
	recomputed []int64
	err        error
}

func (s *stubPayrollService) Recompute(ctx context.Context, workerID int64) (payroll.MonthlyPayroll, error) {
	s.recomputed = append(s.recomputed, workerID)
	return payroll.MonthlyPayroll{}, s.err
}

func (s *stubPayrollService) RecalculateAll(ctx context.Context) (int, error) {
	return 0, nil
}

func (s *stubPayrollService) GetMonthly(ctx context.Context, workerID int64, year, month int) (payroll.MonthlyPayrollResponse, error) {
	return payroll.MonthlyPayrollResponse{}, nil
}

func (s *stubPayrollService) ListMine(ctx context.Context, workerID int64) ([]payroll.MonthlyPayrollResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) ListAll(ctx context.Context) ([]payroll.MonthlyPayrollResponse, error) {
	return nil, nil
}

func (s *stubPayrollService) ListWeekly(ctx context.Context, workerID int64) ([]payroll.WeeklyPayrollResponse, error) {
	return nil, nil
}
