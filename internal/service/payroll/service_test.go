package payroll

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/attendance"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/payroll"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/clock"
)

// stubAttendanceRepo serves ListByWorkerAndRange from a fixed record set.
type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (s *stubAttendanceRepo) ListByWorkerAndRange(ctx context.Context, workerID int64, from, to time.Time) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, r := range s.records {
		if r.WorkerID == workerID && !r.WorkDate.Before(from) && !r.WorkDate.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubWorkerRepo struct {
	worker.WorkerRepository
	activeIDs []int64
}

func (s *stubWorkerRepo) ListActiveIDs(ctx context.Context) ([]int64, error) {
	return s.activeIDs, nil
}

// stubResolver maps work dates to wages; missing dates resolve to the
// fallback value.
type stubResolver struct {
	byDate   map[string]int
	fallback int
	err      error
}

func (s *stubResolver) ResolveWage(ctx context.Context, workerID int64, date time.Time) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	if w, ok := s.byDate[date.Format("2006-01-02")]; ok {
		return w, nil
	}
	return s.fallback, nil
}

// memPayrollRepo records upserts keyed by (worker, year, month).
type memPayrollRepo struct {
	payroll.PayrollRepository
	monthly map[string]payroll.MonthlyPayroll
	weekly  map[string]payroll.WeeklyPayroll
}

func newMemPayrollRepo() *memPayrollRepo {
	return &memPayrollRepo{
		monthly: make(map[string]payroll.MonthlyPayroll),
		weekly:  make(map[string]payroll.WeeklyPayroll),
	}
}

func periodKey(workerID int64, year, month int) string {
	return fmt.Sprintf("%d|%d|%d", workerID, year, month)
}

func (m *memPayrollRepo) UpsertMonthly(ctx context.Context, p payroll.MonthlyPayroll) (payroll.MonthlyPayroll, error) {
	key := periodKey(p.WorkerID, p.Year, p.Month)
	if existing, ok := m.monthly[key]; ok {
		p.ID = existing.ID
	} else {
		p.ID = int64(len(m.monthly) + 1)
	}
	m.monthly[key] = p
	return p, nil
}

func (m *memPayrollRepo) UpsertWeekly(ctx context.Context, p payroll.WeeklyPayroll) (payroll.WeeklyPayroll, error) {
	key := periodKey(p.WorkerID, p.Year, p.Month)
	if existing, ok := m.weekly[key]; ok {
		p.ID = existing.ID
	} else {
		p.ID = int64(len(m.weekly) + 1)
	}
	m.weekly[key] = p
	return p, nil
}

func record(workerID int64, day string, workedMinutes, breakMinutes int) attendance.Attendance {
	d, _ := time.Parse("2006-01-02", day)
	return attendance.Attendance{
		WorkerID:          workerID,
		WorkDate:          d,
		TotalWorkMinutes:  workedMinutes,
		TotalBreakMinutes: breakMinutes,
	}
}

// now pins the reference instant to Tuesday 2026-03-10, so the week under
// aggregation is Mon 2026-03-09 through Sun 2026-03-15.
var now = time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

func newTestService(attRepo *stubAttendanceRepo, wrkRepo *stubWorkerRepo, resolver wage.Resolver, repo *memPayrollRepo) payroll.PayrollService {
	return NewPayrollService(nil, repo, attRepo, wrkRepo, resolver, clock.Fixed(now))
}

func TestWeekRange(t *testing.T) {
	start, end := weekRange(now)
	assert.Equal(t, "2026-03-09", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-15", end.Format("2006-01-02"))

	// A Sunday belongs to the week that started the previous Monday.
	start, end = weekRange(time.Date(2026, time.March, 15, 23, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-09", start.Format("2006-01-02"))
	assert.Equal(t, "2026-03-15", end.Format("2006-01-02"))

	// A Monday starts its own week.
	start, _ = weekRange(time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2026-03-09", start.Format("2006-01-02"))
}

func TestRecomputeAggregates(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		record(1, "2026-03-02", 480, 0),  // previous week, same month
		record(1, "2026-03-09", 510, 30), // current week
	}}
	repo := newMemPayrollRepo()
	svc := newTestService(attRepo, &stubWorkerRepo{}, &stubResolver{fallback: 1500}, repo)

	monthly, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 2026, monthly.Year)
	assert.Equal(t, 3, monthly.Month)
	assert.Equal(t, "16.50", monthly.TotalHours.StringFixed(2))
	assert.Equal(t, "8.50", monthly.WeeklyHours.StringFixed(2))
	assert.Equal(t, "0.50", monthly.BreakHours.StringFixed(2))
	// 990 minutes at 1500/h: 990 * 1500 / 60.
	assert.Equal(t, 24750, monthly.TotalSalary)
	assert.Equal(t, 24750, monthly.NetSalary)
	assert.Equal(t, 1500, monthly.HourlyWage)

	weekly, ok := repo.weekly[periodKey(1, 2026, 3)]
	require.True(t, ok)
	assert.Equal(t, "8.50", weekly.TotalWorkHours.StringFixed(2))
}

func TestRecomputeMidMonthWageChange(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		record(1, "2026-03-02", 480, 0),
		record(1, "2026-03-09", 510, 0),
	}}
	resolver := &stubResolver{byDate: map[string]int{
		"2026-03-02": 1000,
		"2026-03-09": 1500,
	}}
	svc := newTestService(attRepo, &stubWorkerRepo{}, resolver, newMemPayrollRepo())

	monthly, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)

	// 480*1000 + 510*1500 = 1245000 minute-wage units; / 60 = 20750.
	assert.Equal(t, 20750, monthly.TotalSalary)
	// Minute-weighted average: 1245000 / 990 truncated.
	assert.Equal(t, 1257, monthly.HourlyWage)
}

func TestRecomputeUnresolvedWageDay(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		record(1, "2026-03-02", 480, 0),
		record(1, "2026-03-09", 510, 0),
	}}
	resolver := &stubResolver{
		byDate:   map[string]int{"2026-03-02": wage.UnresolvedWage},
		fallback: 1500,
	}
	svc := newTestService(attRepo, &stubWorkerRepo{}, resolver, newMemPayrollRepo())

	monthly, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)

	// The unresolved day still counts toward hours but pays nothing.
	assert.Equal(t, "16.50", monthly.TotalHours.StringFixed(2))
	assert.Equal(t, 510*1500/60, monthly.TotalSalary)
}

func TestRecomputeNoRecordsWritesZeroRow(t *testing.T) {
	repo := newMemPayrollRepo()
	svc := newTestService(&stubAttendanceRepo{}, &stubWorkerRepo{}, &stubResolver{fallback: 1500}, repo)

	monthly, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, "0.00", monthly.TotalHours.StringFixed(2))
	assert.Equal(t, 0, monthly.TotalSalary)
	assert.Equal(t, 0, monthly.HourlyWage)

	_, ok := repo.monthly[periodKey(1, 2026, 3)]
	assert.True(t, ok)
}

func TestRecomputeIdempotent(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		record(1, "2026-03-09", 510, 30),
	}}
	repo := newMemPayrollRepo()
	svc := newTestService(attRepo, &stubWorkerRepo{}, &stubResolver{fallback: 1500}, repo)

	first, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)
	second, err := svc.Recompute(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.TotalSalary, second.TotalSalary)
	assert.True(t, first.TotalHours.Equal(second.TotalHours))
	assert.Len(t, repo.monthly, 1)
	assert.Len(t, repo.weekly, 1)
}

// failingOnceResolver errors for one worker only, exercising the sweep's
// partial-failure isolation.
type failingOnceResolver struct {
	failFor int64
}

func (f *failingOnceResolver) ResolveWage(ctx context.Context, workerID int64, date time.Time) (int, error) {
	if workerID == f.failFor {
		return 0, errors.New("wage lookup failed")
	}
	return 1500, nil
}

func TestRecalculateAllSkipsFailures(t *testing.T) {
	attRepo := &stubAttendanceRepo{records: []attendance.Attendance{
		record(1, "2026-03-09", 480, 0),
		record(2, "2026-03-09", 480, 0),
		record(3, "2026-03-09", 480, 0),
	}}
	wrkRepo := &stubWorkerRepo{activeIDs: []int64{1, 2, 3}}
	repo := newMemPayrollRepo()
	svc := newTestService(attRepo, wrkRepo, &failingOnceResolver{failFor: 2}, repo)

	processed, err := svc.RecalculateAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, processed)

	_, ok := repo.monthly[periodKey(1, 2026, 3)]
	assert.True(t, ok)
	_, ok = repo.monthly[periodKey(2, 2026, 3)]
	assert.False(t, ok)
	_, ok = repo.monthly[periodKey(3, 2026, 3)]
	assert.True(t, ok)
}
