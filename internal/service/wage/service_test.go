package wage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
)

// memWageRepo is an in-memory WageRepository. FindApplicableWindow
// mirrors the SQL ordering: covering window with the latest start date.
type memWageRepo struct {
	nextID   int64
	windows  []wage.WageWindow
	defaults map[int]wage.DefaultWage
}

func newMemWageRepo() *memWageRepo {
	return &memWageRepo{defaults: make(map[int]wage.DefaultWage)}
}

func (m *memWageRepo) CreateWindow(ctx context.Context, w wage.WageWindow) (wage.WageWindow, error) {
	m.nextID++
	w.ID = m.nextID
	m.windows = append(m.windows, w)
	return w, nil
}

func (m *memWageRepo) ListWindowsByWorker(ctx context.Context, workerID int64) ([]wage.WageWindow, error) {
	var out []wage.WageWindow
	for _, w := range m.windows {
		if w.WorkerID == workerID {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memWageRepo) FindApplicableWindow(ctx context.Context, workerID int64, date time.Time) (*wage.WageWindow, error) {
	var best *wage.WageWindow
	for i := range m.windows {
		w := m.windows[i]
		if w.WorkerID != workerID || w.StartDate.After(date) {
			continue
		}
		if w.EndDate != nil && w.EndDate.Before(date) {
			continue
		}
		if best == nil || w.StartDate.After(best.StartDate) {
			best = &m.windows[i]
		}
	}
	return best, nil
}

func (m *memWageRepo) CreateDefault(ctx context.Context, d wage.DefaultWage) (wage.DefaultWage, error) {
	if _, exists := m.defaults[d.Year]; exists {
		return wage.DefaultWage{}, wage.ErrDefaultWageExists
	}
	m.nextID++
	d.ID = m.nextID
	m.defaults[d.Year] = d
	return d, nil
}

func (m *memWageRepo) ListDefaults(ctx context.Context) ([]wage.DefaultWage, error) {
	var out []wage.DefaultWage
	for _, d := range m.defaults {
		out = append(out, d)
	}
	return out, nil
}

func (m *memWageRepo) GetDefaultByYear(ctx context.Context, year int) (*wage.DefaultWage, error) {
	if d, ok := m.defaults[year]; ok {
		return &d, nil
	}
	return nil, nil
}

type stubWorkerRepo struct {
	worker.WorkerRepository
	known map[int64]bool
}

func (s *stubWorkerRepo) GetByID(ctx context.Context, id int64) (worker.Worker, error) {
	if s.known[id] {
		return worker.Worker{ID: id}, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func newTestService(repo *memWageRepo) wage.WageService {
	return NewWageService(repo, &stubWorkerRepo{known: map[int64]bool{1: true}})
}

func TestResolveWagePrefersWindow(t *testing.T) {
	ctx := context.Background()
	repo := newMemWageRepo()
	repo.defaults[2026] = wage.DefaultWage{Year: 2026, Wage: 1000}
	end := date(2026, 6, 30)
	repo.windows = append(repo.windows, wage.WageWindow{
		WorkerID: 1, Wage: 1500, StartDate: date(2026, 1, 1), EndDate: &end,
	})

	got, err := newTestService(repo).ResolveWage(ctx, 1, date(2026, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1500, got)
}

func TestResolveWageLatestStartWins(t *testing.T) {
	ctx := context.Background()
	repo := newMemWageRepo()
	repo.windows = append(repo.windows,
		wage.WageWindow{WorkerID: 1, Wage: 1200, StartDate: date(2026, 1, 1)},
		wage.WageWindow{WorkerID: 1, Wage: 1400, StartDate: date(2026, 3, 1)},
	)

	got, err := newTestService(repo).ResolveWage(ctx, 1, date(2026, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1400, got)

	// Before the raise took effect the older window still applies.
	got, err = newTestService(repo).ResolveWage(ctx, 1, date(2026, 2, 1))
	require.NoError(t, err)
	assert.Equal(t, 1200, got)
}

func TestResolveWageFallsBackToYearlyDefault(t *testing.T) {
	ctx := context.Background()
	repo := newMemWageRepo()
	repo.defaults[2026] = wage.DefaultWage{Year: 2026, Wage: 1000}
	end := date(2025, 12, 31)
	repo.windows = append(repo.windows, wage.WageWindow{
		WorkerID: 1, Wage: 1500, StartDate: date(2025, 1, 1), EndDate: &end,
	})

	got, err := newTestService(repo).ResolveWage(ctx, 1, date(2026, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, 1000, got)
}

func TestResolveWageUnresolvedSentinel(t *testing.T) {
	repo := newMemWageRepo()

	got, err := newTestService(repo).ResolveWage(context.Background(), 1, date(2026, 3, 10))
	require.NoError(t, err)
	assert.Equal(t, wage.UnresolvedWage, got)
}

func TestCreateWindow(t *testing.T) {
	svc := newTestService(newMemWageRepo())

	resp, err := svc.CreateWindow(context.Background(), wage.CreateWageWindowRequest{
		WorkerID:  1,
		Wage:      1300,
		StartDate: "2026-04-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 1300, resp.Wage)
	assert.Equal(t, "2026-04-01", resp.StartDate)
	assert.Nil(t, resp.EndDate)
}

func TestCreateWindowUnknownWorker(t *testing.T) {
	svc := newTestService(newMemWageRepo())

	_, err := svc.CreateWindow(context.Background(), wage.CreateWageWindowRequest{
		WorkerID:  42,
		Wage:      1300,
		StartDate: "2026-04-01",
	})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestCreateWindowEndBeforeStart(t *testing.T) {
	svc := newTestService(newMemWageRepo())

	end := "2026-01-01"
	_, err := svc.CreateWindow(context.Background(), wage.CreateWageWindowRequest{
		WorkerID:  1,
		Wage:      1300,
		StartDate: "2026-04-01",
		EndDate:   &end,
	})
	assert.Error(t, err)
}

func TestCreateDefaultDuplicateYear(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemWageRepo())

	_, err := svc.CreateDefault(ctx, wage.CreateDefaultWageRequest{Year: 2026, Wage: 1000})
	require.NoError(t, err)

	_, err = svc.CreateDefault(ctx, wage.CreateDefaultWageRequest{Year: 2026, Wage: 1100})
	assert.ErrorIs(t, err, wage.ErrDefaultWageExists)
}
