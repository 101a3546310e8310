package worker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
)

type memWorkerRepo struct {
	nextID  int64
	workers map[int64]worker.Worker
}

func newMemWorkerRepo() *memWorkerRepo {
	return &memWorkerRepo{workers: make(map[int64]worker.Worker)}
}

func (m *memWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	for _, existing := range m.workers {
		if existing.Username == w.Username {
			return worker.Worker{}, worker.ErrUsernameExists
		}
	}
	m.nextID++
	w.ID = m.nextID
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

func TestCreateWorker(t *testing.T) {
	ctx := context.Background()
	repo := newMemWorkerRepo()
	svc := NewWorkerService(repo)

	resp, err := svc.Create(ctx, worker.CreateWorkerRequest{
		Username: "crew1",
		Password: "password123",
		Name:     "Crew One",
		Position: "crew",
	})
	require.NoError(t, err)
	assert.Equal(t, "crew1", resp.Username)
	assert.True(t, resp.IsActive)

	// Password is stored hashed, never verbatim.
	stored := repo.workers[resp.ID]
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestCreateWorkerValidation(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())

	_, err := svc.Create(context.Background(), worker.CreateWorkerRequest{
		Username: "crew1",
		Password: "short",
		Name:     "Crew One",
		Position: "astronaut",
	})
	require.Error(t, err)
}

func TestCreateWorkerDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	svc := NewWorkerService(newMemWorkerRepo())

	req := worker.CreateWorkerRequest{
		Username: "crew1",
		Password: "password123",
		Name:     "Crew One",
		Position: "crew",
	}
	_, err := svc.Create(ctx, req)
	require.NoError(t, err)

	_, err = svc.Create(ctx, req)
	assert.ErrorIs(t, err, worker.ErrUsernameExists)
}

func TestUpdateWorkerPartial(t *testing.T) {
	ctx := context.Background()
	repo := newMemWorkerRepo()
	svc := NewWorkerService(repo)

	created, err := svc.Create(ctx, worker.CreateWorkerRequest{
		Username: "crew1",
		Password: "password123",
		Name:     "Crew One",
		Position: "crew",
	})
	require.NoError(t, err)
	originalHash := repo.workers[created.ID].PasswordHash

	newName := "Crew Renamed"
	newPosition := "leader"
	resp, err := svc.Update(ctx, created.ID, worker.UpdateWorkerRequest{
		Name:     &newName,
		Position: &newPosition,
	})
	require.NoError(t, err)
	assert.Equal(t, "Crew Renamed", resp.Name)
	assert.Equal(t, "leader", resp.Position)
	// Untouched fields survive the partial update.
	assert.Equal(t, "crew1", resp.Username)
	assert.Equal(t, originalHash, repo.workers[created.ID].PasswordHash)
}

func TestUpdateWorkerNotFound(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())

	name := "Nobody"
	_, err := svc.Update(context.Background(), 42, worker.UpdateWorkerRequest{Name: &name})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestDeleteWorkerNotFound(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
