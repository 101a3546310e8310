package worker

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{WorkerRepository: workerRepo}
}

func hashPassword(plain string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func parseDate(value string) (*time.Time, error) {
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// Create implements worker.WorkerService.
func (s *WorkerServiceImpl) Create(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	passwordHash, err := hashPassword(req.Password)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	entity := worker.Worker{
		Username:      req.Username,
		PasswordHash:  passwordHash,
		Name:          req.Name,
		Position:      worker.Position(req.Position),
		Phone:         req.Phone,
		Email:         req.Email,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IsActive:      true,
	}
	if req.Gender != nil {
		g := worker.Gender(*req.Gender)
		entity.Gender = &g
	}
	if req.HireDate != nil {
		if entity.HireDate, err = parseDate(*req.HireDate); err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
	}
	if req.IsActive != nil {
		entity.IsActive = *req.IsActive
	}

	created, err := s.WorkerRepository.Create(ctx, entity)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(created), nil
}

// Get implements worker.WorkerService.
func (s *WorkerServiceImpl) Get(ctx context.Context, id int64) (worker.WorkerResponse, error) {
	found, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(found), nil
}

// List implements worker.WorkerService.
func (s *WorkerServiceImpl) List(ctx context.Context, q string, limit, offset int) ([]worker.WorkerResponse, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	workers, total, err := s.WorkerRepository.List(ctx, q, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.NewWorkerResponse(w))
	}
	return responses, total, nil
}

// Update implements worker.WorkerService. Nil request fields keep the
// stored values.
func (s *WorkerServiceImpl) Update(ctx context.Context, id int64, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	existing, err := s.WorkerRepository.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	if req.Password != nil {
		if existing.PasswordHash, err = hashPassword(*req.Password); err != nil {
			return worker.WorkerResponse{}, err
		}
	}
	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Position != nil {
		existing.Position = worker.Position(*req.Position)
	}
	if req.Gender != nil {
		g := worker.Gender(*req.Gender)
		existing.Gender = &g
	}
	if req.Phone != nil {
		existing.Phone = req.Phone
	}
	if req.Email != nil {
		existing.Email = req.Email
	}
	if req.BankName != nil {
		existing.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		existing.AccountNumber = req.AccountNumber
	}
	if req.HireDate != nil {
		if existing.HireDate, err = parseDate(*req.HireDate); err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to parse hire date: %w", err)
		}
	}
	if req.RetireDate != nil {
		if existing.RetireDate, err = parseDate(*req.RetireDate); err != nil {
			return worker.WorkerResponse{}, fmt.Errorf("failed to parse retire date: %w", err)
		}
	}
	if req.IsActive != nil {
		existing.IsActive = *req.IsActive
	}

	updated, err := s.WorkerRepository.Update(ctx, existing)
	if err != nil {
		return worker.WorkerResponse{}, err
	}
	return worker.NewWorkerResponse(updated), nil
}

// Delete implements worker.WorkerService.
func (s *WorkerServiceImpl) Delete(ctx context.Context, id int64) error {
	if _, err := s.WorkerRepository.GetByID(ctx, id); err != nil {
		return err
	}
	return s.WorkerRepository.Delete(ctx, id)
}
