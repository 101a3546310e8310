package wage

import (
	"context"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/wage"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/worker"
	"github.com/clockwork-hr/timeclock-backend-go/internal/pkg/validator"
)

type WageServiceImpl struct {
	wage.WageRepository
	worker.WorkerRepository
}

func NewWageService(wageRepo wage.WageRepository, workerRepo worker.WorkerRepository) wage.WageService {
	return &WageServiceImpl{
		WageRepository:   wageRepo,
		WorkerRepository: workerRepo,
	}
}

// ResolveWage implements wage.Resolver. Resolution order: the worker's
// covering wage window with the latest start date, then the yearly default
// wage, then the UnresolvedWage sentinel. Never an error for "no wage
// known" — a missing rate for one worker must not abort a batch sweep.
func (s *WageServiceImpl) ResolveWage(ctx context.Context, workerID int64, date time.Time) (int, error) {
	window, err := s.WageRepository.FindApplicableWindow(ctx, workerID, date)
	if err != nil {
		return 0, err
	}
	if window != nil {
		return window.Wage, nil
	}

	fallback, err := s.WageRepository.GetDefaultByYear(ctx, date.Year())
	if err != nil {
		return 0, err
	}
	if fallback != nil {
		return fallback.Wage, nil
	}

	return wage.UnresolvedWage, nil
}

// CreateWindow implements wage.WageService.
func (s *WageServiceImpl) CreateWindow(ctx context.Context, req wage.CreateWageWindowRequest) (wage.WageWindowResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.WageWindowResponse{}, err
	}
	if _, err := s.WorkerRepository.GetByID(ctx, req.WorkerID); err != nil {
		return wage.WageWindowResponse{}, err
	}

	start, _ := validator.IsValidDate(req.StartDate)
	window := wage.WageWindow{
		WorkerID:  req.WorkerID,
		Wage:      req.Wage,
		StartDate: start,
	}
	if req.EndDate != nil {
		end, _ := validator.IsValidDate(*req.EndDate)
		window.EndDate = &end
	}

	created, err := s.WageRepository.CreateWindow(ctx, window)
	if err != nil {
		return wage.WageWindowResponse{}, err
	}
	return wage.NewWageWindowResponse(created), nil
}

// ListWindows implements wage.WageService.
func (s *WageServiceImpl) ListWindows(ctx context.Context, workerID int64) ([]wage.WageWindowResponse, error) {
	windows, err := s.WageRepository.ListWindowsByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	responses := make([]wage.WageWindowResponse, 0, len(windows))
	for _, w := range windows {
		responses = append(responses, wage.NewWageWindowResponse(w))
	}
	return responses, nil
}

// CreateDefault implements wage.WageService.
func (s *WageServiceImpl) CreateDefault(ctx context.Context, req wage.CreateDefaultWageRequest) (wage.DefaultWageResponse, error) {
	if err := req.Validate(); err != nil {
		return wage.DefaultWageResponse{}, err
	}

	created, err := s.WageRepository.CreateDefault(ctx, wage.DefaultWage{
		Year: req.Year,
		Wage: req.Wage,
	})
	if err != nil {
		return wage.DefaultWageResponse{}, err
	}
	return wage.NewDefaultWageResponse(created), nil
}

// ListDefaults implements wage.WageService.
func (s *WageServiceImpl) ListDefaults(ctx context.Context) ([]wage.DefaultWageResponse, error) {
	defaults, err := s.WageRepository.ListDefaults(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]wage.DefaultWageResponse, 0, len(defaults))
	for _, d := range defaults {
		responses = append(responses, wage.NewDefaultWageResponse(d))
	}
	return responses, nil
}
