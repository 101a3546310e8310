package master

import (
	"context"
	"fmt"
	"time"

	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/holiday"
	"github.com/clockwork-hr/timeclock-backend-go/internal/domain/master/insurance"
)

// MasterService bundles the administrative reference-data operations:
// company holidays and social insurance rates.
type MasterService interface {
	holiday.HolidayService
	insurance.RateService
}

type MasterServiceImpl struct {
	holidayRepo holiday.HolidayRepository
	rateRepo    insurance.RateRepository
}

func NewMasterService(holidayRepo holiday.HolidayRepository, rateRepo insurance.RateRepository) MasterService {
	return &MasterServiceImpl{
		holidayRepo: holidayRepo,
		rateRepo:    rateRepo,
	}
}

// CreateHoliday implements holiday.HolidayService.
func (s *MasterServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Name:        req.Name,
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(created), nil
}

// ListHolidays implements holiday.HolidayService. Bounds are optional
// YYYY-MM-DD strings.
func (s *MasterServiceImpl) ListHolidays(ctx context.Context, start, end *string) ([]holiday.HolidayResponse, error) {
	var startDate, endDate *time.Time
	if start != nil && *start != "" {
		parsed, err := time.Parse("2006-01-02", *start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date: %w", err)
		}
		startDate = &parsed
	}
	if end != nil && *end != "" {
		parsed, err := time.Parse("2006-01-02", *end)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date: %w", err)
		}
		endDate = &parsed
	}

	holidays, err := s.holidayRepo.List(ctx, startDate, endDate)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.NewHolidayResponse(h))
	}
	return responses, nil
}

// UpdateHoliday implements holiday.HolidayService.
func (s *MasterServiceImpl) UpdateHoliday(ctx context.Context, id int64, req holiday.UpdateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}
	if req.Name == nil && req.Date == nil && req.Description == nil {
		return holiday.HolidayResponse{}, holiday.ErrNothingToUpdate
	}

	existing, err := s.holidayRepo.GetByID(ctx, id)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	if req.Name != nil {
		existing.Name = *req.Name
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
		}
		existing.Date = date
	}
	if req.Description != nil {
		existing.Description = req.Description
	}

	updated, err := s.holidayRepo.Update(ctx, existing)
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.NewHolidayResponse(updated), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (s *MasterServiceImpl) DeleteHoliday(ctx context.Context, id int64) error {
	if _, err := s.holidayRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.holidayRepo.Delete(ctx, id)
}

// SetRate implements insurance.RateService.
func (s *MasterServiceImpl) SetRate(ctx context.Context, req insurance.SetRateRequest) (insurance.RateResponse, error) {
	if err := req.Validate(); err != nil {
		return insurance.RateResponse{}, err
	}

	effectiveDate, err := time.Parse("2006-01-02", req.EffectiveDate)
	if err != nil {
		return insurance.RateResponse{}, fmt.Errorf("failed to parse effective date: %w", err)
	}

	saved, err := s.rateRepo.Upsert(ctx, insurance.Rate{
		Category:      insurance.Category(req.Category),
		Rate:          req.Rate,
		EffectiveDate: effectiveDate,
	})
	if err != nil {
		return insurance.RateResponse{}, err
	}
	return insurance.NewRateResponse(saved), nil
}

// ListRates implements insurance.RateService.
func (s *MasterServiceImpl) ListRates(ctx context.Context) ([]insurance.RateResponse, error) {
	rates, err := s.rateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]insurance.RateResponse, 0, len(rates))
	for _, r := range rates {
		responses = append(responses, insurance.NewRateResponse(r))
	}
	return responses, nil
}
