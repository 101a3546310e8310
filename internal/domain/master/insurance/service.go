package insurance

import "context"

type RateService interface {
	SetRate(ctx context.Context, req SetRateRequest) (RateResponse, error)
	ListRates(ctx context.Context) ([]RateResponse, error)
}
