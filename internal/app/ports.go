package app

import "context"

// ForecastUseCase runs a scheduling pass over the stored roster, projects,
// and assignments.
type ForecastUseCase interface {
	Forecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error)
}
