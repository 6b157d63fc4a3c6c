// Package forecast contains the forecast engine use cases.
package forecast

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// ListForecastsInput represents the input for listing forecast rows.
type ListForecastsInput struct {
	UserID        uuid.UUID
	MonthsBack    int
	MonthsForward int
}

// ListForecastsOutput represents the output of listing forecast rows.
type ListForecastsOutput struct {
	Forecasts []*entity.MonthlyForecast
}

// ListForecastsUseCase reads the persisted forecast rows for a window
// around the current month. It never triggers generation.
type ListForecastsUseCase struct {
	forecastRepo adapter.MonthlyForecastRepository
	now          func() time.Time
}

// NewListForecastsUseCase creates a new ListForecastsUseCase instance.
func NewListForecastsUseCase(forecastRepo adapter.MonthlyForecastRepository) *ListForecastsUseCase {
	return &ListForecastsUseCase{
		forecastRepo: forecastRepo,
		now:          time.Now,
	}
}

// Execute retrieves forecast rows for the requested window.
func (uc *ListForecastsUseCase) Execute(
	ctx context.Context,
	input ListForecastsInput,
) (*ListForecastsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}
	if input.MonthsBack < 0 || input.MonthsForward < 0 {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidWindow,
			"months_back and months_forward must not be negative",
			domainerror.ErrInvalidForecastWindow,
		)
	}

	currentMonth := monthStart(uc.now().UTC())
	from := addMonths(currentMonth, -input.MonthsBack)
	to := addMonths(currentMonth, input.MonthsForward)

	forecasts, err := uc.forecastRepo.FindByUserAndRange(ctx, input.UserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list forecasts: %w", err)
	}

	return &ListForecastsOutput{Forecasts: forecasts}, nil
}
