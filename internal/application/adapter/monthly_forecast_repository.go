// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// MonthlyForecastRepository defines the interface for forecast row persistence.
// Rows are unique per (user, month); concurrent generation runs for the same
// user may race on GetOrCreate, which is tolerated because regeneration is
// deterministic and last-writer-wins converges to the same values.
type MonthlyForecastRepository interface {
	// GetOrCreate returns the forecast row for (user, month), creating an
	// empty one when none exists. The second return value reports creation.
	GetOrCreate(ctx context.Context, userID uuid.UUID, month time.Time) (*entity.MonthlyForecast, bool, error)

	// Save persists the row's current field values.
	Save(ctx context.Context, forecast *entity.MonthlyForecast) error

	// FindByUserAndRange retrieves forecast rows for months in [from, to],
	// ordered by month ascending.
	FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MonthlyForecast, error)
}
