// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
)

// monthlyForecastRepository implements the adapter.MonthlyForecastRepository
// interface.
type monthlyForecastRepository struct {
	db *gorm.DB
}

// NewMonthlyForecastRepository creates a new monthly forecast repository instance.
func NewMonthlyForecastRepository(db *gorm.DB) adapter.MonthlyForecastRepository {
	return &monthlyForecastRepository{
		db: db,
	}
}

// GetOrCreate returns the forecast row for (user, month), creating an empty
// one when none exists. When two generation runs race on the insert, the
// loser re-reads the winner's row; both runs then overwrite it with the same
// deterministic values.
func (r *monthlyForecastRepository) GetOrCreate(ctx context.Context, userID uuid.UUID, month time.Time) (*entity.MonthlyForecast, bool, error) {
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	row, err := r.findByUserAndMonth(ctx, userID, month)
	if err != nil {
		return nil, false, err
	}
	if row != nil {
		return row, false, nil
	}

	forecast := entity.NewMonthlyForecast(userID, month)
	forecastModel := model.MonthlyForecastFromEntity(forecast)
	if err := r.db.WithContext(ctx).Create(forecastModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			row, findErr := r.findByUserAndMonth(ctx, userID, month)
			if findErr != nil {
				return nil, false, findErr
			}
			if row != nil {
				return row, false, nil
			}
		}
		return nil, false, err
	}

	return forecast, true, nil
}

// Save persists the row's current field values.
func (r *monthlyForecastRepository) Save(ctx context.Context, forecast *entity.MonthlyForecast) error {
	forecastModel := model.MonthlyForecastFromEntity(forecast)
	result := r.db.WithContext(ctx).Save(forecastModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUserAndRange retrieves forecast rows for months in [from, to],
// ordered by month ascending.
func (r *monthlyForecastRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MonthlyForecast, error) {
	var forecastModels []model.MonthlyForecastModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month >= ? AND month <= ?", userID, from, to).
		Order("month ASC").
		Find(&forecastModels)
	if result.Error != nil {
		return nil, result.Error
	}

	forecasts := make([]*entity.MonthlyForecast, len(forecastModels))
	for i, fm := range forecastModels {
		forecasts[i] = fm.ToEntity()
	}
	return forecasts, nil
}

func (r *monthlyForecastRepository) findByUserAndMonth(ctx context.Context, userID uuid.UUID, month time.Time) (*entity.MonthlyForecast, error) {
	var forecastModel model.MonthlyForecastModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", userID, month).
		First(&forecastModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return forecastModel.ToEntity(), nil
}
