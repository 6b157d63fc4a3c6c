// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// MonthlyForecastModel represents the monthly_forecasts table in the
// database. The (user_id, month) pair is unique: regeneration updates the
// existing row instead of inserting a new one.
type MonthlyForecastModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_forecast_user_month"`
	Month  time.Time `gorm:"type:date;not null;uniqueIndex:idx_forecast_user_month"`

	ActualSubscriptions decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ActualCredits       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ActualOtherExpenses decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	CurrentMonthEstimated decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	CurrentMonthActual    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	ProjectedSubscriptions decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProjectedCredits       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	ProjectedEstimates     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	TotalProjected decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the MonthlyForecastModel.
func (MonthlyForecastModel) TableName() string {
	return "monthly_forecasts"
}

// ToEntity converts a MonthlyForecastModel to a domain MonthlyForecast entity.
func (m *MonthlyForecastModel) ToEntity() *entity.MonthlyForecast {
	return &entity.MonthlyForecast{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Month:                  m.Month,
		ActualSubscriptions:    m.ActualSubscriptions,
		ActualCredits:          m.ActualCredits,
		ActualOtherExpenses:    m.ActualOtherExpenses,
		CurrentMonthEstimated:  m.CurrentMonthEstimated,
		CurrentMonthActual:     m.CurrentMonthActual,
		ProjectedSubscriptions: m.ProjectedSubscriptions,
		ProjectedCredits:       m.ProjectedCredits,
		ProjectedEstimates:     m.ProjectedEstimates,
		TotalProjected:         m.TotalProjected,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// MonthlyForecastFromEntity creates a MonthlyForecastModel from a domain entity.
func MonthlyForecastFromEntity(forecast *entity.MonthlyForecast) *MonthlyForecastModel {
	return &MonthlyForecastModel{
		ID:                     forecast.ID,
		UserID:                 forecast.UserID,
		Month:                  forecast.Month,
		ActualSubscriptions:    forecast.ActualSubscriptions,
		ActualCredits:          forecast.ActualCredits,
		ActualOtherExpenses:    forecast.ActualOtherExpenses,
		CurrentMonthEstimated:  forecast.CurrentMonthEstimated,
		CurrentMonthActual:     forecast.CurrentMonthActual,
		ProjectedSubscriptions: forecast.ProjectedSubscriptions,
		ProjectedCredits:       forecast.ProjectedCredits,
		ProjectedEstimates:     forecast.ProjectedEstimates,
		TotalProjected:         forecast.TotalProjected,
		CreatedAt:              forecast.CreatedAt,
		UpdatedAt:              forecast.UpdatedAt,
	}
}
