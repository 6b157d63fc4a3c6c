// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// ForecastRuleModel represents the forecast_rules table in the database.
type ForecastRuleModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name                   string          `gorm:"type:varchar(200);not null"`
	Description            string          `gorm:"type:text"`
	Amount                 decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category               string          `gorm:"type:varchar(100);not null"`
	ExpenseType            string          `gorm:"type:varchar(20);not null"`
	Frequency              string          `gorm:"type:varchar(20);not null"`
	StartDate              time.Time       `gorm:"type:date;not null;index"`
	EndDate                time.Time       `gorm:"type:date;not null;index"`
	Confidence             string          `gorm:"type:varchar(20);not null"`
	IsActive               bool            `gorm:"default:true;index"`
	IsAutomaticSuggestion  bool            `gorm:"default:false;index"`
	SuggestedBasedOnMonths int             `gorm:"default:0"`
	CreatedAt              time.Time       `gorm:"not null"`
	UpdatedAt              time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ForecastRuleModel.
func (ForecastRuleModel) TableName() string {
	return "forecast_rules"
}

// ToEntity converts a ForecastRuleModel to a domain ForecastRule entity.
func (m *ForecastRuleModel) ToEntity() *entity.ForecastRule {
	return &entity.ForecastRule{
		ID:                     m.ID,
		UserID:                 m.UserID,
		Name:                   m.Name,
		Description:            m.Description,
		Amount:                 m.Amount,
		Category:               m.Category,
		ExpenseType:            entity.ExpenseType(m.ExpenseType),
		Frequency:              entity.Frequency(m.Frequency),
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		Confidence:             entity.Confidence(m.Confidence),
		IsActive:               m.IsActive,
		IsAutomaticSuggestion:  m.IsAutomaticSuggestion,
		SuggestedBasedOnMonths: m.SuggestedBasedOnMonths,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

// ForecastRuleFromEntity creates a ForecastRuleModel from a domain entity.
func ForecastRuleFromEntity(rule *entity.ForecastRule) *ForecastRuleModel {
	return &ForecastRuleModel{
		ID:                     rule.ID,
		UserID:                 rule.UserID,
		Name:                   rule.Name,
		Description:            rule.Description,
		Amount:                 rule.Amount,
		Category:               rule.Category,
		ExpenseType:            string(rule.ExpenseType),
		Frequency:              string(rule.Frequency),
		StartDate:              rule.StartDate,
		EndDate:                rule.EndDate,
		Confidence:             string(rule.Confidence),
		IsActive:               rule.IsActive,
		IsAutomaticSuggestion:  rule.IsAutomaticSuggestion,
		SuggestedBasedOnMonths: rule.SuggestedBasedOnMonths,
		CreatedAt:              rule.CreatedAt,
		UpdatedAt:              rule.UpdatedAt,
	}
}
