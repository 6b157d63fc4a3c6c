// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// SubscriptionModel represents the subscriptions table in the database.
type SubscriptionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	Amount       decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category     string          `gorm:"type:varchar(100);not null"`
	Frequency    string          `gorm:"type:varchar(20);not null"`
	StartDate    time.Time       `gorm:"type:date;not null"`
	EndDate      *time.Time      `gorm:"type:date"`
	Status       string          `gorm:"type:varchar(20);not null;index"`
	ReminderDays int             `gorm:"default:7"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SubscriptionModel.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToEntity converts a SubscriptionModel to a domain Subscription entity.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:           m.ID,
		UserID:       m.UserID,
		Name:         m.Name,
		Description:  m.Description,
		Amount:       m.Amount,
		Category:     m.Category,
		Frequency:    entity.Frequency(m.Frequency),
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Status:       entity.SubscriptionStatus(m.Status),
		ReminderDays: m.ReminderDays,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// SubscriptionFromEntity creates a SubscriptionModel from a domain entity.
func SubscriptionFromEntity(subscription *entity.Subscription) *SubscriptionModel {
	return &SubscriptionModel{
		ID:           subscription.ID,
		UserID:       subscription.UserID,
		Name:         subscription.Name,
		Description:  subscription.Description,
		Amount:       subscription.Amount,
		Category:     subscription.Category,
		Frequency:    string(subscription.Frequency),
		StartDate:    subscription.StartDate,
		EndDate:      subscription.EndDate,
		Status:       string(subscription.Status),
		ReminderDays: subscription.ReminderDays,
		CreatedAt:    subscription.CreatedAt,
		UpdatedAt:    subscription.UpdatedAt,
	}
}
