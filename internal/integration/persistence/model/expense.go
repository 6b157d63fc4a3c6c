// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// ExpenseModel represents the expenses table in the database.
type ExpenseModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Name        string          `gorm:"type:varchar(200);not null"`
	Description string          `gorm:"type:text"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Category    string          `gorm:"type:varchar(100);not null;index"`

	IsCredit           bool             `gorm:"default:false;index"`
	TotalCreditAmount  *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Installments       int              `gorm:"default:1"`
	CurrentInstallment int              `gorm:"default:0"`
	RemainingAmount    *decimal.Decimal `gorm:"type:decimal(12,2)"`
	CreditGroupID      *uuid.UUID       `gorm:"type:uuid;index"`

	SubscriptionID *uuid.UUID `gorm:"type:uuid;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`

	// Relationship (not loaded by default, use Preload)
	Subscription *SubscriptionModel `gorm:"foreignKey:SubscriptionID;references:ID"`
}

// TableName returns the table name for the ExpenseModel.
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToEntity converts an ExpenseModel to a domain Expense entity.
func (m *ExpenseModel) ToEntity() *entity.Expense {
	return &entity.Expense{
		ID:                 m.ID,
		UserID:             m.UserID,
		Date:               m.Date,
		Name:               m.Name,
		Description:        m.Description,
		Amount:             m.Amount,
		Category:           m.Category,
		IsCredit:           m.IsCredit,
		TotalCreditAmount:  m.TotalCreditAmount,
		Installments:       m.Installments,
		CurrentInstallment: m.CurrentInstallment,
		RemainingAmount:    m.RemainingAmount,
		CreditGroupID:      m.CreditGroupID,
		SubscriptionID:     m.SubscriptionID,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// ExpenseFromEntity creates an ExpenseModel from a domain Expense entity.
func ExpenseFromEntity(expense *entity.Expense) *ExpenseModel {
	return &ExpenseModel{
		ID:                 expense.ID,
		UserID:             expense.UserID,
		Date:               expense.Date,
		Name:               expense.Name,
		Description:        expense.Description,
		Amount:             expense.Amount,
		Category:           expense.Category,
		IsCredit:           expense.IsCredit,
		TotalCreditAmount:  expense.TotalCreditAmount,
		Installments:       expense.Installments,
		CurrentInstallment: expense.CurrentInstallment,
		RemainingAmount:    expense.RemainingAmount,
		CreditGroupID:      expense.CreditGroupID,
		SubscriptionID:     expense.SubscriptionID,
		CreatedAt:          expense.CreatedAt,
		UpdatedAt:          expense.UpdatedAt,
	}
}
