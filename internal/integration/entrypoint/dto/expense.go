// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for ledger entry creation.
type CreateExpenseRequest struct {
	Date               string   `json:"date" binding:"required"`
	Name               string   `json:"name" binding:"required"`
	Description        string   `json:"description,omitempty"`
	Amount             float64  `json:"amount" binding:"required,gt=0"`
	Category           string   `json:"category" binding:"required"`
	IsCredit           bool     `json:"is_credit,omitempty"`
	TotalCreditAmount  *float64 `json:"total_credit_amount,omitempty"`
	Installments       int      `json:"installments,omitempty"`
	CurrentInstallment int      `json:"current_installment,omitempty"`
	CreditGroupID      *string  `json:"credit_group_id,omitempty" binding:"omitempty,uuid"`
	SubscriptionID     *string  `json:"subscription_id,omitempty" binding:"omitempty,uuid"`
}

// ExpenseResponse represents a single ledger entry in API responses.
type ExpenseResponse struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Date               string    `json:"date"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	Amount             string    `json:"amount"`
	Category           string    `json:"category"`
	IsCredit           bool      `json:"is_credit"`
	TotalCreditAmount  *string   `json:"total_credit_amount,omitempty"`
	Installments       int       `json:"installments"`
	CurrentInstallment int       `json:"current_installment"`
	RemainingAmount    *string   `json:"remaining_amount,omitempty"`
	CreditGroupID      *string   `json:"credit_group_id,omitempty"`
	SubscriptionID     *string   `json:"subscription_id,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing ledger entries.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(e *entity.Expense) ExpenseResponse {
	response := ExpenseResponse{
		ID:                 e.ID.String(),
		UserID:             e.UserID.String(),
		Date:               e.Date.Format("2006-01-02"),
		Name:               e.Name,
		Description:        e.Description,
		Amount:             e.Amount.String(),
		Category:           e.Category,
		IsCredit:           e.IsCredit,
		Installments:       e.Installments,
		CurrentInstallment: e.CurrentInstallment,
		CreatedAt:          e.CreatedAt,
		UpdatedAt:          e.UpdatedAt,
	}

	if e.TotalCreditAmount != nil {
		total := e.TotalCreditAmount.String()
		response.TotalCreditAmount = &total
	}
	if e.RemainingAmount != nil {
		remaining := e.RemainingAmount.String()
		response.RemainingAmount = &remaining
	}
	if e.CreditGroupID != nil {
		groupID := e.CreditGroupID.String()
		response.CreditGroupID = &groupID
	}
	if e.SubscriptionID != nil {
		subscriptionID := e.SubscriptionID.String()
		response.SubscriptionID = &subscriptionID
	}

	return response
}

// ToExpenseListResponse converts domain expenses to an ExpenseListResponse.
func ToExpenseListResponse(expenses []*entity.Expense) ExpenseListResponse {
	responses := make([]ExpenseResponse, len(expenses))
	for i, e := range expenses {
		responses[i] = ToExpenseResponse(e)
	}
	return ExpenseListResponse{
		Expenses: responses,
	}
}
