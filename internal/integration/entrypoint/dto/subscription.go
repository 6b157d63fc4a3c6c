// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-tracker/forecast/internal/application/usecase/subscription"
)

// CreateSubscriptionRequest represents the request body for subscription creation.
type CreateSubscriptionRequest struct {
	Name         string  `json:"name" binding:"required"`
	Amount       float64 `json:"amount" binding:"required,gt=0"`
	Category     string  `json:"category,omitempty"`
	Frequency    string  `json:"frequency" binding:"required,oneof=monthly quarterly biannual annual"`
	StartDate    string  `json:"start_date" binding:"required"`
	EndDate      *string `json:"end_date,omitempty"`
	ReminderDays *int    `json:"reminder_days,omitempty" binding:"omitempty,gte=0"`
}

// SubscriptionResponse represents a single subscription in API responses.
type SubscriptionResponse struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Amount            string    `json:"amount"`
	Category          string    `json:"category,omitempty"`
	Frequency         string    `json:"frequency"`
	StartDate         string    `json:"start_date"`
	EndDate           *string   `json:"end_date,omitempty"`
	Status            string    `json:"status"`
	MonthlyEquivalent string    `json:"monthly_equivalent"`
	NextPaymentDate   *string   `json:"next_payment_date,omitempty"`
	DueSoon           bool      `json:"due_soon"`
	Overdue           bool      `json:"overdue"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// SubscriptionListResponse represents the response for listing subscriptions.
type SubscriptionListResponse struct {
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
}

// ToSubscriptionResponse converts an annotated subscription to a DTO.
func ToSubscriptionResponse(s *subscription.SubscriptionWithSchedule) SubscriptionResponse {
	sub := s.Subscription
	response := SubscriptionResponse{
		ID:                sub.ID.String(),
		UserID:            sub.UserID.String(),
		Name:              sub.Name,
		Amount:            sub.Amount.String(),
		Category:          sub.Category,
		Frequency:         string(sub.Frequency),
		StartDate:         sub.StartDate.Format("2006-01-02"),
		Status:            string(sub.Status),
		MonthlyEquivalent: s.MonthlyEquivalent,
		DueSoon:           s.DueSoon,
		Overdue:           s.Overdue,
		CreatedAt:         sub.CreatedAt,
		UpdatedAt:         sub.UpdatedAt,
	}

	if sub.EndDate != nil {
		endDate := sub.EndDate.Format("2006-01-02")
		response.EndDate = &endDate
	}
	if s.NextPaymentDate != nil {
		next := s.NextPaymentDate.Format("2006-01-02")
		response.NextPaymentDate = &next
	}

	return response
}

// ToSubscriptionListResponse converts annotated subscriptions to a list DTO.
func ToSubscriptionListResponse(subscriptions []*subscription.SubscriptionWithSchedule) SubscriptionListResponse {
	responses := make([]SubscriptionResponse, len(subscriptions))
	for i, s := range subscriptions {
		responses[i] = ToSubscriptionResponse(s)
	}
	return SubscriptionListResponse{
		Subscriptions: responses,
	}
}
