// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionStatus represents the lifecycle state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
)

// Subscription represents a recurring payment commitment.
type Subscription struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Name         string
	Description  string
	Amount       decimal.Decimal
	Category     string
	Frequency    Frequency
	StartDate    time.Time
	EndDate      *time.Time
	Status       SubscriptionStatus
	ReminderDays int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSubscription creates a new Subscription entity.
func NewSubscription(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	category string,
	frequency Frequency,
	startDate time.Time,
	endDate *time.Time,
) *Subscription {
	now := time.Now().UTC()

	return &Subscription{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         name,
		Amount:       amount,
		Category:     category,
		Frequency:    frequency,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       SubscriptionStatusActive,
		ReminderDays: 7,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsActive reports whether the subscription currently contributes to
// projections: status active and not past its end date.
func (s *Subscription) IsActive(asOf time.Time) bool {
	if s.Status != SubscriptionStatusActive {
		return false
	}
	if s.EndDate != nil && s.EndDate.Before(truncateToDay(asOf)) {
		return false
	}
	return true
}

// MonthlyEquivalent returns the normalized per-month contribution,
// amount / period length in months.
func (s *Subscription) MonthlyEquivalent() decimal.Decimal {
	return s.Amount.Div(decimal.NewFromInt(int64(s.Frequency.Months())))
}

// NextPaymentDate walks forward from the start date in frequency-sized
// steps and returns the first payment date strictly after asOf.
// Returns the zero time for inactive subscriptions.
func (s *Subscription) NextPaymentDate(asOf time.Time) time.Time {
	if !s.IsActive(asOf) {
		return time.Time{}
	}

	asOf = truncateToDay(asOf)
	next := s.StartDate
	step := s.Frequency.Months()
	for !next.After(asOf) {
		next = next.AddDate(0, step, 0)
	}
	return next
}

// IsDueSoon reports whether the next payment falls within the reminder
// window.
func (s *Subscription) IsDueSoon(asOf time.Time) bool {
	next := s.NextPaymentDate(asOf)
	if next.IsZero() {
		return false
	}
	daysUntilDue := int(next.Sub(truncateToDay(asOf)).Hours() / 24)
	return daysUntilDue <= s.ReminderDays
}

// IsOverdue reports whether a payment date has passed without renewal.
func (s *Subscription) IsOverdue(asOf time.Time) bool {
	next := s.NextPaymentDate(asOf)
	if next.IsZero() {
		return false
	}
	return next.Before(truncateToDay(asOf))
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
