// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyForecast is the per-(user, month) spending summary produced by the
// forecast aggregator. Exactly one row exists per user and month; which
// field group is populated depends on whether the month is historical,
// current or future relative to generation time.
type MonthlyForecast struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Month  time.Time // first day of the month

	// Historical months: realized totals from the ledger.
	ActualSubscriptions decimal.Decimal
	ActualCredits       decimal.Decimal
	ActualOtherExpenses decimal.Decimal

	// Current month: full-month estimate vs spending realized so far.
	CurrentMonthEstimated decimal.Decimal
	CurrentMonthActual    decimal.Decimal

	// Future months: projected contributions by source.
	ProjectedSubscriptions decimal.Decimal
	ProjectedCredits       decimal.Decimal
	ProjectedEstimates     decimal.Decimal

	TotalProjected decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewMonthlyForecast creates an empty forecast row for the given month.
func NewMonthlyForecast(userID uuid.UUID, month time.Time) *MonthlyForecast {
	now := time.Now().UTC()

	return &MonthlyForecast{
		ID:        uuid.New(),
		UserID:    userID,
		Month:     time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TotalActual returns the realized total for a historical month.
func (f *MonthlyForecast) TotalActual() decimal.Decimal {
	return f.ActualSubscriptions.Add(f.ActualCredits).Add(f.ActualOtherExpenses)
}

// RemainingEstimate returns how much of the current-month estimate has not
// been realized yet, floored at zero.
func (f *MonthlyForecast) RemainingEstimate() decimal.Decimal {
	remaining := f.CurrentMonthEstimated.Sub(f.CurrentMonthActual)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// AccuracyPercent returns realized spending as a percentage of the estimate
// for the current month. Zero when no estimate exists.
func (f *MonthlyForecast) AccuracyPercent() decimal.Decimal {
	if !f.CurrentMonthEstimated.IsPositive() {
		return decimal.Zero
	}
	return f.CurrentMonthActual.
		Div(f.CurrentMonthEstimated).
		Mul(decimal.NewFromInt(100))
}
