// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confidence represents how much historical data backs a forecast rule.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// ExpenseType is a coarse classification used to group forecast rules.
type ExpenseType string

const (
	ExpenseTypeFood          ExpenseType = "food"
	ExpenseTypeHealth        ExpenseType = "health"
	ExpenseTypeTransport     ExpenseType = "transport"
	ExpenseTypeEntertainment ExpenseType = "entertainment"
	ExpenseTypeUtilities     ExpenseType = "utilities"
	ExpenseTypeShopping      ExpenseType = "shopping"
	ExpenseTypeOther         ExpenseType = "other"
)

var expenseTypeKeywords = map[ExpenseType][]string{
	ExpenseTypeFood:          {"food", "grocer", "restaurant", "supermarket"},
	ExpenseTypeHealth:        {"health", "medic", "pharmacy", "hospital"},
	ExpenseTypeTransport:     {"transport", "fuel", "taxi", "uber"},
	ExpenseTypeEntertainment: {"entertainment", "cinema", "theater", "sport"},
	ExpenseTypeUtilities:     {"utilit", "electric", "water", "gas", "internet"},
	ExpenseTypeShopping:      {"cloth", "shoe", "accessor", "tech", "shopping"},
}

// ExpenseTypeForCategory classifies a category name into an ExpenseType by
// keyword match, defaulting to other.
func ExpenseTypeForCategory(category string) ExpenseType {
	lower := strings.ToLower(category)
	for expenseType, keywords := range expenseTypeKeywords {
		for _, keyword := range keywords {
			if strings.Contains(lower, keyword) {
				return expenseType
			}
		}
	}
	return ExpenseTypeOther
}

// ForecastRule represents an estimated, not yet realized, recurring or
// one-time expense. Rules follow a trigger-month model: they contribute
// their full amount only in the months their frequency aligns with.
type ForecastRule struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	Name                   string
	Description            string
	Amount                 decimal.Decimal
	Category               string
	ExpenseType            ExpenseType
	Frequency              Frequency
	StartDate              time.Time
	EndDate                time.Time
	Confidence             Confidence
	IsActive               bool
	IsAutomaticSuggestion  bool
	SuggestedBasedOnMonths int
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// NewForecastRule creates a new ForecastRule entity.
func NewForecastRule(
	userID uuid.UUID,
	name string,
	amount decimal.Decimal,
	category string,
	frequency Frequency,
	startDate time.Time,
	endDate time.Time,
) *ForecastRule {
	now := time.Now().UTC()

	return &ForecastRule{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		Amount:      amount,
		Category:    category,
		ExpenseType: ExpenseTypeForCategory(category),
		Frequency:   frequency,
		StartDate:   startDate,
		EndDate:     endDate,
		Confidence:  ConfidenceMedium,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// AmountForMonth returns the rule's contribution to the given month.
// Months outside [start_date, end_date] (compared at month granularity) and
// inactive rules contribute zero. Unknown frequencies use the monthly policy
// so the aggregate total stays defined.
func (r *ForecastRule) AmountForMonth(year int, month time.Month) decimal.Decimal {
	if !r.IsActive {
		return decimal.Zero
	}

	target := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	if target.Before(monthOf(r.StartDate)) || target.After(monthOf(r.EndDate)) {
		return decimal.Zero
	}

	switch r.Frequency {
	case FrequencyOneTime:
		if target.Equal(monthOf(r.StartDate)) {
			return r.Amount
		}
		return decimal.Zero
	case FrequencyQuarterly:
		// Quarters are counted from January: months 1, 4, 7, 10.
		if int(month)%3 == 1 {
			return r.Amount
		}
		return decimal.Zero
	case FrequencyBiannual:
		// Semesters are counted from January: months 1 and 7.
		if int(month)%6 == 1 {
			return r.Amount
		}
		return decimal.Zero
	case FrequencyAnnual:
		if month == r.StartDate.Month() {
			return r.Amount
		}
		return decimal.Zero
	default:
		// monthly, variable and any unrecognized frequency
		return r.Amount
	}
}

// MonthlyAmount returns the amortized monthly equivalent of the rule,
// used when estimating the current month as a whole.
func (r *ForecastRule) MonthlyAmount() decimal.Decimal {
	if r.Frequency.IsPeriodic() {
		return r.Amount.Div(decimal.NewFromInt(int64(r.Frequency.Months())))
	}
	return r.Amount
}

func monthOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
