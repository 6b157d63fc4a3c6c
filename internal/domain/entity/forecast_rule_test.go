package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestRule(frequency Frequency, amount string, start, end time.Time) *ForecastRule {
	return NewForecastRule(
		uuid.New(),
		"Test Rule",
		decimal.RequireFromString(amount),
		"utilities",
		frequency,
		start,
		end,
	)
}

func TestExpenseTypeForCategory(t *testing.T) {
	tests := []struct {
		category string
		want     ExpenseType
	}{
		{"Groceries", ExpenseTypeFood},
		{"Restaurant", ExpenseTypeFood},
		{"Pharmacy", ExpenseTypeHealth},
		{"Fuel", ExpenseTypeTransport},
		{"Cinema", ExpenseTypeEntertainment},
		{"Electricity", ExpenseTypeUtilities},
		{"Clothing", ExpenseTypeShopping},
		{"Miscellaneous", ExpenseTypeOther},
		{"", ExpenseTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			if got := ExpenseTypeForCategory(tt.category); got != tt.want {
				t.Errorf("ExpenseTypeForCategory(%q) = %s, want %s", tt.category, got, tt.want)
			}
		})
	}
}

func TestForecastRule_AmountForMonth(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	t.Run("monthly triggers every month", func(t *testing.T) {
		rule := newTestRule(FrequencyMonthly, "100", start, end)
		for month := time.January; month <= time.December; month++ {
			got := rule.AmountForMonth(2025, month)
			if !got.Equal(decimal.RequireFromString("100")) {
				t.Errorf("month %s: AmountForMonth() = %s, want 100", month, got)
			}
		}
	})

	t.Run("quarterly triggers in months 1 4 7 10", func(t *testing.T) {
		rule := newTestRule(FrequencyQuarterly, "300", start, end)
		triggerMonths := map[time.Month]bool{
			time.January: true, time.April: true, time.July: true, time.October: true,
		}
		for month := time.January; month <= time.December; month++ {
			got := rule.AmountForMonth(2025, month)
			if triggerMonths[month] {
				if !got.Equal(decimal.RequireFromString("300")) {
					t.Errorf("month %s: AmountForMonth() = %s, want 300", month, got)
				}
			} else if !got.IsZero() {
				t.Errorf("month %s: AmountForMonth() = %s, want 0", month, got)
			}
		}
	})

	t.Run("biannual triggers in months 1 and 7", func(t *testing.T) {
		rule := newTestRule(FrequencyBiannual, "600", start, end)
		for month := time.January; month <= time.December; month++ {
			got := rule.AmountForMonth(2025, month)
			if month == time.January || month == time.July {
				if !got.Equal(decimal.RequireFromString("600")) {
					t.Errorf("month %s: AmountForMonth() = %s, want 600", month, got)
				}
			} else if !got.IsZero() {
				t.Errorf("month %s: AmountForMonth() = %s, want 0", month, got)
			}
		}
	})

	t.Run("annual triggers in start month only", func(t *testing.T) {
		marchStart := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		rule := newTestRule(FrequencyAnnual, "1200", marchStart, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC))

		if got := rule.AmountForMonth(2026, time.March); !got.Equal(decimal.RequireFromString("1200")) {
			t.Errorf("AmountForMonth(2026, March) = %s, want 1200", got)
		}
		if got := rule.AmountForMonth(2026, time.April); !got.IsZero() {
			t.Errorf("AmountForMonth(2026, April) = %s, want 0", got)
		}
	})

	t.Run("one time triggers in start month only", func(t *testing.T) {
		rule := newTestRule(FrequencyOneTime, "500", start, end)

		if got := rule.AmountForMonth(2025, time.January); !got.Equal(decimal.RequireFromString("500")) {
			t.Errorf("AmountForMonth(2025, January) = %s, want 500", got)
		}
		if got := rule.AmountForMonth(2025, time.February); !got.IsZero() {
			t.Errorf("AmountForMonth(2025, February) = %s, want 0", got)
		}
	})

	t.Run("variable falls back to monthly", func(t *testing.T) {
		rule := newTestRule(FrequencyVariable, "75", start, end)
		if got := rule.AmountForMonth(2025, time.June); !got.Equal(decimal.RequireFromString("75")) {
			t.Errorf("AmountForMonth() = %s, want 75", got)
		}
	})

	t.Run("start month counts even with mid-month start date", func(t *testing.T) {
		// The rule starts on January 15th; the January forecast month must
		// still include it.
		rule := newTestRule(FrequencyMonthly, "100", start, end)
		if got := rule.AmountForMonth(2025, time.January); !got.Equal(decimal.RequireFromString("100")) {
			t.Errorf("AmountForMonth(start month) = %s, want 100", got)
		}
	})

	t.Run("outside date range contributes zero", func(t *testing.T) {
		rule := newTestRule(FrequencyMonthly, "100", start, end)
		if got := rule.AmountForMonth(2024, time.December); !got.IsZero() {
			t.Errorf("AmountForMonth(before start) = %s, want 0", got)
		}
		if got := rule.AmountForMonth(2026, time.January); !got.IsZero() {
			t.Errorf("AmountForMonth(after end) = %s, want 0", got)
		}
	})

	t.Run("inactive rule contributes zero", func(t *testing.T) {
		rule := newTestRule(FrequencyMonthly, "100", start, end)
		rule.IsActive = false
		if got := rule.AmountForMonth(2025, time.June); !got.IsZero() {
			t.Errorf("AmountForMonth(inactive) = %s, want 0", got)
		}
	})
}

func TestForecastRule_MonthlyAmount(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		frequency Frequency
		amount    string
		want      string
	}{
		{"monthly keeps amount", FrequencyMonthly, "100", "100"},
		{"quarterly amortizes over 3", FrequencyQuarterly, "300", "100"},
		{"annual amortizes over 12", FrequencyAnnual, "1200", "100"},
		{"one time keeps amount", FrequencyOneTime, "500", "500"},
		{"variable keeps amount", FrequencyVariable, "75", "75"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := newTestRule(tt.frequency, tt.amount, start, end)
			got := rule.MonthlyAmount()
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("MonthlyAmount() = %s, want %s", got, tt.want)
			}
		})
	}
}
