package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

func newStoredRule(t *testing.T, repo interface {
	Create(ctx context.Context, rule *entity.ForecastRule) error
}, userID uuid.UUID, name, category string) *entity.ForecastRule {
	t.Helper()
	rule := entity.NewForecastRule(
		userID,
		name,
		decimal.NewFromInt(100),
		category,
		entity.FrequencyMonthly,
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	if err := repo.Create(context.Background(), rule); err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return rule
}

func TestForecastRuleRepository_FindActiveByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewForecastRuleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	newStoredRule(t, repo, userID, "Rent", "housing")
	inactive := newStoredRule(t, repo, userID, "Paused", "other")
	inactive.IsActive = false
	if err := repo.Update(ctx, inactive); err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	newStoredRule(t, repo, uuid.New(), "Foreign", "other")

	rules, err := repo.FindActiveByUser(ctx, userID)
	if err != nil {
		t.Fatalf("FindActiveByUser() error: %v", err)
	}
	if len(rules) != 1 || rules[0].Name != "Rent" {
		t.Fatalf("expected only the active Rent rule, got %d rules", len(rules))
	}
}

func TestForecastRuleRepository_FindSuggestionsByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewForecastRuleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	newStoredRule(t, repo, userID, "Rent", "housing")

	suggestion := entity.NewForecastRule(
		userID,
		"Auto estimate - Groceries",
		decimal.NewFromInt(800),
		"Groceries",
		entity.FrequencyMonthly,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	)
	suggestion.IsActive = false
	suggestion.IsAutomaticSuggestion = true
	suggestion.SuggestedBasedOnMonths = 6
	if err := repo.Create(ctx, suggestion); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	suggestions, err := repo.FindSuggestionsByUser(ctx, userID)
	if err != nil {
		t.Fatalf("FindSuggestionsByUser() error: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Name != "Auto estimate - Groceries" {
		t.Fatalf("expected only the automatic suggestion, got %d rules", len(suggestions))
	}
	if suggestions[0].SuggestedBasedOnMonths != 6 {
		t.Errorf("SuggestedBasedOnMonths = %d, want 6", suggestions[0].SuggestedBasedOnMonths)
	}
}

func TestForecastRuleRepository_FindByNaturalKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewForecastRuleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	stored := newStoredRule(t, repo, userID, "Auto estimate - Groceries", "Groceries")

	t.Run("finds the stored rule", func(t *testing.T) {
		found, err := repo.FindByNaturalKey(ctx, userID, stored.Name, stored.Category, stored.ExpenseType)
		if err != nil {
			t.Fatalf("FindByNaturalKey() error: %v", err)
		}
		if found == nil || found.ID != stored.ID {
			t.Fatal("expected to find the stored rule by natural key")
		}
	})

	t.Run("returns nil when absent", func(t *testing.T) {
		found, err := repo.FindByNaturalKey(ctx, userID, "Auto estimate - Fuel", "Fuel", entity.ExpenseTypeTransport)
		if err != nil {
			t.Fatalf("FindByNaturalKey() error: %v", err)
		}
		if found != nil {
			t.Error("expected nil for an absent natural key")
		}
	})
}

func TestForecastRuleRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := NewForecastRuleRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	rule := newStoredRule(t, repo, userID, "Auto estimate - Groceries", "Groceries")
	rule.Amount = decimal.NewFromInt(1200)
	rule.Confidence = entity.ConfidenceHigh
	if err := repo.Update(ctx, rule); err != nil {
		t.Fatalf("Update() error: %v", err)
	}

	found, err := repo.FindByNaturalKey(ctx, userID, rule.Name, rule.Category, rule.ExpenseType)
	if err != nil {
		t.Fatalf("FindByNaturalKey() error: %v", err)
	}
	if !found.Amount.Equal(decimal.NewFromInt(1200)) {
		t.Errorf("Amount = %s, want 1200", found.Amount)
	}
	if found.Confidence != entity.ConfidenceHigh {
		t.Errorf("Confidence = %s, want high", found.Confidence)
	}
}
