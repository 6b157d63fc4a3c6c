// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// ForecastRuleRepository defines the interface for forecast rule persistence.
type ForecastRuleRepository interface {
	// Create creates a new forecast rule in the database.
	Create(ctx context.Context, rule *entity.ForecastRule) error

	// Update updates an existing forecast rule.
	Update(ctx context.Context, rule *entity.ForecastRule) error

	// FindActiveByUser retrieves all active rules for a user.
	FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error)

	// FindSuggestionsByUser retrieves all automatic suggestions for a user.
	FindSuggestionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error)

	// FindByNaturalKey retrieves a rule by the (name, category, expense_type)
	// key used to deduplicate automatic suggestions. Returns nil when absent.
	FindByNaturalKey(ctx context.Context, userID uuid.UUID, name, category string, expenseType entity.ExpenseType) (*entity.ForecastRule, error)
}
