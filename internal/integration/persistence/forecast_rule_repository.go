// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
)

// forecastRuleRepository implements the adapter.ForecastRuleRepository interface.
type forecastRuleRepository struct {
	db *gorm.DB
}

// NewForecastRuleRepository creates a new forecast rule repository instance.
func NewForecastRuleRepository(db *gorm.DB) adapter.ForecastRuleRepository {
	return &forecastRuleRepository{
		db: db,
	}
}

// Create creates a new forecast rule in the database.
func (r *forecastRuleRepository) Create(ctx context.Context, rule *entity.ForecastRule) error {
	ruleModel := model.ForecastRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Create(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Update updates an existing forecast rule.
func (r *forecastRuleRepository) Update(ctx context.Context, rule *entity.ForecastRule) error {
	ruleModel := model.ForecastRuleFromEntity(rule)
	result := r.db.WithContext(ctx).Save(ruleModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindActiveByUser retrieves all active rules for a user.
func (r *forecastRuleRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error) {
	return r.findByUser(ctx, "user_id = ? AND is_active = ?", userID, true)
}

// FindSuggestionsByUser retrieves all automatic suggestions for a user.
func (r *forecastRuleRepository) FindSuggestionsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error) {
	return r.findByUser(ctx, "user_id = ? AND is_automatic_suggestion = ?", userID, true)
}

// FindByNaturalKey retrieves a rule by the key used to deduplicate
// automatic suggestions.
func (r *forecastRuleRepository) FindByNaturalKey(ctx context.Context, userID uuid.UUID, name, category string, expenseType entity.ExpenseType) (*entity.ForecastRule, error) {
	var ruleModel model.ForecastRuleModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND name = ? AND category = ? AND expense_type = ?",
			userID, name, category, string(expenseType)).
		First(&ruleModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return ruleModel.ToEntity(), nil
}

func (r *forecastRuleRepository) findByUser(ctx context.Context, cond string, args ...interface{}) ([]*entity.ForecastRule, error) {
	var ruleModels []model.ForecastRuleModel
	result := r.db.WithContext(ctx).
		Where(cond, args...).
		Order("start_date ASC, name ASC").
		Find(&ruleModels)
	if result.Error != nil {
		return nil, result.Error
	}

	rules := make([]*entity.ForecastRule, len(ruleModels))
	for i, rm := range ruleModels {
		rules[i] = rm.ToEntity()
	}
	return rules, nil
}
