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

// expenseRepository implements the adapter.ExpenseRepository interface.
type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository instance.
func NewExpenseRepository(db *gorm.DB) adapter.ExpenseRepository {
	return &expenseRepository{
		db: db,
	}
}

// Create creates a new expense in the database.
func (r *expenseRepository) Create(ctx context.Context, expense *entity.Expense) error {
	expenseModel := model.ExpenseFromEntity(expense)
	result := r.db.WithContext(ctx).Create(expenseModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByFilter retrieves expenses matching the filter, ordered by date.
func (r *expenseRepository) FindByFilter(ctx context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	query := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Where("user_id = ?", filter.UserID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}
	if filter.IsCredit != nil {
		query = query.Where("is_credit = ?", *filter.IsCredit)
	}
	if filter.SubscriptionLinked != nil {
		if *filter.SubscriptionLinked {
			query = query.Where("subscription_id IS NOT NULL")
		} else {
			query = query.Where("subscription_id IS NULL")
		}
	}
	if filter.OnlyWithRemaining {
		query = query.Where("remaining_amount > 0")
	}

	var expenseModels []model.ExpenseModel
	if err := query.Order("date ASC, created_at ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]*entity.Expense, len(expenseModels))
	for i, em := range expenseModels {
		expenses[i] = em.ToEntity()
	}
	return expenses, nil
}

// FindLatestInCreditGroup retrieves the highest-installment entry of a
// credit group.
func (r *expenseRepository) FindLatestInCreditGroup(ctx context.Context, userID, creditGroupID uuid.UUID) (*entity.Expense, error) {
	var expenseModel model.ExpenseModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND credit_group_id = ?", userID, creditGroupID).
		Order("current_installment DESC").
		First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// DistinctUserIDs returns every user that has at least one ledger entry.
func (r *expenseRepository) DistinctUserIDs(ctx context.Context) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID
	result := r.db.WithContext(ctx).
		Model(&model.ExpenseModel{}).
		Distinct("user_id").
		Pluck("user_id", &userIDs)
	if result.Error != nil {
		return nil, result.Error
	}
	return userIDs, nil
}
