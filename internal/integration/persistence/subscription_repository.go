// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	"github.com/finance-tracker/forecast/internal/integration/persistence/model"
)

// subscriptionRepository implements the adapter.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance.
func NewSubscriptionRepository(db *gorm.DB) adapter.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create creates a new subscription in the database.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionModel := model.SubscriptionFromEntity(subscription)
	result := r.db.WithContext(ctx).Create(subscriptionModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByUser retrieves subscriptions for a user, optionally filtered by status.
func (r *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID, status *entity.SubscriptionStatus) ([]*entity.Subscription, error) {
	query := r.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("user_id = ?", userID)

	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	var subscriptionModels []model.SubscriptionModel
	if err := query.Order("start_date DESC").Find(&subscriptionModels).Error; err != nil {
		return nil, err
	}

	subscriptions := make([]*entity.Subscription, len(subscriptionModels))
	for i, sm := range subscriptionModels {
		subscriptions[i] = sm.ToEntity()
	}
	return subscriptions, nil
}
