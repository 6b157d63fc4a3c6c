// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// SubscriptionRepository defines the interface for subscription persistence.
type SubscriptionRepository interface {
	// Create creates a new subscription in the database.
	Create(ctx context.Context, subscription *entity.Subscription) error

	// FindByUser retrieves subscriptions for a user, optionally filtered by
	// status.
	FindByUser(ctx context.Context, userID uuid.UUID, status *entity.SubscriptionStatus) ([]*entity.Subscription, error)
}
