// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// ListSubscriptionsInput represents the input for listing subscriptions.
type ListSubscriptionsInput struct {
	UserID uuid.UUID
	Status *entity.SubscriptionStatus
}

// SubscriptionWithSchedule pairs a subscription with its payment schedule
// state as of the listing time.
type SubscriptionWithSchedule struct {
	Subscription      *entity.Subscription
	MonthlyEquivalent string
	NextPaymentDate   *time.Time
	DueSoon           bool
	Overdue           bool
}

// ListSubscriptionsOutput represents the output of listing subscriptions.
type ListSubscriptionsOutput struct {
	Subscriptions []*SubscriptionWithSchedule
}

// ListSubscriptionsUseCase lists subscriptions annotated with next payment
// date and due-soon/overdue flags.
type ListSubscriptionsUseCase struct {
	subRepo adapter.SubscriptionRepository
	now     func() time.Time
}

// NewListSubscriptionsUseCase creates a new ListSubscriptionsUseCase instance.
func NewListSubscriptionsUseCase(subRepo adapter.SubscriptionRepository) *ListSubscriptionsUseCase {
	return &ListSubscriptionsUseCase{
		subRepo: subRepo,
		now:     time.Now,
	}
}

// Execute retrieves the user's subscriptions with schedule annotations.
func (uc *ListSubscriptionsUseCase) Execute(
	ctx context.Context,
	input ListSubscriptionsInput,
) (*ListSubscriptionsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}

	subscriptions, err := uc.subRepo.FindByUser(ctx, input.UserID, input.Status)
	if err != nil {
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	asOf := uc.now().UTC()
	result := make([]*SubscriptionWithSchedule, 0, len(subscriptions))
	for _, sub := range subscriptions {
		annotated := &SubscriptionWithSchedule{
			Subscription:      sub,
			MonthlyEquivalent: sub.MonthlyEquivalent().StringFixed(2),
			DueSoon:           sub.IsDueSoon(asOf),
			Overdue:           sub.IsOverdue(asOf),
		}
		if next := sub.NextPaymentDate(asOf); !next.IsZero() {
			annotated.NextPaymentDate = &next
		}
		result = append(result, annotated)
	}

	return &ListSubscriptionsOutput{Subscriptions: result}, nil
}
