// Package subscription contains subscription-related use cases.
package subscription

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// CreateSubscriptionInput represents the input for creating a subscription.
type CreateSubscriptionInput struct {
	UserID       uuid.UUID
	Name         string
	Amount       decimal.Decimal
	Category     string
	Frequency    entity.Frequency
	StartDate    time.Time
	EndDate      *time.Time
	ReminderDays *int
}

// CreateSubscriptionOutput represents the output of creating a subscription.
type CreateSubscriptionOutput struct {
	Subscription *entity.Subscription
}

// CreateSubscriptionUseCase handles subscription creation.
type CreateSubscriptionUseCase struct {
	subRepo adapter.SubscriptionRepository
}

// NewCreateSubscriptionUseCase creates a new CreateSubscriptionUseCase instance.
func NewCreateSubscriptionUseCase(subRepo adapter.SubscriptionRepository) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{subRepo: subRepo}
}

// Execute creates a new subscription.
func (uc *CreateSubscriptionUseCase) Execute(
	ctx context.Context,
	input CreateSubscriptionInput,
) (*CreateSubscriptionOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	subscription := entity.NewSubscription(
		input.UserID,
		input.Name,
		input.Amount,
		input.Category,
		input.Frequency,
		input.StartDate,
		input.EndDate,
	)
	if input.ReminderDays != nil {
		subscription.ReminderDays = *input.ReminderDays
	}

	if err := uc.subRepo.Create(ctx, subscription); err != nil {
		return nil, fmt.Errorf("failed to create subscription: %w", err)
	}

	return &CreateSubscriptionOutput{Subscription: subscription}, nil
}

// validateInput validates the input parameters.
func (uc *CreateSubscriptionUseCase) validateInput(input CreateSubscriptionInput) error {
	if input.Name == "" || !input.Amount.IsPositive() || input.StartDate.IsZero() {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeMissingSubscriptionFields,
			"name, amount, frequency and start_date are required",
			domainerror.ErrMissingSubscriptionFields,
		)
	}

	if !input.Frequency.IsPeriodic() {
		return domainerror.NewSubscriptionError(
			domainerror.ErrCodeInvalidFrequency,
			"frequency must be: monthly, quarterly, biannual or annual",
			domainerror.ErrInvalidSubscriptionFrequency,
		)
	}

	return nil
}
