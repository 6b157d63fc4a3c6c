// Package forecast contains the forecast engine use cases.
package forecast

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// ListSuggestionsInput represents the input for listing suggestions.
type ListSuggestionsInput struct {
	UserID uuid.UUID
}

// ListSuggestionsOutput represents the output of listing suggestions.
type ListSuggestionsOutput struct {
	Suggestions []*entity.ForecastRule
}

// ListSuggestionsUseCase lists the automatic suggestions for a user.
type ListSuggestionsUseCase struct {
	ruleRepo adapter.ForecastRuleRepository
}

// NewListSuggestionsUseCase creates a new ListSuggestionsUseCase instance.
func NewListSuggestionsUseCase(ruleRepo adapter.ForecastRuleRepository) *ListSuggestionsUseCase {
	return &ListSuggestionsUseCase{ruleRepo: ruleRepo}
}

// Execute retrieves the automatic suggestions for the user.
func (uc *ListSuggestionsUseCase) Execute(
	ctx context.Context,
	input ListSuggestionsInput,
) (*ListSuggestionsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}

	suggestions, err := uc.ruleRepo.FindSuggestionsByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	return &ListSuggestionsOutput{Suggestions: suggestions}, nil
}
