// Package forecast contains the forecast engine use cases.
package forecast

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// defaultSuggestionMonths is the historical span analyzed when the caller
// does not specify one.
const defaultSuggestionMonths = 6

// suggestionNamePrefix prefixes the derived name of every automatic
// suggestion; together with category and expense type it forms the key that
// keeps re-runs from duplicating suggestions.
const suggestionNamePrefix = "Auto estimate - "

// GenerateSuggestionsInput represents the input for suggestion generation.
type GenerateSuggestionsInput struct {
	UserID     uuid.UUID
	MonthsBack int
}

// GenerateSuggestionsOutput represents the output of suggestion generation.
type GenerateSuggestionsOutput struct {
	Suggestions []*entity.ForecastRule
}

// GenerateSuggestionsUseCase derives inactive forecast-rule suggestions
// from the recent ledger: one-off spending (credit and subscription charges
// excluded) is grouped by category, categories with at least two entries are
// projected to a monthly average, and a confidence level is assigned from
// the sample size. Suggestions are upserted, never duplicated, and never
// activated automatically.
type GenerateSuggestionsUseCase struct {
	expenseRepo adapter.ExpenseRepository
	ruleRepo    adapter.ForecastRuleRepository
	now         func() time.Time
}

// NewGenerateSuggestionsUseCase creates a new GenerateSuggestionsUseCase instance.
func NewGenerateSuggestionsUseCase(
	expenseRepo adapter.ExpenseRepository,
	ruleRepo adapter.ForecastRuleRepository,
) *GenerateSuggestionsUseCase {
	return &GenerateSuggestionsUseCase{
		expenseRepo: expenseRepo,
		ruleRepo:    ruleRepo,
		now:         time.Now,
	}
}

// Execute analyzes recent spending and upserts automatic suggestions.
func (uc *GenerateSuggestionsUseCase) Execute(
	ctx context.Context,
	input GenerateSuggestionsInput,
) (*GenerateSuggestionsOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}
	if input.MonthsBack < 0 {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeInvalidSuggestionSpan,
			"months_back must not be negative",
			domainerror.ErrInvalidForecastWindow,
		)
	}

	monthsBack := input.MonthsBack
	if monthsBack == 0 {
		monthsBack = defaultSuggestionMonths
	}

	today := uc.now().UTC()
	start := today.AddDate(0, 0, -monthsBack*30)
	notCredit := false
	notLinked := false
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:             input.UserID,
		StartDate:          &start,
		EndDate:            &today,
		IsCredit:           &notCredit,
		SubscriptionLinked: &notLinked,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger entries: %w", err)
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	for _, expense := range expenses {
		totals[expense.Category] = totals[expense.Category].Add(expense.Amount)
		counts[expense.Category] = counts[expense.Category] + 1
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var suggestions []*entity.ForecastRule
	for _, category := range categories {
		count := counts[category]
		if count < 2 {
			continue
		}

		// Average entry projected to a full-year monthly rate.
		monthlyAverage := totals[category].
			Div(decimal.NewFromInt(int64(count))).
			Mul(decimal.NewFromInt(12)).
			Div(decimal.NewFromInt(int64(monthsBack)))

		suggestion, err := uc.upsertSuggestion(ctx, input.UserID, category, monthlyAverage, count, monthsBack, today)
		if err != nil {
			return nil, err
		}
		suggestions = append(suggestions, suggestion)
	}

	return &GenerateSuggestionsOutput{Suggestions: suggestions}, nil
}

func (uc *GenerateSuggestionsUseCase) upsertSuggestion(
	ctx context.Context,
	userID uuid.UUID,
	category string,
	amount decimal.Decimal,
	sampleCount int,
	monthsBack int,
	today time.Time,
) (*entity.ForecastRule, error) {
	name := suggestionNamePrefix + category
	expenseType := entity.ExpenseTypeForCategory(category)
	confidence := confidenceForSampleCount(sampleCount)

	existing, err := uc.ruleRepo.FindByNaturalKey(ctx, userID, name, category, expenseType)
	if err != nil {
		return nil, fmt.Errorf("failed to look up suggestion: %w", err)
	}

	if existing != nil {
		existing.Amount = amount
		existing.Confidence = confidence
		existing.SuggestedBasedOnMonths = monthsBack
		existing.UpdatedAt = today
		if err := uc.ruleRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("failed to update suggestion: %w", err)
		}
		return existing, nil
	}

	rule := entity.NewForecastRule(
		userID,
		name,
		amount,
		category,
		entity.FrequencyMonthly,
		today,
		today.AddDate(1, 0, 0),
	)
	rule.Confidence = confidence
	rule.IsActive = false // suggestions never auto-activate
	rule.IsAutomaticSuggestion = true
	rule.SuggestedBasedOnMonths = monthsBack

	if err := uc.ruleRepo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return rule, nil
}

// confidenceForSampleCount maps the number of historical entries backing a
// suggestion to a confidence level.
func confidenceForSampleCount(count int) entity.Confidence {
	switch {
	case count >= 5:
		return entity.ConfidenceHigh
	case count >= 3:
		return entity.ConfidenceMedium
	default:
		return entity.ConfidenceLow
	}
}
