// Package forecast contains the forecast engine use cases.
package forecast

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// GenerateForecastsInput represents the input for forecast generation.
type GenerateForecastsInput struct {
	UserID        uuid.UUID
	MonthsBack    int
	MonthsForward int
}

// GenerateForecastsOutput represents the output of forecast generation.
type GenerateForecastsOutput struct {
	WindowStart     time.Time `json:"window_start"`
	WindowEnd       time.Time `json:"window_end"`
	MonthsGenerated int       `json:"months_generated"`
	FromCache       bool      `json:"from_cache"`
}

// GenerateForecastsUseCase drives the month-by-month forecast aggregation.
//
// For every month in [current - months_back, current + months_forward] it
// upserts exactly one MonthlyForecast row, choosing one of three branches:
// historical months get realized ledger totals, the current month gets an
// estimate-vs-actual pair, future months get projected contributions from
// subscriptions, credit installments and forecast rules.
//
// Regeneration is idempotent: the same ledger state always produces the
// same stored rows. A short-TTL cache marker suppresses recomputation on
// repeated dashboard loads; any cache failure degrades to recomputation.
type GenerateForecastsUseCase struct {
	expenseRepo  adapter.ExpenseRepository
	subRepo      adapter.SubscriptionRepository
	ruleRepo     adapter.ForecastRuleRepository
	forecastRepo adapter.MonthlyForecastRepository
	cache        adapter.ForecastCache
	cacheTTL     time.Duration
	now          func() time.Time
}

// NewGenerateForecastsUseCase creates a new GenerateForecastsUseCase instance.
func NewGenerateForecastsUseCase(
	expenseRepo adapter.ExpenseRepository,
	subRepo adapter.SubscriptionRepository,
	ruleRepo adapter.ForecastRuleRepository,
	forecastRepo adapter.MonthlyForecastRepository,
	cache adapter.ForecastCache,
	cacheTTL time.Duration,
) *GenerateForecastsUseCase {
	return &GenerateForecastsUseCase{
		expenseRepo:  expenseRepo,
		subRepo:      subRepo,
		ruleRepo:     ruleRepo,
		forecastRepo: forecastRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		now:          time.Now,
	}
}

// Execute generates forecast rows for the requested window.
func (uc *GenerateForecastsUseCase) Execute(
	ctx context.Context,
	input GenerateForecastsInput,
) (*GenerateForecastsOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	today := uc.now().UTC()
	currentMonth := monthStart(today)
	windowStart := addMonths(currentMonth, -input.MonthsBack)
	windowEnd := addMonths(currentMonth, input.MonthsForward)

	cacheKey := forecastCacheKey(input.UserID, input.MonthsBack, input.MonthsForward)
	if _, hit := uc.cache.Get(ctx, cacheKey); hit {
		return &GenerateForecastsOutput{
			WindowStart:     windowStart,
			WindowEnd:       windowEnd,
			MonthsGenerated: input.MonthsBack + input.MonthsForward + 1,
			FromCache:       true,
		}, nil
	}

	// Inputs shared by the current and future branches are loaded once for
	// the whole window.
	projection, err := uc.loadProjectionInputs(ctx, input.UserID, today)
	if err != nil {
		return nil, err
	}

	for i := -input.MonthsBack; i <= input.MonthsForward; i++ {
		month := addMonths(currentMonth, i)

		switch {
		case i < 0:
			err = uc.generateHistoricalMonth(ctx, input.UserID, month)
		case i == 0:
			err = uc.generateCurrentMonth(ctx, input.UserID, month, today, projection)
		default:
			err = uc.generateFutureMonth(ctx, input.UserID, month, currentMonth, projection)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to generate forecast for %s: %w", month.Format("2006-01"), err)
		}
	}

	uc.cache.Set(ctx, cacheKey, today.Format(time.RFC3339), uc.cacheTTL)

	return &GenerateForecastsOutput{
		WindowStart:     windowStart,
		WindowEnd:       windowEnd,
		MonthsGenerated: input.MonthsBack + input.MonthsForward + 1,
	}, nil
}

// projectionInputs holds the forward-looking data shared across months.
type projectionInputs struct {
	activeSubscriptions []*entity.Subscription
	activeRules         []*entity.ForecastRule
	ongoingCredits      []*entity.Expense
}

func (uc *GenerateForecastsUseCase) loadProjectionInputs(
	ctx context.Context,
	userID uuid.UUID,
	asOf time.Time,
) (*projectionInputs, error) {
	activeStatus := entity.SubscriptionStatusActive
	subscriptions, err := uc.subRepo.FindByUser(ctx, userID, &activeStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to load subscriptions: %w", err)
	}

	// A subscription past its end date no longer contributes even while its
	// status still reads active.
	active := subscriptions[:0]
	for _, sub := range subscriptions {
		if sub.IsActive(asOf) {
			active = append(active, sub)
		}
	}

	rules, err := uc.ruleRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load forecast rules: %w", err)
	}

	isCredit := true
	credits, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:            userID,
		IsCredit:          &isCredit,
		OnlyWithRemaining: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load credit entries: %w", err)
	}

	return &projectionInputs{
		activeSubscriptions: active,
		activeRules:         rules,
		ongoingCredits:      credits,
	}, nil
}

// generateHistoricalMonth fills a past month with realized ledger totals,
// partitioned into subscription charges, credit installments and everything
// else. No forecasting is involved.
func (uc *GenerateForecastsUseCase) generateHistoricalMonth(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
) error {
	from := month
	to := monthEnd(month)
	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    userID,
		StartDate: &from,
		EndDate:   &to,
	})
	if err != nil {
		return fmt.Errorf("failed to load ledger entries: %w", err)
	}

	subscriptions := decimal.Zero
	credits := decimal.Zero
	other := decimal.Zero
	for _, expense := range expenses {
		switch {
		case expense.IsSubscriptionLinked():
			subscriptions = subscriptions.Add(expense.Amount)
		case expense.IsCredit:
			credits = credits.Add(expense.Amount)
		default:
			other = other.Add(expense.Amount)
		}
	}

	return uc.upsert(ctx, userID, month, func(row *entity.MonthlyForecast) {
		row.ActualSubscriptions = subscriptions
		row.ActualCredits = credits
		row.ActualOtherExpenses = other
		row.TotalProjected = subscriptions.Add(credits).Add(other)
	})
}

// generateCurrentMonth stores realized spending so far next to the
// full-month estimate built from subscriptions, credit charges dated this
// month and the monthly equivalent of every active rule.
func (uc *GenerateForecastsUseCase) generateCurrentMonth(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
	today time.Time,
	projection *projectionInputs,
) error {
	from := month
	actualExpenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    userID,
		StartDate: &from,
		EndDate:   &today,
	})
	if err != nil {
		return fmt.Errorf("failed to load ledger entries: %w", err)
	}

	actual := decimal.Zero
	for _, expense := range actualExpenses {
		actual = actual.Add(expense.Amount)
	}

	estimated := decimal.Zero
	for _, sub := range projection.activeSubscriptions {
		estimated = estimated.Add(sub.MonthlyEquivalent())
	}

	creditsDue, err := uc.creditsDueInMonth(ctx, userID, month)
	if err != nil {
		return err
	}
	estimated = estimated.Add(creditsDue)

	for _, rule := range projection.activeRules {
		estimated = estimated.Add(rule.MonthlyAmount())
	}

	return uc.upsert(ctx, userID, month, func(row *entity.MonthlyForecast) {
		row.CurrentMonthEstimated = estimated
		row.CurrentMonthActual = actual
		row.TotalProjected = estimated
	})
}

// generateFutureMonth projects committed spending (subscriptions plus
// amortized credit installments) and estimated spending (rule trigger
// amounts) for a month ahead of the current one.
func (uc *GenerateForecastsUseCase) generateFutureMonth(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
	currentMonth time.Time,
	projection *projectionInputs,
) error {
	subscriptions := decimal.Zero
	for _, sub := range projection.activeSubscriptions {
		subscriptions = subscriptions.Add(sub.MonthlyEquivalent())
	}

	credits := creditAmountForMonth(projection.ongoingCredits, currentMonth, month)

	estimates := decimal.Zero
	for _, rule := range projection.activeRules {
		estimates = estimates.Add(rule.AmountForMonth(month.Year(), month.Month()))
	}

	return uc.upsert(ctx, userID, month, func(row *entity.MonthlyForecast) {
		row.ProjectedSubscriptions = subscriptions
		row.ProjectedCredits = credits
		row.ProjectedEstimates = estimates
		row.TotalProjected = subscriptions.Add(credits).Add(estimates)
	})
}

// creditsDueInMonth sums the credit installment charges dated inside the
// given month.
func (uc *GenerateForecastsUseCase) creditsDueInMonth(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
) (decimal.Decimal, error) {
	from := month
	to := monthEnd(month)
	isCredit := true
	credits, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:    userID,
		StartDate: &from,
		EndDate:   &to,
		IsCredit:  &isCredit,
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load credit charges: %w", err)
	}

	total := decimal.Zero
	for _, credit := range credits {
		total = total.Add(credit.Amount)
	}
	return total, nil
}

// upsert performs the get-or-create plus full field overwrite for one month.
// The row is reset before fill so a month that changes class between runs
// (future becoming current, current becoming historical) never keeps stale
// values from the previous class.
func (uc *GenerateForecastsUseCase) upsert(
	ctx context.Context,
	userID uuid.UUID,
	month time.Time,
	fill func(row *entity.MonthlyForecast),
) error {
	row, created, err := uc.forecastRepo.GetOrCreate(ctx, userID, month)
	if err != nil {
		return fmt.Errorf("failed to get or create forecast row: %w", err)
	}
	if created {
		slog.Debug("created forecast row",
			"user_id", userID,
			"month", month.Format("2006-01"),
		)
	}

	row.ActualSubscriptions = decimal.Zero
	row.ActualCredits = decimal.Zero
	row.ActualOtherExpenses = decimal.Zero
	row.CurrentMonthEstimated = decimal.Zero
	row.CurrentMonthActual = decimal.Zero
	row.ProjectedSubscriptions = decimal.Zero
	row.ProjectedCredits = decimal.Zero
	row.ProjectedEstimates = decimal.Zero
	row.TotalProjected = decimal.Zero
	fill(row)
	row.UpdatedAt = uc.now().UTC()

	if err := uc.forecastRepo.Save(ctx, row); err != nil {
		return fmt.Errorf("failed to save forecast row: %w", err)
	}
	return nil
}

// validateInput validates the input parameters.
func (uc *GenerateForecastsUseCase) validateInput(input GenerateForecastsInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}

	if input.MonthsBack < 0 || input.MonthsForward < 0 {
		return domainerror.NewForecastError(
			domainerror.ErrCodeInvalidWindow,
			"months_back and months_forward must not be negative",
			domainerror.ErrInvalidForecastWindow,
		)
	}

	return nil
}

func forecastCacheKey(userID uuid.UUID, monthsBack, monthsForward int) string {
	return fmt.Sprintf("forecasts:%s:%d:%d", userID, monthsBack, monthsForward)
}
