package forecast

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// fakeExpenseRepository is an in-memory adapter.ExpenseRepository that
// applies the same filter semantics as the database implementation.
type fakeExpenseRepository struct {
	expenses []*entity.Expense
	err      error
}

func (r *fakeExpenseRepository) Create(_ context.Context, expense *entity.Expense) error {
	if r.err != nil {
		return r.err
	}
	r.expenses = append(r.expenses, expense)
	return nil
}

func (r *fakeExpenseRepository) FindByFilter(_ context.Context, filter adapter.ExpenseFilter) ([]*entity.Expense, error) {
	if r.err != nil {
		return nil, r.err
	}

	var matched []*entity.Expense
	for _, e := range r.expenses {
		if e.UserID != filter.UserID {
			continue
		}
		if filter.StartDate != nil && e.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && e.Date.After(*filter.EndDate) {
			continue
		}
		if filter.IsCredit != nil && e.IsCredit != *filter.IsCredit {
			continue
		}
		if filter.SubscriptionLinked != nil && e.IsSubscriptionLinked() != *filter.SubscriptionLinked {
			continue
		}
		if filter.OnlyWithRemaining && (e.RemainingAmount == nil || !e.RemainingAmount.IsPositive()) {
			continue
		}
		matched = append(matched, e)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})
	return matched, nil
}

func (r *fakeExpenseRepository) FindLatestInCreditGroup(_ context.Context, userID, creditGroupID uuid.UUID) (*entity.Expense, error) {
	if r.err != nil {
		return nil, r.err
	}

	var latest *entity.Expense
	for _, e := range r.expenses {
		if e.UserID != userID || e.CreditGroupID == nil || *e.CreditGroupID != creditGroupID {
			continue
		}
		if latest == nil || e.CurrentInstallment > latest.CurrentInstallment {
			latest = e
		}
	}
	return latest, nil
}

func (r *fakeExpenseRepository) DistinctUserIDs(_ context.Context) ([]uuid.UUID, error) {
	if r.err != nil {
		return nil, r.err
	}

	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, e := range r.expenses {
		if !seen[e.UserID] {
			seen[e.UserID] = true
			ids = append(ids, e.UserID)
		}
	}
	return ids, nil
}

// fakeSubscriptionRepository is an in-memory adapter.SubscriptionRepository.
type fakeSubscriptionRepository struct {
	subscriptions []*entity.Subscription
	err           error
}

func (r *fakeSubscriptionRepository) Create(_ context.Context, subscription *entity.Subscription) error {
	if r.err != nil {
		return r.err
	}
	r.subscriptions = append(r.subscriptions, subscription)
	return nil
}

func (r *fakeSubscriptionRepository) FindByUser(_ context.Context, userID uuid.UUID, status *entity.SubscriptionStatus) ([]*entity.Subscription, error) {
	if r.err != nil {
		return nil, r.err
	}

	var matched []*entity.Subscription
	for _, s := range r.subscriptions {
		if s.UserID != userID {
			continue
		}
		if status != nil && s.Status != *status {
			continue
		}
		matched = append(matched, s)
	}
	return matched, nil
}

// fakeForecastRuleRepository is an in-memory adapter.ForecastRuleRepository.
type fakeForecastRuleRepository struct {
	rules []*entity.ForecastRule
	err   error
}

func (r *fakeForecastRuleRepository) Create(_ context.Context, rule *entity.ForecastRule) error {
	if r.err != nil {
		return r.err
	}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *fakeForecastRuleRepository) Update(_ context.Context, rule *entity.ForecastRule) error {
	if r.err != nil {
		return r.err
	}
	for i, existing := range r.rules {
		if existing.ID == rule.ID {
			r.rules[i] = rule
			return nil
		}
	}
	r.rules = append(r.rules, rule)
	return nil
}

func (r *fakeForecastRuleRepository) FindActiveByUser(_ context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error) {
	if r.err != nil {
		return nil, r.err
	}

	var matched []*entity.ForecastRule
	for _, rule := range r.rules {
		if rule.UserID == userID && rule.IsActive {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func (r *fakeForecastRuleRepository) FindSuggestionsByUser(_ context.Context, userID uuid.UUID) ([]*entity.ForecastRule, error) {
	if r.err != nil {
		return nil, r.err
	}

	var matched []*entity.ForecastRule
	for _, rule := range r.rules {
		if rule.UserID == userID && rule.IsAutomaticSuggestion {
			matched = append(matched, rule)
		}
	}
	return matched, nil
}

func (r *fakeForecastRuleRepository) FindByNaturalKey(_ context.Context, userID uuid.UUID, name, category string, expenseType entity.ExpenseType) (*entity.ForecastRule, error) {
	if r.err != nil {
		return nil, r.err
	}

	for _, rule := range r.rules {
		if rule.UserID == userID && rule.Name == name && rule.Category == category && rule.ExpenseType == expenseType {
			return rule, nil
		}
	}
	return nil, nil
}

// fakeMonthlyForecastRepository is an in-memory adapter.MonthlyForecastRepository
// keyed by (user, month).
type fakeMonthlyForecastRepository struct {
	rows map[string]*entity.MonthlyForecast
	err  error
}

func newFakeMonthlyForecastRepository() *fakeMonthlyForecastRepository {
	return &fakeMonthlyForecastRepository{
		rows: make(map[string]*entity.MonthlyForecast),
	}
}

func forecastRowKey(userID uuid.UUID, month time.Time) string {
	return userID.String() + ":" + month.Format("2006-01")
}

func (r *fakeMonthlyForecastRepository) GetOrCreate(_ context.Context, userID uuid.UUID, month time.Time) (*entity.MonthlyForecast, bool, error) {
	if r.err != nil {
		return nil, false, r.err
	}

	month = monthStart(month)
	key := forecastRowKey(userID, month)
	if row, ok := r.rows[key]; ok {
		return row, false, nil
	}

	row := entity.NewMonthlyForecast(userID, month)
	r.rows[key] = row
	return row, true, nil
}

func (r *fakeMonthlyForecastRepository) Save(_ context.Context, forecast *entity.MonthlyForecast) error {
	if r.err != nil {
		return r.err
	}
	r.rows[forecastRowKey(forecast.UserID, forecast.Month)] = forecast
	return nil
}

func (r *fakeMonthlyForecastRepository) FindByUserAndRange(_ context.Context, userID uuid.UUID, from, to time.Time) ([]*entity.MonthlyForecast, error) {
	if r.err != nil {
		return nil, r.err
	}

	var matched []*entity.MonthlyForecast
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}
		if row.Month.Before(monthStart(from)) || row.Month.After(monthStart(to)) {
			continue
		}
		matched = append(matched, row)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Month.Before(matched[j].Month)
	})
	return matched, nil
}

func (r *fakeMonthlyForecastRepository) row(userID uuid.UUID, month time.Time) *entity.MonthlyForecast {
	return r.rows[forecastRowKey(userID, monthStart(month))]
}

// fakeForecastCache is an in-memory adapter.ForecastCache. With down set it
// behaves like an unreachable backend: every Get misses and Set is dropped.
type fakeForecastCache struct {
	values map[string]string
	down   bool
	sets   int
}

func newFakeForecastCache() *fakeForecastCache {
	return &fakeForecastCache{values: make(map[string]string)}
}

func (c *fakeForecastCache) Get(_ context.Context, key string) (string, bool) {
	if c.down {
		return "", false
	}
	value, ok := c.values[key]
	return value, ok
}

func (c *fakeForecastCache) Set(_ context.Context, key, value string, _ time.Duration) {
	c.sets++
	if c.down {
		return
	}
	c.values[key] = value
}
