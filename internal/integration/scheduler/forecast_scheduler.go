// Package scheduler runs periodic forecast regeneration.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/application/usecase/forecast"
)

// ForecastScheduler regenerates forecasts for every user with ledger data
// on a cron schedule, so dashboards stay warm without waiting for the first
// request of the day.
type ForecastScheduler struct {
	cron          *cron.Cron
	expenseRepo   adapter.ExpenseRepository
	generate      *forecast.GenerateForecastsUseCase
	spec          string
	monthsBack    int
	monthsForward int
}

// NewForecastScheduler creates a new ForecastScheduler instance.
func NewForecastScheduler(
	expenseRepo adapter.ExpenseRepository,
	generate *forecast.GenerateForecastsUseCase,
	spec string,
	monthsBack int,
	monthsForward int,
) *ForecastScheduler {
	return &ForecastScheduler{
		cron:          cron.New(),
		expenseRepo:   expenseRepo,
		generate:      generate,
		spec:          spec,
		monthsBack:    monthsBack,
		monthsForward: monthsForward,
	}
}

// Start registers the cron entry and starts the scheduler.
func (s *ForecastScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("forecast scheduler started", "spec", s.spec)
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (s *ForecastScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	slog.Info("forecast scheduler stopped")
}

// runOnce regenerates forecasts for all users. Per-user failures are logged
// and do not stop the sweep.
func (s *ForecastScheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	userIDs, err := s.expenseRepo.DistinctUserIDs(ctx)
	if err != nil {
		slog.Error("forecast sweep failed to list users", "error", err)
		return
	}

	generated := 0
	for _, userID := range userIDs {
		_, err := s.generate.Execute(ctx, forecast.GenerateForecastsInput{
			UserID:        userID,
			MonthsBack:    s.monthsBack,
			MonthsForward: s.monthsForward,
		})
		if err != nil {
			slog.Error("forecast sweep failed for user", "user_id", userID, "error", err)
			continue
		}
		generated++
	}

	slog.Info("forecast sweep completed", "users", len(userIDs), "generated", generated)
}
