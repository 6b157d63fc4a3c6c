// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// ExpenseFilter defines filter options for querying ledger entries.
// Nil pointer fields are not applied.
type ExpenseFilter struct {
	UserID             uuid.UUID
	StartDate          *time.Time
	EndDate            *time.Time // inclusive
	IsCredit           *bool
	SubscriptionLinked *bool
	OnlyWithRemaining  bool // remaining_amount > 0
}

// ExpenseRepository defines the interface for ledger persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByFilter retrieves expenses matching the filter, ordered by date.
	FindByFilter(ctx context.Context, filter ExpenseFilter) ([]*entity.Expense, error)

	// FindLatestInCreditGroup retrieves the highest-installment expense of a
	// credit group, or nil when the group has no entries yet.
	FindLatestInCreditGroup(ctx context.Context, userID, creditGroupID uuid.UUID) (*entity.Expense, error)

	// DistinctUserIDs returns every user that has at least one ledger entry.
	DistinctUserIDs(ctx context.Context) ([]uuid.UUID, error)
}
