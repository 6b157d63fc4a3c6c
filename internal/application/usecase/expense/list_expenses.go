// Package expense contains ledger-related use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	"github.com/finance-tracker/forecast/internal/domain/entity"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
)

// ListExpensesInput represents the input for listing ledger entries.
type ListExpensesInput struct {
	UserID             uuid.UUID
	StartDate          *time.Time
	EndDate            *time.Time
	IsCredit           *bool
	SubscriptionLinked *bool
}

// ListExpensesOutput represents the output of listing ledger entries.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
}

// ListExpensesUseCase lists ledger entries for a user.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute retrieves ledger entries matching the filter.
func (uc *ListExpensesUseCase) Execute(
	ctx context.Context,
	input ListExpensesInput,
) (*ListExpensesOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}

	expenses, err := uc.expenseRepo.FindByFilter(ctx, adapter.ExpenseFilter{
		UserID:             input.UserID,
		StartDate:          input.StartDate,
		EndDate:            input.EndDate,
		IsCredit:           input.IsCredit,
		SubscriptionLinked: input.SubscriptionLinked,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	return &ListExpensesOutput{Expenses: expenses}, nil
}
