// Package expense contains ledger-related use cases.
package expense

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

// CreateExpenseInput represents the input for creating a ledger entry.
type CreateExpenseInput struct {
	UserID             uuid.UUID
	Date               time.Time
	Name               string
	Description        string
	Amount             decimal.Decimal
	Category           string
	IsCredit           bool
	TotalCreditAmount  *decimal.Decimal
	Installments       int
	CurrentInstallment int
	CreditGroupID      *uuid.UUID
	SubscriptionID     *uuid.UUID
}

// CreateExpenseOutput represents the output of creating a ledger entry.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles ledger writes, including the remaining-amount
// bookkeeping for credit installments.
type CreateExpenseUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{expenseRepo: expenseRepo}
}

// Execute creates a new ledger entry.
func (uc *CreateExpenseUseCase) Execute(
	ctx context.Context,
	input CreateExpenseInput,
) (*CreateExpenseOutput, error) {
	if err := uc.validateInput(input); err != nil {
		return nil, err
	}

	exp := entity.NewExpense(input.UserID, input.Date, input.Name, input.Amount, input.Category)
	exp.Description = input.Description
	exp.SubscriptionID = input.SubscriptionID

	if input.IsCredit {
		exp.IsCredit = true
		exp.TotalCreditAmount = input.TotalCreditAmount
		exp.Installments = input.Installments
		exp.CurrentInstallment = input.CurrentInstallment
		exp.CreditGroupID = input.CreditGroupID

		if err := uc.deriveRemainingAmount(ctx, exp); err != nil {
			return nil, err
		}
	}

	if err := uc.expenseRepo.Create(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	return &CreateExpenseOutput{Expense: exp}, nil
}

// deriveRemainingAmount fills the entry's remaining balance from the latest
// installment already recorded for its credit group.
func (uc *CreateExpenseUseCase) deriveRemainingAmount(ctx context.Context, exp *entity.Expense) error {
	var previous *decimal.Decimal
	if exp.CreditGroupID != nil {
		latest, err := uc.expenseRepo.FindLatestInCreditGroup(ctx, exp.UserID, *exp.CreditGroupID)
		if err != nil {
			return fmt.Errorf("failed to load credit group: %w", err)
		}
		if latest != nil {
			previous = latest.RemainingAmount
		}
	}

	exp.DeriveRemainingAmount(previous)
	return nil
}

// validateInput validates the input parameters.
func (uc *CreateExpenseUseCase) validateInput(input CreateExpenseInput) error {
	if input.UserID == uuid.Nil {
		return domainerror.NewForecastError(
			domainerror.ErrCodeMissingUser,
			"user is required",
			domainerror.ErrMissingUser,
		)
	}

	if input.Name == "" || input.Date.IsZero() || !input.Amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeMissingExpenseFields,
			"name, amount and date are required",
			domainerror.ErrMissingExpenseFields,
		)
	}

	if input.IsCredit {
		if input.TotalCreditAmount == nil || input.Installments < 1 ||
			input.CurrentInstallment < 0 || input.CurrentInstallment > input.Installments {
			return domainerror.NewExpenseError(
				domainerror.ErrCodeInvalidCreditTerms,
				"credit expenses require total_credit_amount and installments >= 1",
				domainerror.ErrInvalidCreditTerms,
			)
		}
	}

	return nil
}
