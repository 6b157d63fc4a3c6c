package expense

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/application/adapter"
	domainerror "github.com/finance-tracker/forecast/internal/domain/error"
	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// fakeExpenseRepository is a minimal in-memory adapter.ExpenseRepository.
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
		matched = append(matched, e)
	}
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
	return nil, r.err
}

func validInput(userID uuid.UUID) CreateExpenseInput {
	return CreateExpenseInput{
		UserID:   userID,
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Name:     "Groceries",
		Amount:   decimal.NewFromInt(120),
		Category: "food",
	}
}

func TestCreateExpense(t *testing.T) {
	t.Run("creates a plain entry", func(t *testing.T) {
		repo := &fakeExpenseRepository{}
		useCase := NewCreateExpenseUseCase(repo)

		output, err := useCase.Execute(context.Background(), validInput(uuid.New()))
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		if output.Expense.Name != "Groceries" {
			t.Errorf("Name = %q, want Groceries", output.Expense.Name)
		}
		if output.Expense.IsCredit {
			t.Error("expected non-credit entry")
		}
		if len(repo.expenses) != 1 {
			t.Errorf("stored %d entries, want 1", len(repo.expenses))
		}
	})

	t.Run("missing user", func(t *testing.T) {
		useCase := NewCreateExpenseUseCase(&fakeExpenseRepository{})
		input := validInput(uuid.Nil)

		_, err := useCase.Execute(context.Background(), input)
		var forecastErr *domainerror.ForecastError
		if !errors.As(err, &forecastErr) || forecastErr.Code != domainerror.ErrCodeMissingUser {
			t.Fatalf("expected missing-user error, got %v", err)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		useCase := NewCreateExpenseUseCase(&fakeExpenseRepository{})
		input := validInput(uuid.New())
		input.Name = ""

		_, err := useCase.Execute(context.Background(), input)
		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeMissingExpenseFields {
			t.Fatalf("expected missing-fields error, got %v", err)
		}
	})

	t.Run("credit entry without total amount", func(t *testing.T) {
		useCase := NewCreateExpenseUseCase(&fakeExpenseRepository{})
		input := validInput(uuid.New())
		input.IsCredit = true
		input.Installments = 6
		input.CurrentInstallment = 1

		_, err := useCase.Execute(context.Background(), input)
		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeInvalidCreditTerms {
			t.Fatalf("expected invalid-credit-terms error, got %v", err)
		}
	})

	t.Run("credit entry with zero installments", func(t *testing.T) {
		useCase := NewCreateExpenseUseCase(&fakeExpenseRepository{})
		input := validInput(uuid.New())
		total := decimal.NewFromInt(6000)
		input.IsCredit = true
		input.TotalCreditAmount = &total
		input.Installments = 0

		_, err := useCase.Execute(context.Background(), input)
		var expenseErr *domainerror.ExpenseError
		if !errors.As(err, &expenseErr) || expenseErr.Code != domainerror.ErrCodeInvalidCreditTerms {
			t.Fatalf("expected invalid-credit-terms error, got %v", err)
		}
	})
}

func TestCreateExpense_CreditRemainingAmount(t *testing.T) {
	userID := uuid.New()
	groupID := uuid.New()
	total := decimal.NewFromInt(6000)

	creditInput := func(current int) CreateExpenseInput {
		input := validInput(userID)
		input.Name = "Laptop"
		input.Amount = decimal.NewFromInt(1000)
		input.IsCredit = true
		input.TotalCreditAmount = &total
		input.Installments = 6
		input.CurrentInstallment = current
		input.CreditGroupID = &groupID
		return input
	}

	repo := &fakeExpenseRepository{}
	useCase := NewCreateExpenseUseCase(repo)

	t.Run("first installment starts from purchase total", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), creditInput(1))
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		want := decimal.NewFromInt(5000)
		if output.Expense.RemainingAmount == nil || !output.Expense.RemainingAmount.Equal(want) {
			t.Errorf("RemainingAmount = %v, want %s", output.Expense.RemainingAmount, want)
		}
	})

	t.Run("second installment subtracts from previous balance", func(t *testing.T) {
		output, err := useCase.Execute(context.Background(), creditInput(2))
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}

		want := decimal.NewFromInt(4000)
		if output.Expense.RemainingAmount == nil || !output.Expense.RemainingAmount.Equal(want) {
			t.Errorf("RemainingAmount = %v, want %s", output.Expense.RemainingAmount, want)
		}
	})
}

func TestListExpenses(t *testing.T) {
	userID := uuid.New()
	repo := &fakeExpenseRepository{}

	plain := entity.NewExpense(userID, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), "Coffee", decimal.NewFromInt(5), "food")
	credit := entity.NewExpense(userID, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), "Laptop", decimal.NewFromInt(1000), "tech")
	credit.IsCredit = true
	old := entity.NewExpense(userID, time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC), "Old", decimal.NewFromInt(10), "food")
	repo.expenses = []*entity.Expense{plain, credit, old}

	useCase := NewListExpensesUseCase(repo)

	t.Run("filters by date range", func(t *testing.T) {
		start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
		output, err := useCase.Execute(context.Background(), ListExpensesInput{
			UserID:    userID,
			StartDate: &start,
			EndDate:   &end,
		})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if len(output.Expenses) != 2 {
			t.Errorf("got %d entries, want 2", len(output.Expenses))
		}
	})

	t.Run("filters by credit flag", func(t *testing.T) {
		isCredit := true
		output, err := useCase.Execute(context.Background(), ListExpensesInput{
			UserID:   userID,
			IsCredit: &isCredit,
		})
		if err != nil {
			t.Fatalf("Execute() error: %v", err)
		}
		if len(output.Expenses) != 1 || output.Expenses[0].Name != "Laptop" {
			t.Errorf("expected only the credit entry, got %d entries", len(output.Expenses))
		}
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := useCase.Execute(context.Background(), ListExpensesInput{})
		var forecastErr *domainerror.ForecastError
		if !errors.As(err, &forecastErr) || forecastErr.Code != domainerror.ErrCodeMissingUser {
			t.Fatalf("expected missing-user error, got %v", err)
		}
	})
}
