package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestCreditExpense(total string, installments, current int) *Expense {
	expense := NewExpense(
		uuid.New(),
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"Credit Purchase",
		decimal.RequireFromString(total).Div(decimal.NewFromInt(int64(installments))),
		"shopping",
	)
	totalAmount := decimal.RequireFromString(total)
	expense.IsCredit = true
	expense.TotalCreditAmount = &totalAmount
	expense.Installments = installments
	expense.CurrentInstallment = current
	return expense
}

func TestExpense_HasValidCreditTerms(t *testing.T) {
	t.Run("valid credit entry", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 2)
		if !expense.HasValidCreditTerms() {
			t.Error("expected valid credit terms")
		}
	})

	t.Run("non-credit entry", func(t *testing.T) {
		expense := NewExpense(uuid.New(), time.Now(), "Coffee", decimal.NewFromInt(5), "food")
		if expense.HasValidCreditTerms() {
			t.Error("expected non-credit entry to be invalid")
		}
	})

	t.Run("missing total amount", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 2)
		expense.TotalCreditAmount = nil
		if expense.HasValidCreditTerms() {
			t.Error("expected missing total to be invalid")
		}
	})

	t.Run("zero installments", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 2)
		expense.Installments = 0
		if expense.HasValidCreditTerms() {
			t.Error("expected zero installments to be invalid")
		}
	})

	t.Run("current installment beyond total", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 7)
		if expense.HasValidCreditTerms() {
			t.Error("expected current installment beyond total to be invalid")
		}
	})
}

func TestExpense_InstallmentAmount(t *testing.T) {
	t.Run("divides total by installments", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 2)
		want := decimal.NewFromInt(1000)
		if got := expense.InstallmentAmount(); !got.Equal(want) {
			t.Errorf("InstallmentAmount() = %s, want %s", got, want)
		}
	})

	t.Run("zero for malformed credit terms", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 2)
		expense.Installments = 0
		if got := expense.InstallmentAmount(); !got.IsZero() {
			t.Errorf("InstallmentAmount() = %s, want 0", got)
		}
	})
}

func TestExpense_RemainingInstallments(t *testing.T) {
	expense := newTestCreditExpense("6000", 6, 2)
	if got := expense.RemainingInstallments(); got != 4 {
		t.Errorf("RemainingInstallments() = %d, want 4", got)
	}

	last := newTestCreditExpense("6000", 6, 6)
	if got := last.RemainingInstallments(); got != 0 {
		t.Errorf("RemainingInstallments() = %d, want 0", got)
	}
	if !last.IsLastInstallment() {
		t.Error("expected last installment")
	}
}

func TestExpense_DeriveRemainingAmount(t *testing.T) {
	t.Run("first installment starts from purchase total", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 1)
		expense.DeriveRemainingAmount(nil)

		want := decimal.NewFromInt(5000)
		if expense.RemainingAmount == nil || !expense.RemainingAmount.Equal(want) {
			t.Errorf("RemainingAmount = %v, want %s", expense.RemainingAmount, want)
		}
	})

	t.Run("later installments subtract from previous balance", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 3)
		previous := decimal.NewFromInt(4000)
		expense.DeriveRemainingAmount(&previous)

		want := decimal.NewFromInt(3000)
		if expense.RemainingAmount == nil || !expense.RemainingAmount.Equal(want) {
			t.Errorf("RemainingAmount = %v, want %s", expense.RemainingAmount, want)
		}
	})

	t.Run("last installment reaches zero", func(t *testing.T) {
		expense := newTestCreditExpense("6000", 6, 6)
		previous := decimal.NewFromInt(1000)
		expense.DeriveRemainingAmount(&previous)

		if expense.RemainingAmount == nil || !expense.RemainingAmount.IsZero() {
			t.Errorf("RemainingAmount = %v, want 0", expense.RemainingAmount)
		}
		if !expense.IsFullyPaid() {
			t.Error("expected fully paid after last installment")
		}
	})

	t.Run("non-credit entry is untouched", func(t *testing.T) {
		expense := NewExpense(uuid.New(), time.Now(), "Coffee", decimal.NewFromInt(5), "food")
		expense.DeriveRemainingAmount(nil)
		if expense.RemainingAmount != nil {
			t.Error("expected RemainingAmount to stay nil for non-credit entry")
		}
	})
}

func TestExpense_IsSubscriptionLinked(t *testing.T) {
	expense := NewExpense(uuid.New(), time.Now(), "Streaming", decimal.NewFromInt(30), "entertainment")
	if expense.IsSubscriptionLinked() {
		t.Error("expected unlinked expense")
	}

	subscriptionID := uuid.New()
	expense.SubscriptionID = &subscriptionID
	if !expense.IsSubscriptionLinked() {
		t.Error("expected linked expense")
	}
}
