// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a single monetary event in the ledger: a one-off
// purchase, one installment of a credit purchase, or a subscription charge.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Date        time.Time
	Name        string
	Description string
	Amount      decimal.Decimal
	Category    string

	// Credit purchase fields. An expense row models one installment of the
	// purchase identified by CreditGroupID.
	IsCredit           bool
	TotalCreditAmount  *decimal.Decimal
	Installments       int
	CurrentInstallment int
	RemainingAmount    *decimal.Decimal
	CreditGroupID      *uuid.UUID

	// SubscriptionID links charges generated from a subscription.
	SubscriptionID *uuid.UUID

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(
	userID uuid.UUID,
	date time.Time,
	name string,
	amount decimal.Decimal,
	category string,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:           uuid.New(),
		UserID:       userID,
		Date:         date,
		Name:         name,
		Amount:       amount,
		Category:     category,
		Installments: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsSubscriptionLinked reports whether the expense was generated from a
// subscription.
func (e *Expense) IsSubscriptionLinked() bool {
	return e.SubscriptionID != nil
}

// HasValidCreditTerms reports whether the credit fields are usable for
// installment math. Entries flagged as credit but missing the total amount
// or carrying a zero installment count are malformed and must be skipped.
func (e *Expense) HasValidCreditTerms() bool {
	return e.IsCredit &&
		e.TotalCreditAmount != nil &&
		e.Installments >= 1 &&
		e.CurrentInstallment >= 0 &&
		e.CurrentInstallment <= e.Installments
}

// InstallmentAmount returns the amortized per-installment amount,
// total_credit_amount / installments. Zero for malformed credit terms.
func (e *Expense) InstallmentAmount() decimal.Decimal {
	if !e.HasValidCreditTerms() {
		return decimal.Zero
	}
	return e.TotalCreditAmount.Div(decimal.NewFromInt(int64(e.Installments)))
}

// RemainingInstallments returns how many installments are still unpaid.
func (e *Expense) RemainingInstallments() int {
	if !e.IsCredit {
		return 0
	}
	return e.Installments - e.CurrentInstallment
}

// IsLastInstallment reports whether this entry closes its credit group.
func (e *Expense) IsLastInstallment() bool {
	return e.IsCredit && e.CurrentInstallment == e.Installments
}

// IsFullyPaid reports whether the credit group has no remaining balance.
func (e *Expense) IsFullyPaid() bool {
	return e.RemainingAmount != nil && e.RemainingAmount.LessThanOrEqual(decimal.Zero)
}

// DeriveRemainingAmount fills RemainingAmount for a credit entry.
// The first installment starts from the purchase total; later installments
// subtract from the previous installment's remaining balance.
func (e *Expense) DeriveRemainingAmount(previous *decimal.Decimal) {
	if !e.IsCredit || e.TotalCreditAmount == nil {
		return
	}

	var remaining decimal.Decimal
	if e.CurrentInstallment <= 1 || previous == nil {
		remaining = e.TotalCreditAmount.Sub(e.Amount)
	} else {
		remaining = previous.Sub(e.Amount)
	}
	e.RemainingAmount = &remaining
}
