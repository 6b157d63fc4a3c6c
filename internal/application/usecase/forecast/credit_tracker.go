// Package forecast contains the forecast engine use cases.
package forecast

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/forecast/internal/domain/entity"
)

// creditAmountForMonth returns the total installment obligation that the
// given in-flight credit entries place on the target month.
//
// Installments are assumed to land one per calendar month with no gaps,
// starting at the anchor month: a credit with R remaining installments
// contributes its amortized amount to the R months at offsets 0..R-1 from
// the anchor. Entries with malformed credit terms or no remaining balance
// contribute nothing.
func creditAmountForMonth(credits []*entity.Expense, anchorMonth, targetMonth time.Time) decimal.Decimal {
	total := decimal.Zero
	offset := monthsBetween(monthStart(anchorMonth), monthStart(targetMonth))

	for _, credit := range credits {
		if !credit.HasValidCreditTerms() || credit.IsFullyPaid() {
			continue
		}

		remaining := credit.RemainingInstallments()
		if remaining <= 0 {
			continue
		}

		if offset >= 0 && offset < remaining {
			total = total.Add(credit.InstallmentAmount())
		}
	}

	return total
}
