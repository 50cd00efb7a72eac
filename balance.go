package mudir

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Balance computes the net amount owed across a transaction history.
// Sign convention: DEBIT adds, CREDIT subtracts. A positive balance means
// the counterparty owes the shop ("you will get"); negative means the shop
// owes the counterparty ("you will give").
func Balance(transactions []Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == TransactionCredit {
			total = total.Sub(t.Amount)
		} else {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance returns the derived balance of this ledger entry.
func (e LedgerEntry) Balance() decimal.Decimal {
	return Balance(e.Transactions)
}

// BalanceText renders the balance the way the ledger screens word it.
func BalanceText(balance decimal.Decimal, currency string) string {
	switch {
	case balance.IsPositive():
		return fmt.Sprintf("You will get %s%s", currency, balance.StringFixed(2))
	case balance.IsNegative():
		return fmt.Sprintf("You will give %s%s", currency, balance.Abs().StringFixed(2))
	default:
		return "Settled"
	}
}
