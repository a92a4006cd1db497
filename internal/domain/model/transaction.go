package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerTransaction is the read-only view of a ledger transaction a payment
// may be linked to. The liability engine only reads its amount, date and
// account for display; it never validates or mutates transactions.
type LedgerTransaction struct {
	ID          string
	AccountID   string
	Date        time.Time
	Amount      decimal.Decimal
	Description string
}
