package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// Summary holds the derived fields the rest of the application treats as
// ground truth. It is a pure function of the reconciled schedule and the
// payment ledger and is recomputed whenever either input changes; the engine
// caches nothing.
type Summary struct {
	PrincipalPaid       decimal.Decimal
	InterestPaid        decimal.Decimal
	ExtraPaid           decimal.Decimal
	CapitalizedInterest decimal.Decimal
	RemainingBalance    decimal.Decimal
	NextPaymentDate     time.Time
	MissedPayments      int
}

// Summarize derives the liability's summary from a reconciled schedule and
// its payment ledger. NextPaymentDate is the zero time when no entry remains
// scheduled. ExtraPaid reports every extra ever paid; the remaining balance
// subtracts only extras not yet folded into the principal.
func Summarize(l Liability, reconciled []AmortizationEntry, ledger []Payment) Summary {
	s := Summary{
		PrincipalPaid:       decimal.Zero,
		InterestPaid:        decimal.Zero,
		ExtraPaid:           decimal.Zero,
		CapitalizedInterest: decimal.Zero,
	}

	// Extras whose payments were folded into the principal by a schedule
	// regeneration are already reflected in the (reduced) principal; only
	// unfolded extras still reduce the balance here.
	extraOutstanding := decimal.Zero
	for _, p := range ledger {
		if !p.Status.Equal(valueobject.PaymentStatusCompleted) {
			continue
		}
		s.PrincipalPaid = s.PrincipalPaid.Add(p.PrincipalAmount)
		s.InterestPaid = s.InterestPaid.Add(p.InterestAmount)
		s.ExtraPaid = s.ExtraPaid.Add(p.ExtraPayment)
		if !p.IsFolded() {
			extraOutstanding = extraOutstanding.Add(p.ExtraPayment)
		}
	}

	for _, e := range reconciled {
		s.CapitalizedInterest = s.CapitalizedInterest.Add(e.CapitalizedInterest)
		if e.Status.Equal(valueobject.EntryStatusMissed) {
			s.MissedPayments++
		}
		if e.Status.Equal(valueobject.EntryStatusScheduled) && s.NextPaymentDate.IsZero() {
			s.NextPaymentDate = e.PaymentDate
		}
	}

	balance := l.principalAmount.
		Add(s.CapitalizedInterest).
		Sub(s.PrincipalPaid).
		Sub(extraOutstanding)
	if balance.IsNegative() {
		balance = decimal.Zero
	}
	s.RemainingBalance = balance

	return s
}
