package model

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// Reconcile merges the recorded payment ledger into the theoretical schedule,
// assigning each entry a status as of now:
//
//   - PAID: completed payments dated within the entry's window cover the
//     entry's payment amount within one minor unit.
//   - PARTIAL: nonzero coverage short of the payment amount. The shortfall is
//     tracked through the status only; the schedule itself is never mutated
//     retroactively.
//   - MISSED: the due date has passed with nothing recorded. The grace
//     boundary is strict: due date plus zero days.
//   - SCHEDULED: the due date is in the future, or today with no payment yet.
//
// An entry's window is the half-open interval from the previous due date
// (exclusive) to its own due date (inclusive); the first window opens at the
// liability's start date. Extra payment components accumulate on the covering
// entry but never shift later entries: folding them into the balance is a
// separate, explicit regeneration.
//
// Reconcile returns a new slice and leaves both inputs untouched.
func Reconcile(l Liability, schedule []AmortizationEntry, ledger []Payment, now time.Time) ([]AmortizationEntry, error) {
	if err := validateLedger(l, ledger); err != nil {
		return nil, err
	}

	sorted := make([]Payment, len(ledger))
	copy(sorted, ledger)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PaymentDate.Before(sorted[j].PaymentDate)
	})

	out := make([]AmortizationEntry, len(schedule))
	copy(out, schedule)

	windowStart := l.startDate
	for i := range out {
		entry := &out[i]
		covered := decimal.Zero
		extra := decimal.Zero

		for _, p := range sorted {
			if !p.Status.Equal(valueobject.PaymentStatusCompleted) {
				continue
			}
			// The first window includes the start date itself; later windows
			// open just after the previous due date.
			inWindow := p.PaymentDate.After(windowStart) || (i == 0 && p.PaymentDate.Equal(windowStart))
			if !inWindow || p.PaymentDate.After(entry.PaymentDate) {
				continue
			}
			covered = covered.Add(p.Amount.Sub(p.ExtraPayment))
			extra = extra.Add(p.ExtraPayment)
		}

		entry.ExtraPayment = extra
		entry.Status = entryStatus(entry.PaymentAmount, covered, entry.PaymentDate, now)
		windowStart = entry.PaymentDate
	}

	return out, nil
}

func entryStatus(due, covered decimal.Decimal, dueDate, now time.Time) valueobject.EntryStatus {
	shortfall := due.Sub(covered)
	switch {
	case shortfall.LessThanOrEqual(RoundingTolerance):
		// Zero-amount entries (total deferral) owe nothing and are settled by
		// their due date passing.
		if due.IsZero() && now.Before(dueDate) {
			return valueobject.EntryStatusScheduled
		}
		return valueobject.EntryStatusPaid
	case covered.GreaterThan(decimal.Zero):
		return valueobject.EntryStatusPartial
	case dueDate.Before(now):
		return valueobject.EntryStatusMissed
	default:
		return valueobject.EntryStatusScheduled
	}
}

func validateLedger(l Liability, ledger []Payment) error {
	seen := make(map[string]struct{}, len(ledger))
	for _, p := range ledger {
		if p.LiabilityID != l.id {
			return &valueobject.InconsistentLedgerError{
				Reason: fmt.Sprintf("payment %s belongs to liability %s, not %s", p.ID, p.LiabilityID, l.id),
			}
		}
		if p.PaymentDate.Before(l.startDate) {
			return &valueobject.InconsistentLedgerError{
				Reason: fmt.Sprintf("payment %s is dated %s, before the liability start date %s",
					p.ID, p.PaymentDate.Format(time.DateOnly), l.startDate.Format(time.DateOnly)),
			}
		}
		if _, dup := seen[p.ID]; dup {
			return &valueobject.InconsistentLedgerError{
				Reason: fmt.Sprintf("duplicate payment ID %s", p.ID),
			}
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}
