package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// recordedPayment builds a completed payment whose components reconcile: the
// principal slice absorbs whatever the extra component does not.
func recordedPayment(t *testing.T, l model.Liability, date time.Time, amount, extra decimal.Decimal) model.Payment {
	t.Helper()
	p, err := model.NewPayment(
		l.ID(), date,
		amount, amount.Sub(extra), decimal.Zero, extra,
		valueobject.PaymentStatusCompleted, "", date,
	)
	require.NoError(t, err)
	return p
}

func TestReconcile_Statuses(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()
	require.Len(t, schedule, 12)

	firstDue := schedule[0].PaymentDate  // 2025-02-15
	secondDue := schedule[1].PaymentDate // 2025-03-15

	t.Run("exact payment marks the entry paid", func(t *testing.T) {
		ledger := []model.Payment{
			recordedPayment(t, l, firstDue, schedule[0].PaymentAmount, decimal.Zero),
		}
		now := firstDue.AddDate(0, 0, 1)

		out, err := model.Reconcile(l, schedule, ledger, now)
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
		assert.True(t, out[1].Status.Equal(valueobject.EntryStatusScheduled))
	})

	t.Run("partial coverage marks the entry partial", func(t *testing.T) {
		ledger := []model.Payment{
			recordedPayment(t, l, firstDue, decimal.NewFromInt(500), decimal.Zero),
		}
		out, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPartial))
	})

	t.Run("past due with nothing recorded is missed", func(t *testing.T) {
		out, err := model.Reconcile(l, schedule, nil, secondDue.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusMissed))
		assert.True(t, out[1].Status.Equal(valueobject.EntryStatusMissed))
		assert.True(t, out[2].Status.Equal(valueobject.EntryStatusScheduled))
	})

	t.Run("grace is strict: due today is still scheduled", func(t *testing.T) {
		out, err := model.Reconcile(l, schedule, nil, firstDue)
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusScheduled))
	})

	t.Run("payment within tolerance is paid", func(t *testing.T) {
		short := schedule[0].PaymentAmount.Sub(decimal.NewFromFloat(0.01))
		ledger := []model.Payment{recordedPayment(t, l, firstDue, short, decimal.Zero)}

		out, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
	})
}

func TestReconcile_Windows(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()

	t.Run("payment on the start date falls in the first window", func(t *testing.T) {
		ledger := []model.Payment{
			recordedPayment(t, l, l.StartDate(), schedule[0].PaymentAmount, decimal.Zero),
		}
		out, err := model.Reconcile(l, schedule, ledger, l.StartDate().AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
	})

	t.Run("payments accumulate within one window", func(t *testing.T) {
		mid := l.StartDate().AddDate(0, 0, 10)
		half := schedule[0].PaymentAmount.Div(decimal.NewFromInt(2)).Round(2)
		ledger := []model.Payment{
			recordedPayment(t, l, mid, half, decimal.Zero),
			recordedPayment(t, l, schedule[0].PaymentDate, schedule[0].PaymentAmount.Sub(half), decimal.Zero),
		}
		out, err := model.Reconcile(l, schedule, ledger, schedule[0].PaymentDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
	})

	t.Run("payment after the due date covers the next entry", func(t *testing.T) {
		late := schedule[0].PaymentDate.AddDate(0, 0, 5)
		ledger := []model.Payment{
			recordedPayment(t, l, late, schedule[1].PaymentAmount, decimal.Zero),
		}
		out, err := model.Reconcile(l, schedule, ledger, schedule[1].PaymentDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusMissed))
		assert.True(t, out[1].Status.Equal(valueobject.EntryStatusPaid))
	})
}

func TestReconcile_ExtraPayments(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()
	firstDue := schedule[0].PaymentDate

	extra := decimal.NewFromInt(100)
	ledger := []model.Payment{
		recordedPayment(t, l, firstDue, schedule[0].PaymentAmount.Add(extra), extra),
	}
	out, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
	require.NoError(t, err)

	// The extra component rides on the covering entry; only the scheduled
	// portion counts towards coverage.
	assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
	assert.True(t, out[0].ExtraPayment.Equal(extra))

	// Later entries are untouched: folding extras into the balance is an
	// explicit regeneration, never a reconciliation side effect.
	for i := 1; i < len(out); i++ {
		assert.True(t, out[i].PaymentAmount.Equal(schedule[i].PaymentAmount))
		assert.True(t, out[i].RemainingPrincipal.Equal(schedule[i].RemainingPrincipal))
	}
}

func TestReconcile_IgnoresPendingPayments(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()
	firstDue := schedule[0].PaymentDate

	pending, err := model.NewPayment(
		l.ID(), firstDue,
		schedule[0].PaymentAmount, decimal.Zero, decimal.Zero, decimal.Zero,
		valueobject.PaymentStatusPending, "", firstDue,
	)
	require.NoError(t, err)

	out, err := model.Reconcile(l, schedule, []model.Payment{pending}, firstDue.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.True(t, out[0].Status.Equal(valueobject.EntryStatusMissed),
		"a pending payment must not count as coverage")
}

func TestReconcile_ZeroAmountDeferralEntries(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.LiabilityType = "TOTAL_DEFERRED_LOAN"
		terms.EndDate = terms.StartDate.AddDate(2, 0, 0)
		terms.DeferralType = "TOTAL"
		terms.DeferralMonths = 6
	})
	schedule := l.Schedule()
	require.True(t, schedule[0].PaymentAmount.IsZero())

	t.Run("settled once due", func(t *testing.T) {
		out, err := model.Reconcile(l, schedule, nil, schedule[0].PaymentDate.AddDate(0, 0, 1))
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusPaid))
	})

	t.Run("scheduled while in the future", func(t *testing.T) {
		out, err := model.Reconcile(l, schedule, nil, l.StartDate())
		require.NoError(t, err)
		assert.True(t, out[0].Status.Equal(valueobject.EntryStatusScheduled))
	})
}

func TestReconcile_LedgerValidation(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()

	t.Run("payment before the start date", func(t *testing.T) {
		p := recordedPayment(t, l, l.StartDate(), decimal.NewFromInt(100), decimal.Zero)
		p.PaymentDate = l.StartDate().AddDate(0, 0, -1)

		_, err := model.Reconcile(l, schedule, []model.Payment{p}, time.Now().UTC())
		var ledgerErr *valueobject.InconsistentLedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Contains(t, ledgerErr.Reason, "before the liability start date")
	})

	t.Run("payment belonging to another liability", func(t *testing.T) {
		p := recordedPayment(t, l, l.StartDate(), decimal.NewFromInt(100), decimal.Zero)
		p.LiabilityID = "someone-else"

		_, err := model.Reconcile(l, schedule, []model.Payment{p}, time.Now().UTC())
		var ledgerErr *valueobject.InconsistentLedgerError
		require.ErrorAs(t, err, &ledgerErr)
	})

	t.Run("duplicate payment IDs", func(t *testing.T) {
		p := recordedPayment(t, l, l.StartDate(), decimal.NewFromInt(100), decimal.Zero)

		_, err := model.Reconcile(l, schedule, []model.Payment{p, p}, time.Now().UTC())
		var ledgerErr *valueobject.InconsistentLedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Contains(t, ledgerErr.Reason, "duplicate payment ID")
	})
}

func TestReconcile_InputsUntouched(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()
	firstDue := schedule[0].PaymentDate
	ledger := []model.Payment{
		recordedPayment(t, l, firstDue, schedule[0].PaymentAmount, decimal.Zero),
	}

	_, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.True(t, schedule[0].Status.Equal(valueobject.EntryStatusScheduled),
		"reconciliation must not mutate the input schedule")
	assert.True(t, schedule[0].ExtraPayment.IsZero())
}
