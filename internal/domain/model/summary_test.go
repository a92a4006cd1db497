package model_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

func TestSummarize(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()
	firstDue := schedule[0].PaymentDate

	t.Run("nothing recorded", func(t *testing.T) {
		reconciled, err := model.Reconcile(l, schedule, nil, l.StartDate())
		require.NoError(t, err)

		s := model.Summarize(l, reconciled, nil)
		assert.True(t, s.PrincipalPaid.IsZero())
		assert.True(t, s.InterestPaid.IsZero())
		assert.True(t, s.RemainingBalance.Equal(l.PrincipalAmount()),
			"untouched liability should owe the full principal")
		assert.Equal(t, firstDue, s.NextPaymentDate)
		assert.Zero(t, s.MissedPayments)
	})

	t.Run("completed payments fold into the totals", func(t *testing.T) {
		extra := decimal.NewFromInt(100)
		p, err := model.NewPayment(
			l.ID(), firstDue,
			decimal.NewFromFloat(1132.80),
			decimal.NewFromFloat(972.80), decimal.NewFromInt(60), extra,
			valueobject.PaymentStatusCompleted, "", firstDue,
		)
		require.NoError(t, err)
		ledger := []model.Payment{p}

		reconciled, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
		require.NoError(t, err)

		s := model.Summarize(l, reconciled, ledger)
		assert.True(t, s.PrincipalPaid.Equal(decimal.NewFromFloat(972.80)))
		assert.True(t, s.InterestPaid.Equal(decimal.NewFromInt(60)))
		assert.True(t, s.ExtraPaid.Equal(extra))
		// 12000 - 972.80 - 100.00
		assert.True(t, s.RemainingBalance.Equal(decimal.NewFromFloat(10927.20)),
			"remaining balance should be %s, got %s", "10927.20", s.RemainingBalance)
		assert.Equal(t, schedule[1].PaymentDate, s.NextPaymentDate)
	})

	t.Run("folded extras no longer reduce the balance", func(t *testing.T) {
		extra := decimal.NewFromInt(100)
		p, err := model.NewPayment(
			l.ID(), firstDue,
			decimal.NewFromFloat(1132.80),
			decimal.NewFromFloat(972.80), decimal.NewFromInt(60), extra,
			valueobject.PaymentStatusCompleted, "", firstDue,
		)
		require.NoError(t, err)
		ledger := []model.Payment{p.MarkFolded(firstDue)}

		reconciled, err := model.Reconcile(l, schedule, ledger, firstDue.AddDate(0, 0, 1))
		require.NoError(t, err)

		s := model.Summarize(l, reconciled, ledger)
		assert.True(t, s.ExtraPaid.Equal(extra), "folded extras still report as paid")
		// 12000 - 972.80; the extra is already inside the principal.
		assert.True(t, s.RemainingBalance.Equal(decimal.NewFromFloat(11027.20)),
			"remaining balance should be %s, got %s", "11027.20", s.RemainingBalance)
	})

	t.Run("pending payments are excluded", func(t *testing.T) {
		p, err := model.NewPayment(
			l.ID(), firstDue,
			decimal.NewFromFloat(1032.80), decimal.Zero, decimal.Zero, decimal.Zero,
			valueobject.PaymentStatusPending, "", firstDue,
		)
		require.NoError(t, err)
		ledger := []model.Payment{p}

		reconciled, err := model.Reconcile(l, schedule, ledger, l.StartDate())
		require.NoError(t, err)

		s := model.Summarize(l, reconciled, ledger)
		assert.True(t, s.PrincipalPaid.IsZero())
		assert.True(t, s.RemainingBalance.Equal(l.PrincipalAmount()))
	})

	t.Run("missed entries are counted", func(t *testing.T) {
		asOf := schedule[2].PaymentDate.AddDate(0, 0, 1)
		reconciled, err := model.Reconcile(l, schedule, nil, asOf)
		require.NoError(t, err)

		s := model.Summarize(l, reconciled, nil)
		assert.Equal(t, 3, s.MissedPayments)
		assert.Equal(t, schedule[3].PaymentDate, s.NextPaymentDate)
	})
}

func TestSummarize_CapitalizedInterest(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.LiabilityType = "TOTAL_DEFERRED_LOAN"
		terms.PrincipalAmount = decimal.NewFromInt(10000)
		terms.InterestRate = decimal.NewFromFloat(0.04)
		terms.EndDate = terms.StartDate.AddDate(2, 0, 0)
		terms.DeferralType = "TOTAL"
		terms.DeferralMonths = 6
	})
	schedule := l.Schedule()

	reconciled, err := model.Reconcile(l, schedule, nil, l.StartDate())
	require.NoError(t, err)

	s := model.Summarize(l, reconciled, nil)
	assert.True(t, s.CapitalizedInterest.Equal(sumCapitalized(schedule)))
	assert.True(t, s.CapitalizedInterest.GreaterThan(decimal.Zero))

	// Capitalized interest inflates the balance above the opening principal.
	expected := decimal.NewFromInt(10000).Add(s.CapitalizedInterest)
	assert.True(t, s.RemainingBalance.Equal(expected))
}

func TestSummarize_BalanceFloorsAtZero(t *testing.T) {
	l := newLiability(t, nil)
	schedule := l.Schedule()

	// Overpay the whole principal and then some.
	p, err := model.NewPayment(
		l.ID(), schedule[0].PaymentDate,
		decimal.NewFromInt(13000),
		decimal.NewFromInt(12000), decimal.NewFromInt(60), decimal.NewFromInt(940),
		valueobject.PaymentStatusCompleted, "", schedule[0].PaymentDate,
	)
	require.NoError(t, err)
	ledger := []model.Payment{p}

	reconciled, err := model.Reconcile(l, schedule, ledger, schedule[0].PaymentDate)
	require.NoError(t, err)

	s := model.Summarize(l, reconciled, ledger)
	assert.True(t, s.RemainingBalance.IsZero(),
		"balance floors at zero, got %s", s.RemainingBalance)
}
