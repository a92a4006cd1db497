package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
)

func carLoanTerms() model.LiabilityTerms {
	// $12,000 at 6.00% nominal over 12 monthly payments.
	return model.LiabilityTerms{
		Name:              "Car loan",
		LiabilityType:     "STANDARD_LOAN",
		Direction:         "I_OWE",
		PrincipalAmount:   decimal.NewFromInt(12000),
		InterestRate:      decimal.NewFromFloat(0.06),
		StartDate:         time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		EndDate:           time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		CompoundingPeriod: "MONTHLY",
		PaymentFrequency:  "MONTHLY",
		DeferralType:      "NONE",
	}
}

func newLiability(t *testing.T, mutate func(*model.LiabilityTerms)) model.Liability {
	t.Helper()
	terms := carLoanTerms()
	if mutate != nil {
		mutate(&terms)
	}
	l, err := model.NewLiability("user-001", terms, terms.StartDate)
	require.NoError(t, err)
	return l
}

func sumPrincipal(schedule []model.AmortizationEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range schedule {
		total = total.Add(e.PrincipalAmount)
	}
	return total
}

func sumCapitalized(schedule []model.AmortizationEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range schedule {
		total = total.Add(e.CapitalizedInterest)
	}
	return total
}

func TestGenerateSchedule_StandardLoan(t *testing.T) {
	l := newLiability(t, nil)

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	// Level payment for $12,000 at 6% over 12 months is $1,032.80.
	first := schedule[0]
	assert.Equal(t, 1, first.PaymentNumber)
	assert.Equal(t, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC), first.PaymentDate)
	assert.True(t, decimal.NewFromFloat(1032.80).Equal(first.PaymentAmount),
		"first payment should be $1,032.80, got %s", first.PaymentAmount)

	// First month interest = 12000 * 0.005 = $60.00.
	assert.True(t, decimal.NewFromFloat(60.00).Equal(first.InterestAmount),
		"first interest should be $60.00, got %s", first.InterestAmount)
	assert.True(t, decimal.NewFromFloat(972.80).Equal(first.PrincipalAmount))

	// Final entry zeroes out exactly.
	last := schedule[11]
	assert.Equal(t, 12, last.PaymentNumber)
	assert.True(t, last.RemainingPrincipal.IsZero(),
		"final remaining principal should be zero, got %s", last.RemainingPrincipal)

	// Principal conservation: schedule principals sum to the opening balance.
	assert.True(t, sumPrincipal(schedule).Equal(decimal.NewFromInt(12000)),
		"total principal should equal $12,000, got %s", sumPrincipal(schedule))

	// Adjacent-entry invariant.
	prev := l.PrincipalAmount()
	for _, e := range schedule {
		expected := prev.Sub(e.PrincipalAmount).Add(e.CapitalizedInterest)
		assert.True(t, e.RemainingPrincipal.Equal(expected),
			"entry %d remaining principal mismatch", e.PaymentNumber)
		prev = e.RemainingPrincipal
	}
}

func TestGenerateSchedule_Deterministic(t *testing.T) {
	l := newLiability(t, nil)

	first, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	second, err := model.GenerateSchedule(l)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].PaymentDate, second[i].PaymentDate)
		assert.True(t, first[i].PaymentAmount.Equal(second[i].PaymentAmount))
		assert.True(t, first[i].RemainingPrincipal.Equal(second[i].RemainingPrincipal))
	}
}

func TestGenerateSchedule_ZeroRate(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.PrincipalAmount = decimal.NewFromInt(1200)
		terms.InterestRate = decimal.Zero
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, e := range schedule {
		assert.True(t, decimal.NewFromInt(100).Equal(e.PaymentAmount))
		assert.True(t, e.InterestAmount.IsZero())
	}
	assert.True(t, schedule[11].RemainingPrincipal.IsZero())
}

func TestGenerateSchedule_TotalDeferral(t *testing.T) {
	// $10,000 at 4% with a 6-month total deferral over a 24-month term.
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.LiabilityType = "TOTAL_DEFERRED_LOAN"
		terms.PrincipalAmount = decimal.NewFromInt(10000)
		terms.InterestRate = decimal.NewFromFloat(0.04)
		terms.EndDate = terms.StartDate.AddDate(2, 0, 0)
		terms.DeferralType = "TOTAL"
		terms.DeferralMonths = 6
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	// Deferred periods: no cash payment, interest capitalizes into the balance.
	balance := decimal.NewFromInt(10000)
	for _, e := range schedule[:6] {
		assert.True(t, e.IsDeferred, "entry %d should be deferred", e.PaymentNumber)
		assert.True(t, e.PaymentAmount.IsZero())
		assert.True(t, e.PrincipalAmount.IsZero())
		assert.True(t, e.CapitalizedInterest.GreaterThan(decimal.Zero))
		assert.True(t, e.RemainingPrincipal.GreaterThan(balance),
			"balance should grow during total deferral")
		balance = e.RemainingPrincipal
	}

	// Payment is recomputed over the 18 remaining periods and clears the
	// inflated balance by the final period.
	require.True(t, balance.GreaterThan(decimal.NewFromInt(10000)))
	for _, e := range schedule[6:] {
		assert.False(t, e.IsDeferred)
		assert.True(t, e.PaymentAmount.GreaterThan(decimal.Zero))
	}
	assert.True(t, schedule[23].RemainingPrincipal.IsZero())

	// Conservation: principal repaid equals opening balance plus capitalized
	// interest.
	expected := decimal.NewFromInt(10000).Add(sumCapitalized(schedule))
	assert.True(t, sumPrincipal(schedule).Equal(expected),
		"principal repaid should equal principal plus capitalized interest")
}

func TestGenerateSchedule_PartialDeferral(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.LiabilityType = "PARTIAL_DEFERRED_LOAN"
		terms.PrincipalAmount = decimal.NewFromInt(10000)
		terms.InterestRate = decimal.NewFromFloat(0.04)
		terms.EndDate = terms.StartDate.AddDate(2, 0, 0)
		terms.DeferralType = "PARTIAL"
		terms.DeferralMonths = 6
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.Len(t, schedule, 24)

	// Interest-only periods: the balance does not move.
	for _, e := range schedule[:6] {
		assert.True(t, e.IsDeferred)
		assert.True(t, e.PaymentAmount.Equal(e.InterestAmount))
		assert.True(t, e.PrincipalAmount.IsZero())
		assert.True(t, e.CapitalizedInterest.IsZero())
		assert.True(t, e.RemainingPrincipal.Equal(decimal.NewFromInt(10000)))
	}

	assert.True(t, schedule[23].RemainingPrincipal.IsZero())
	assert.True(t, sumPrincipal(schedule).Equal(decimal.NewFromInt(10000)))
}

func TestGenerateSchedule_InsufficientOverride(t *testing.T) {
	// A fixed payment too small to amortize the balance leaves a residual at
	// the final period instead of extending the schedule.
	override := decimal.NewFromInt(100)
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.PaymentAmount = &override
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	for _, e := range schedule {
		assert.True(t, decimal.NewFromInt(100).Equal(e.PaymentAmount))
	}
	assert.True(t, schedule[11].RemainingPrincipal.GreaterThan(decimal.Zero),
		"insufficient fixed payment should leave a residual balance")
}

func TestGenerateSchedule_WeeklyFrequency(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		terms.EndDate = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		terms.PaymentFrequency = "WEEKLY"
		terms.CompoundingPeriod = "DAILY"
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)

	// Weekly due dates strictly after Jan 1 and no later than Mar 1.
	require.Len(t, schedule, 8)
	assert.Equal(t, time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC), schedule[0].PaymentDate)
	assert.Equal(t, time.Date(2025, 2, 26, 0, 0, 0, 0, time.UTC), schedule[7].PaymentDate)
	assert.True(t, schedule[7].RemainingPrincipal.IsZero())
}

func TestGenerateSchedule_MonthEndAnchoring(t *testing.T) {
	l := newLiability(t, func(terms *model.LiabilityTerms) {
		terms.StartDate = time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)
		terms.EndDate = time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)
	})

	schedule, err := model.GenerateSchedule(l)
	require.NoError(t, err)
	require.NotEmpty(t, schedule)

	// Dates are anchored on the start date, so a short February does not
	// drag every later due date backwards.
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), schedule[0].PaymentDate)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), schedule[1].PaymentDate)
	assert.Equal(t, time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC), schedule[2].PaymentDate)
}
