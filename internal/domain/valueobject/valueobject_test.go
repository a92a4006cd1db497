package valueobject_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

func TestCompoundingPeriod(t *testing.T) {
	cases := map[string]int{
		"DAILY":     365,
		"MONTHLY":   12,
		"QUARTERLY": 4,
		"ANNUALLY":  1,
	}
	for raw, periods := range cases {
		c, err := valueobject.NewCompoundingPeriod(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, c.String())
		assert.Equal(t, periods, c.PeriodsPerYear())
	}

	_, err := valueobject.NewCompoundingPeriod("HOURLY")
	var termErr *valueobject.InvalidTermError
	require.ErrorAs(t, err, &termErr)

	assert.True(t, valueobject.CompoundingPeriod{}.IsZero())
	assert.Zero(t, valueobject.CompoundingPeriod{}.PeriodsPerYear())
}

func TestPaymentFrequency(t *testing.T) {
	cases := map[string]int{
		"WEEKLY":    52,
		"BI_WEEKLY": 26,
		"MONTHLY":   12,
		"QUARTERLY": 4,
		"ANNUALLY":  1,
	}
	for raw, periods := range cases {
		f, err := valueobject.NewPaymentFrequency(raw)
		require.NoError(t, err)
		assert.Equal(t, periods, f.PeriodsPerYear())
	}

	_, err := valueobject.NewPaymentFrequency("SEMI_MONTHLY")
	var termErr *valueobject.InvalidTermError
	require.ErrorAs(t, err, &termErr)
}

func TestPaymentFrequency_Next(t *testing.T) {
	anchor := time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, anchor.AddDate(0, 0, 7), valueobject.FrequencyWeekly.Next(anchor))
	assert.Equal(t, anchor.AddDate(0, 0, 14), valueobject.FrequencyBiWeekly.Next(anchor))
	assert.Equal(t, anchor.AddDate(1, 0, 0), valueobject.FrequencyAnnually.Next(anchor))

	// Month-end dates normalize forward rather than clamping.
	assert.Equal(t, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
		valueobject.FrequencyMonthly.Next(anchor))
}

func TestDirection(t *testing.T) {
	iOwe, err := valueobject.NewDirection("I_OWE")
	require.NoError(t, err)
	assert.Equal(t, -1, iOwe.Sign())

	theyOwe, err := valueobject.NewDirection("THEY_OWE")
	require.NoError(t, err)
	assert.Equal(t, 1, theyOwe.Sign())

	_, err = valueobject.NewDirection("WE_OWE")
	var termErr *valueobject.InvalidTermError
	require.ErrorAs(t, err, &termErr)
}

func TestLiabilityType(t *testing.T) {
	for _, raw := range []string{
		"STANDARD_LOAN", "PARTIAL_DEFERRED_LOAN", "TOTAL_DEFERRED_LOAN",
		"MORTGAGE", "CREDIT_CARD", "LINE_OF_CREDIT", "OTHER",
	} {
		v, err := valueobject.NewLiabilityType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, v.String())
	}

	_, err := valueobject.NewLiabilityType("CAR_LEASE")
	var termErr *valueobject.InvalidTermError
	require.ErrorAs(t, err, &termErr)
	assert.Contains(t, termErr.Reason, "invalid liability type")
}

func TestEntryStatus(t *testing.T) {
	for _, raw := range []string{"SCHEDULED", "PAID", "MISSED", "PARTIAL"} {
		s, err := valueobject.NewEntryStatus(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, s.String())
	}

	_, err := valueobject.NewEntryStatus("OVERDUE")
	assert.Error(t, err)
}

func TestPaymentStatus(t *testing.T) {
	completed, err := valueobject.NewPaymentStatus("COMPLETED")
	require.NoError(t, err)
	assert.True(t, completed.Equal(valueobject.PaymentStatusCompleted))

	pending, err := valueobject.NewPaymentStatus("PENDING")
	require.NoError(t, err)
	assert.True(t, pending.Equal(valueobject.PaymentStatusPending))
	assert.False(t, pending.Equal(completed))

	_, err = valueobject.NewPaymentStatus("CANCELLED")
	assert.Error(t, err)
}

func TestDeferralType(t *testing.T) {
	for _, raw := range []string{"NONE", "PARTIAL", "TOTAL"} {
		d, err := valueobject.NewDeferralType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, d.String())
	}

	_, err := valueobject.NewDeferralType("GRACE")
	var termErr *valueobject.InvalidTermError
	require.ErrorAs(t, err, &termErr)
}
