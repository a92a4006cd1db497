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

func TestNewPayment(t *testing.T) {
	now := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)

	t.Run("valid payment", func(t *testing.T) {
		p, err := model.NewPayment(
			"liability-001", now,
			decimal.NewFromFloat(1032.80),
			decimal.NewFromFloat(972.80), decimal.NewFromInt(60), decimal.Zero,
			valueobject.PaymentStatusCompleted, "tx-001", now,
		)
		require.NoError(t, err)

		assert.NotEmpty(t, p.ID)
		assert.Equal(t, "liability-001", p.LiabilityID)
		assert.Equal(t, "tx-001", p.TransactionID)
		assert.True(t, p.Status.Equal(valueobject.PaymentStatusCompleted))
		assert.Equal(t, now, p.CreatedAt)
	})

	t.Run("status defaults to completed", func(t *testing.T) {
		p, err := model.NewPayment(
			"liability-001", now,
			decimal.NewFromInt(500),
			decimal.Zero, decimal.Zero, decimal.Zero,
			valueobject.PaymentStatus{}, "", now,
		)
		require.NoError(t, err)
		assert.True(t, p.Status.Equal(valueobject.PaymentStatusCompleted))
	})

	t.Run("unset components skip the ledger check", func(t *testing.T) {
		_, err := model.NewPayment(
			"liability-001", now,
			decimal.NewFromInt(500),
			decimal.Zero, decimal.Zero, decimal.Zero,
			valueobject.PaymentStatusCompleted, "", now,
		)
		require.NoError(t, err)
	})

	t.Run("component mismatch beyond tolerance", func(t *testing.T) {
		_, err := model.NewPayment(
			"liability-001", now,
			decimal.NewFromInt(1000),
			decimal.NewFromInt(900), decimal.NewFromInt(60), decimal.Zero,
			valueobject.PaymentStatusCompleted, "", now,
		)
		var ledgerErr *valueobject.InconsistentLedgerError
		require.ErrorAs(t, err, &ledgerErr)
		assert.Contains(t, ledgerErr.Reason, "do not add up")
	})

	t.Run("component mismatch within tolerance is accepted", func(t *testing.T) {
		_, err := model.NewPayment(
			"liability-001", now,
			decimal.NewFromFloat(1000.00),
			decimal.NewFromFloat(939.99), decimal.NewFromInt(60), decimal.Zero,
			valueobject.PaymentStatusCompleted, "", now,
		)
		require.NoError(t, err)
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name        string
			liabilityID string
			date        time.Time
			amount      decimal.Decimal
			principal   decimal.Decimal
			reason      string
		}{
			{
				name:      "missing liability ID",
				date:      now,
				amount:    decimal.NewFromInt(100),
				principal: decimal.NewFromInt(100),
				reason:    "liability ID is required",
			},
			{
				name:        "zero payment date",
				liabilityID: "liability-001",
				amount:      decimal.NewFromInt(100),
				principal:   decimal.NewFromInt(100),
				reason:      "payment date is required",
			},
			{
				name:        "non-positive amount",
				liabilityID: "liability-001",
				date:        now,
				amount:      decimal.Zero,
				reason:      "payment amount must be positive",
			},
			{
				name:        "negative component",
				liabilityID: "liability-001",
				date:        now,
				amount:      decimal.NewFromInt(100),
				principal:   decimal.NewFromInt(-100),
				reason:      "components must not be negative",
			},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := model.NewPayment(
					tc.liabilityID, tc.date,
					tc.amount, tc.principal, decimal.Zero, decimal.Zero,
					valueobject.PaymentStatusCompleted, "", now,
				)
				var ledgerErr *valueobject.InconsistentLedgerError
				require.ErrorAs(t, err, &ledgerErr)
				assert.Contains(t, ledgerErr.Reason, tc.reason)
			})
		}
	})
}

func TestPayment_MarkFolded(t *testing.T) {
	now := time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)
	p, err := model.NewPayment(
		"liability-001", now,
		decimal.NewFromInt(500),
		decimal.Zero, decimal.Zero, decimal.NewFromInt(500),
		valueobject.PaymentStatusCompleted, "", now,
	)
	require.NoError(t, err)
	require.False(t, p.IsFolded())

	foldedAt := now.AddDate(0, 1, 0)
	folded := p.MarkFolded(foldedAt)

	assert.True(t, folded.IsFolded())
	require.NotNil(t, folded.FoldedAt)
	assert.Equal(t, foldedAt, *folded.FoldedAt)
	assert.Equal(t, foldedAt, folded.UpdatedAt)
	assert.False(t, p.IsFolded(), "the original payment is untouched")
}
