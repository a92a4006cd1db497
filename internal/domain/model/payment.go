package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// Payment is an actual recorded payment event against a liability. Payments
// are append-mostly: once created they are only changed by correction edits
// that the reconciler re-folds into totals, and deletion always requires an
// explicit user confirmation.
type Payment struct {
	ID              string
	LiabilityID     string
	TransactionID   string
	PaymentDate     time.Time
	Amount          decimal.Decimal
	PrincipalAmount decimal.Decimal
	InterestAmount  decimal.Decimal
	ExtraPayment    decimal.Decimal
	Status          valueobject.PaymentStatus
	// FoldedAt is set once the extra component has been folded into the
	// liability's principal by an explicit schedule regeneration. A folded
	// extra no longer reduces the outstanding balance on its own and is
	// never folded twice.
	FoldedAt  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPayment validates and creates a payment record. The principal, interest
// and extra components must add up to the paid amount within one minor unit
// when any of them is set.
func NewPayment(
	liabilityID string,
	paymentDate time.Time,
	amount, principalAmount, interestAmount, extraPayment decimal.Decimal,
	status valueobject.PaymentStatus,
	transactionID string,
	now time.Time,
) (Payment, error) {
	if liabilityID == "" {
		return Payment{}, &valueobject.InconsistentLedgerError{Reason: "liability ID is required"}
	}
	if paymentDate.IsZero() {
		return Payment{}, &valueobject.InconsistentLedgerError{Reason: "payment date is required"}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return Payment{}, &valueobject.InconsistentLedgerError{Reason: "payment amount must be positive"}
	}
	if principalAmount.IsNegative() || interestAmount.IsNegative() || extraPayment.IsNegative() {
		return Payment{}, &valueobject.InconsistentLedgerError{Reason: "payment components must not be negative"}
	}
	if status.IsZero() {
		status = valueobject.PaymentStatusCompleted
	}

	components := principalAmount.Add(interestAmount).Add(extraPayment)
	if !components.IsZero() && components.Sub(amount).Abs().GreaterThan(RoundingTolerance) {
		return Payment{}, &valueobject.InconsistentLedgerError{
			Reason: "principal, interest and extra components do not add up to the payment amount",
		}
	}

	return Payment{
		ID:              uuid.New().String(),
		LiabilityID:     liabilityID,
		TransactionID:   transactionID,
		PaymentDate:     paymentDate,
		Amount:          amount,
		PrincipalAmount: principalAmount,
		InterestAmount:  interestAmount,
		ExtraPayment:    extraPayment,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// MarkFolded returns a copy stamped as folded into the principal.
func (p Payment) MarkFolded(now time.Time) Payment {
	folded := now
	p.FoldedAt = &folded
	p.UpdatedAt = now
	return p
}

// IsFolded reports whether the extra component has already been folded into
// the principal.
func (p Payment) IsFolded() bool { return p.FoldedAt != nil }
