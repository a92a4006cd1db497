package event

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Liability events
// ---------------------------------------------------------------------------

// LiabilityCreated is raised when a new liability enters the system.
type LiabilityCreated struct {
	events.BaseEvent
	Name          string          `json:"name"`
	LiabilityType string          `json:"liability_type"`
	Principal     decimal.Decimal `json:"principal_amount"`
	InterestRate  decimal.Decimal `json:"interest_rate"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
}

func NewLiabilityCreated(
	liabilityID, userID, name, liabilityType string,
	principal, interestRate decimal.Decimal,
	startDate, endDate time.Time,
) LiabilityCreated {
	return LiabilityCreated{
		BaseEvent:     events.NewBaseEvent("liability.created", liabilityID, "Liability", userID),
		Name:          name,
		LiabilityType: liabilityType,
		Principal:     principal,
		InterestRate:  interestRate,
		StartDate:     startDate,
		EndDate:       endDate,
	}
}

// LiabilityUpdated is raised when a liability's static terms change and its
// schedule has been regenerated.
type LiabilityUpdated struct {
	events.BaseEvent
	Name         string          `json:"name"`
	Principal    decimal.Decimal `json:"principal_amount"`
	InterestRate decimal.Decimal `json:"interest_rate"`
}

func NewLiabilityUpdated(
	liabilityID, userID, name string,
	principal, interestRate decimal.Decimal,
) LiabilityUpdated {
	return LiabilityUpdated{
		BaseEvent:    events.NewBaseEvent("liability.updated", liabilityID, "Liability", userID),
		Name:         name,
		Principal:    principal,
		InterestRate: interestRate,
	}
}

// LiabilityDeleted is raised when a liability and its owned records are removed.
type LiabilityDeleted struct {
	events.BaseEvent
	Name string `json:"name"`
}

func NewLiabilityDeleted(liabilityID, userID, name string) LiabilityDeleted {
	return LiabilityDeleted{
		BaseEvent: events.NewBaseEvent("liability.deleted", liabilityID, "Liability", userID),
		Name:      name,
	}
}

// ScheduleRegenerated is raised when extra payments are explicitly folded into
// the opening principal and the schedule is regenerated.
type ScheduleRegenerated struct {
	events.BaseEvent
	ExtraApplied decimal.Decimal `json:"extra_applied"`
	NewPrincipal decimal.Decimal `json:"new_principal"`
}

func NewScheduleRegenerated(
	liabilityID, userID string,
	extraApplied, newPrincipal decimal.Decimal,
) ScheduleRegenerated {
	return ScheduleRegenerated{
		BaseEvent:    events.NewBaseEvent("liability.schedule.regenerated", liabilityID, "Liability", userID),
		ExtraApplied: extraApplied,
		NewPrincipal: newPrincipal,
	}
}

// ---------------------------------------------------------------------------
// Payment events
// ---------------------------------------------------------------------------

// PaymentRecorded is raised when a payment is recorded against a liability.
type PaymentRecorded struct {
	events.BaseEvent
	PaymentID       string          `json:"payment_id"`
	PaymentDate     time.Time       `json:"payment_date"`
	Amount          decimal.Decimal `json:"amount"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestAmount  decimal.Decimal `json:"interest_amount"`
	ExtraPayment    decimal.Decimal `json:"extra_payment"`
}

func NewPaymentRecorded(
	liabilityID, userID, paymentID string,
	paymentDate time.Time,
	amount, principalAmount, interestAmount, extraPayment decimal.Decimal,
) PaymentRecorded {
	return PaymentRecorded{
		BaseEvent:       events.NewBaseEvent("liability.payment.recorded", liabilityID, "Liability", userID),
		PaymentID:       paymentID,
		PaymentDate:     paymentDate,
		Amount:          amount,
		PrincipalAmount: principalAmount,
		InterestAmount:  interestAmount,
		ExtraPayment:    extraPayment,
	}
}

// PaymentDeleted is raised when a payment is removed after explicit user
// confirmation.
type PaymentDeleted struct {
	events.BaseEvent
	PaymentID string          `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewPaymentDeleted(liabilityID, userID, paymentID string, amount decimal.Decimal) PaymentDeleted {
	return PaymentDeleted{
		BaseEvent: events.NewBaseEvent("liability.payment.deleted", liabilityID, "Liability", userID),
		PaymentID: paymentID,
		Amount:    amount,
	}
}
