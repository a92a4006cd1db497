package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/event"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Liability aggregate root
// ---------------------------------------------------------------------------

// Liability is an immutable aggregate describing a debt or receivable and its
// static amortization terms. Mutations return a new copy. The generated
// schedule is owned by the liability and regenerated, never mutated
// incrementally, whenever the static terms change.
type Liability struct {
	id                string
	userID            string
	name              string
	liabilityType     valueobject.LiabilityType
	direction         valueobject.Direction
	principalAmount   decimal.Decimal
	interestRate      decimal.Decimal
	startDate         time.Time
	endDate           time.Time
	compoundingPeriod valueobject.CompoundingPeriod
	paymentFrequency  valueobject.PaymentFrequency
	deferralType      valueobject.DeferralType
	deferralMonths    int
	paymentOverride   *decimal.Decimal
	accountID         string
	schedule          []AmortizationEntry
	version           int
	createdAt         time.Time
	updatedAt         time.Time
	domainEvents      []event.DomainEvent
}

// LiabilityTerms groups the static terms a caller supplies when creating or
// updating a liability. Enum fields arrive as raw strings and are validated
// into closed value objects here, at the data-model boundary.
type LiabilityTerms struct {
	Name              string
	LiabilityType     string
	Direction         string
	PrincipalAmount   decimal.Decimal
	InterestRate      decimal.Decimal
	StartDate         time.Time
	EndDate           time.Time
	CompoundingPeriod string
	PaymentFrequency  string
	DeferralType      string
	DeferralMonths    int
	PaymentAmount     *decimal.Decimal
	AccountID         string
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewLiability validates the terms, generates the amortization schedule and
// returns the aggregate with a LiabilityCreated event recorded.
func NewLiability(userID string, terms LiabilityTerms, now time.Time) (Liability, error) {
	l, err := buildLiability(uuid.New().String(), userID, terms, now)
	if err != nil {
		return Liability{}, err
	}

	l.version = 1
	l.createdAt = now
	l.updatedAt = now
	l.domainEvents = append(l.domainEvents, event.NewLiabilityCreated(
		l.id, userID, l.name, l.liabilityType.String(),
		l.principalAmount, l.interestRate, l.startDate, l.endDate,
	))
	return l, nil
}

// ReconstructLiability rebuilds a Liability aggregate from persistence.
func ReconstructLiability(
	id, userID, name string,
	liabilityType valueobject.LiabilityType,
	direction valueobject.Direction,
	principalAmount, interestRate decimal.Decimal,
	startDate, endDate time.Time,
	compoundingPeriod valueobject.CompoundingPeriod,
	paymentFrequency valueobject.PaymentFrequency,
	deferralType valueobject.DeferralType,
	deferralMonths int,
	paymentOverride *decimal.Decimal,
	accountID string,
	schedule []AmortizationEntry,
	version int,
	createdAt, updatedAt time.Time,
) Liability {
	return Liability{
		id:                id,
		userID:            userID,
		name:              name,
		liabilityType:     liabilityType,
		direction:         direction,
		principalAmount:   principalAmount,
		interestRate:      interestRate,
		startDate:         startDate,
		endDate:           endDate,
		compoundingPeriod: compoundingPeriod,
		paymentFrequency:  paymentFrequency,
		deferralType:      deferralType,
		deferralMonths:    deferralMonths,
		paymentOverride:   paymentOverride,
		accountID:         accountID,
		schedule:          schedule,
		version:           version,
		createdAt:         createdAt,
		updatedAt:         updatedAt,
	}
}

func buildLiability(id, userID string, terms LiabilityTerms, now time.Time) (Liability, error) {
	if userID == "" {
		return Liability{}, &valueobject.InvalidTermError{Reason: "user ID is required"}
	}
	if terms.Name == "" {
		return Liability{}, &valueobject.InvalidTermError{Reason: "name is required"}
	}
	if terms.PrincipalAmount.LessThanOrEqual(decimal.Zero) {
		return Liability{}, &valueobject.InvalidTermError{Reason: "principal amount must be positive"}
	}
	if terms.InterestRate.IsNegative() {
		return Liability{}, &valueobject.InvalidRateError{
			Reason: fmt.Sprintf("nominal annual rate must not be negative, got %s", terms.InterestRate),
		}
	}
	if !terms.EndDate.After(terms.StartDate) {
		return Liability{}, &valueobject.InvalidTermError{Reason: "end date must be after start date"}
	}

	liabilityType, err := valueobject.NewLiabilityType(terms.LiabilityType)
	if err != nil {
		return Liability{}, err
	}
	direction, err := valueobject.NewDirection(terms.Direction)
	if err != nil {
		return Liability{}, err
	}
	compounding, err := valueobject.NewCompoundingPeriod(terms.CompoundingPeriod)
	if err != nil {
		return Liability{}, err
	}
	frequency, err := valueobject.NewPaymentFrequency(terms.PaymentFrequency)
	if err != nil {
		return Liability{}, err
	}
	deferralType, err := valueobject.NewDeferralType(terms.DeferralType)
	if err != nil {
		return Liability{}, err
	}

	if terms.DeferralMonths < 0 {
		return Liability{}, &valueobject.InvalidTermError{Reason: "deferral period must not be negative"}
	}
	// A zero-month window behaves exactly like no deferral.
	if terms.DeferralMonths == 0 {
		deferralType = valueobject.DeferralNone
	}
	if !deferralType.Equal(valueobject.DeferralNone) && terms.DeferralMonths > monthsBetween(terms.StartDate, terms.EndDate) {
		return Liability{}, &valueobject.InvalidTermError{Reason: "deferral period exceeds the term length"}
	}

	if terms.PaymentAmount != nil && terms.PaymentAmount.LessThanOrEqual(decimal.Zero) {
		return Liability{}, &valueobject.InvalidTermError{Reason: "payment amount override must be positive"}
	}

	l := Liability{
		id:                id,
		userID:            userID,
		name:              terms.Name,
		liabilityType:     liabilityType,
		direction:         direction,
		principalAmount:   terms.PrincipalAmount,
		interestRate:      terms.InterestRate,
		startDate:         terms.StartDate,
		endDate:           terms.EndDate,
		compoundingPeriod: compounding,
		paymentFrequency:  frequency,
		deferralType:      deferralType,
		deferralMonths:    terms.DeferralMonths,
		paymentOverride:   terms.PaymentAmount,
		accountID:         terms.AccountID,
	}

	schedule, err := GenerateSchedule(l)
	if err != nil {
		return Liability{}, err
	}
	l.schedule = schedule
	return l, nil
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// UpdateTerms replaces the static terms and regenerates the schedule. The
// version is bumped so a stale concurrent update is rejected on save.
func (l Liability) UpdateTerms(terms LiabilityTerms, now time.Time) (Liability, error) {
	next, err := buildLiability(l.id, l.userID, terms, now)
	if err != nil {
		return l, err
	}

	next.version = l.version + 1
	next.createdAt = l.createdAt
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewLiabilityUpdated(
		l.id, l.userID, next.name, next.principalAmount, next.interestRate,
	))
	return next, nil
}

// ApplyExtraPrincipal folds extra payments into the opening principal and
// regenerates the schedule over the unchanged term, reducing future payment
// amounts. This is an explicit, caller-requested operation; reconciliation
// never triggers it implicitly.
func (l Liability) ApplyExtraPrincipal(extra decimal.Decimal, now time.Time) (Liability, error) {
	if extra.LessThanOrEqual(decimal.Zero) {
		return l, &valueobject.InvalidTermError{Reason: "extra principal must be positive"}
	}
	if extra.GreaterThanOrEqual(l.principalAmount) {
		return l, &valueobject.InvalidTermError{Reason: "extra principal exceeds the outstanding principal"}
	}

	next := l
	next.principalAmount = l.principalAmount.Sub(extra)
	schedule, err := GenerateSchedule(next)
	if err != nil {
		return l, err
	}
	next.schedule = schedule
	next.version = l.version + 1
	next.updatedAt = now
	next.domainEvents = copyEvents(l.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewScheduleRegenerated(
		l.id, l.userID, extra, next.principalAmount,
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (l Liability) ID() string     { return l.id }
func (l Liability) UserID() string { return l.userID }
func (l Liability) Name() string   { return l.name }

func (l Liability) LiabilityType() valueobject.LiabilityType { return l.liabilityType }
func (l Liability) Direction() valueobject.Direction         { return l.direction }
func (l Liability) PrincipalAmount() decimal.Decimal         { return l.principalAmount }
func (l Liability) InterestRate() decimal.Decimal            { return l.interestRate }
func (l Liability) StartDate() time.Time                     { return l.startDate }
func (l Liability) EndDate() time.Time                       { return l.endDate }

func (l Liability) CompoundingPeriod() valueobject.CompoundingPeriod { return l.compoundingPeriod }
func (l Liability) PaymentFrequency() valueobject.PaymentFrequency   { return l.paymentFrequency }
func (l Liability) DeferralType() valueobject.DeferralType           { return l.deferralType }
func (l Liability) DeferralMonths() int                              { return l.deferralMonths }

func (l Liability) AccountID() string                 { return l.accountID }
func (l Liability) Version() int                      { return l.version }
func (l Liability) CreatedAt() time.Time              { return l.createdAt }
func (l Liability) UpdatedAt() time.Time              { return l.updatedAt }
func (l Liability) DomainEvents() []event.DomainEvent { return l.domainEvents }

// PaymentOverride returns the fixed payment amount, or nil when the payment is
// computed by the schedule generator.
func (l Liability) PaymentOverride() *decimal.Decimal {
	if l.paymentOverride == nil {
		return nil
	}
	v := *l.paymentOverride
	return &v
}

// Schedule returns a defensive copy of the amortization schedule.
func (l Liability) Schedule() []AmortizationEntry {
	if l.schedule == nil {
		return nil
	}
	out := make([]AmortizationEntry, len(l.schedule))
	copy(out, l.schedule)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (l Liability) ClearEvents() Liability {
	next := l
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}

// monthsBetween counts whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if b.Day() < a.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
