package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// LiabilityType – immutable value object
// ---------------------------------------------------------------------------

// LiabilityType classifies a liability for reporting. It never changes the
// calculation semantics beyond the deferral fields carried on the liability.
type LiabilityType struct {
	value string
}

const (
	liabilityStandardLoan        = "STANDARD_LOAN"
	liabilityPartialDeferredLoan = "PARTIAL_DEFERRED_LOAN"
	liabilityTotalDeferredLoan   = "TOTAL_DEFERRED_LOAN"
	liabilityMortgage            = "MORTGAGE"
	liabilityCreditCard          = "CREDIT_CARD"
	liabilityLineOfCredit        = "LINE_OF_CREDIT"
	liabilityOther               = "OTHER"
)

var (
	LiabilityStandardLoan        = LiabilityType{value: liabilityStandardLoan}
	LiabilityPartialDeferredLoan = LiabilityType{value: liabilityPartialDeferredLoan}
	LiabilityTotalDeferredLoan   = LiabilityType{value: liabilityTotalDeferredLoan}
	LiabilityMortgage            = LiabilityType{value: liabilityMortgage}
	LiabilityCreditCard          = LiabilityType{value: liabilityCreditCard}
	LiabilityLineOfCredit        = LiabilityType{value: liabilityLineOfCredit}
	LiabilityOther               = LiabilityType{value: liabilityOther}
)

var validLiabilityTypes = map[string]LiabilityType{
	liabilityStandardLoan:        LiabilityStandardLoan,
	liabilityPartialDeferredLoan: LiabilityPartialDeferredLoan,
	liabilityTotalDeferredLoan:   LiabilityTotalDeferredLoan,
	liabilityMortgage:            LiabilityMortgage,
	liabilityCreditCard:          LiabilityCreditCard,
	liabilityLineOfCredit:        LiabilityLineOfCredit,
	liabilityOther:               LiabilityOther,
}

// NewLiabilityType creates a LiabilityType from a raw string.
func NewLiabilityType(s string) (LiabilityType, error) {
	v, ok := validLiabilityTypes[s]
	if !ok {
		return LiabilityType{}, &InvalidTermError{Reason: fmt.Sprintf("invalid liability type: %q", s)}
	}
	return v, nil
}

// String returns the string representation.
func (t LiabilityType) String() string { return t.value }

// IsZero returns true if the type has not been initialised.
func (t LiabilityType) IsZero() bool { return t.value == "" }

// Equal returns true when both types carry the same value.
func (t LiabilityType) Equal(other LiabilityType) bool { return t.value == other.value }

// ---------------------------------------------------------------------------
// Direction – immutable value object
// ---------------------------------------------------------------------------

// Direction is the sign convention for reporting: a debt the user owes or a
// receivable owed to the user.
type Direction struct {
	value string
}

const (
	directionIOwe    = "I_OWE"
	directionTheyOwe = "THEY_OWE"
)

var (
	DirectionIOwe    = Direction{value: directionIOwe}
	DirectionTheyOwe = Direction{value: directionTheyOwe}
)

var validDirections = map[string]Direction{
	directionIOwe:    DirectionIOwe,
	directionTheyOwe: DirectionTheyOwe,
}

// NewDirection creates a Direction from a raw string.
func NewDirection(s string) (Direction, error) {
	v, ok := validDirections[s]
	if !ok {
		return Direction{}, &InvalidTermError{Reason: fmt.Sprintf("invalid direction: %q", s)}
	}
	return v, nil
}

// String returns the string representation.
func (d Direction) String() string { return d.value }

// IsZero returns true if the direction has not been initialised.
func (d Direction) IsZero() bool { return d.value == "" }

// Equal returns true when both directions carry the same value.
func (d Direction) Equal(other Direction) bool { return d.value == other.value }

// Sign returns -1 for a debt the user owes and +1 for a receivable.
func (d Direction) Sign() int {
	if d.value == directionTheyOwe {
		return 1
	}
	return -1
}

// ---------------------------------------------------------------------------
// DeferralType – immutable value object
// ---------------------------------------------------------------------------

// DeferralType selects the behaviour inside the deferral window: interest-only
// payments (partial) or no payments with interest capitalization (total).
type DeferralType struct {
	value string
}

const (
	deferralNone    = "NONE"
	deferralPartial = "PARTIAL"
	deferralTotal   = "TOTAL"
)

var (
	DeferralNone    = DeferralType{value: deferralNone}
	DeferralPartial = DeferralType{value: deferralPartial}
	DeferralTotal   = DeferralType{value: deferralTotal}
)

var validDeferralTypes = map[string]DeferralType{
	deferralNone:    DeferralNone,
	deferralPartial: DeferralPartial,
	deferralTotal:   DeferralTotal,
}

// NewDeferralType creates a DeferralType from a raw string.
func NewDeferralType(s string) (DeferralType, error) {
	v, ok := validDeferralTypes[s]
	if !ok {
		return DeferralType{}, &InvalidTermError{Reason: fmt.Sprintf("invalid deferral type: %q", s)}
	}
	return v, nil
}

// String returns the string representation.
func (d DeferralType) String() string { return d.value }

// IsZero returns true if the type has not been initialised.
func (d DeferralType) IsZero() bool { return d.value == "" }

// Equal returns true when both types carry the same value.
func (d DeferralType) Equal(other DeferralType) bool { return d.value == other.value }
