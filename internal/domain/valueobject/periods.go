package valueobject

import (
	"fmt"
	"time"
)

// ---------------------------------------------------------------------------
// CompoundingPeriod – immutable value object
// ---------------------------------------------------------------------------

// CompoundingPeriod is the interval at which interest is nominally compounded,
// independent of how often payments are made.
type CompoundingPeriod struct {
	value string
}

const (
	compoundingDaily     = "DAILY"
	compoundingMonthly   = "MONTHLY"
	compoundingQuarterly = "QUARTERLY"
	compoundingAnnually  = "ANNUALLY"
)

var (
	CompoundingDaily     = CompoundingPeriod{value: compoundingDaily}
	CompoundingMonthly   = CompoundingPeriod{value: compoundingMonthly}
	CompoundingQuarterly = CompoundingPeriod{value: compoundingQuarterly}
	CompoundingAnnually  = CompoundingPeriod{value: compoundingAnnually}
)

var validCompoundingPeriods = map[string]CompoundingPeriod{
	compoundingDaily:     CompoundingDaily,
	compoundingMonthly:   CompoundingMonthly,
	compoundingQuarterly: CompoundingQuarterly,
	compoundingAnnually:  CompoundingAnnually,
}

// NewCompoundingPeriod creates a CompoundingPeriod from a raw string.
func NewCompoundingPeriod(s string) (CompoundingPeriod, error) {
	v, ok := validCompoundingPeriods[s]
	if !ok {
		return CompoundingPeriod{}, &InvalidTermError{Reason: fmt.Sprintf("invalid compounding period: %q", s)}
	}
	return v, nil
}

// String returns the string representation.
func (c CompoundingPeriod) String() string { return c.value }

// IsZero returns true if the period has not been initialised.
func (c CompoundingPeriod) IsZero() bool { return c.value == "" }

// Equal returns true when both periods carry the same value.
func (c CompoundingPeriod) Equal(other CompoundingPeriod) bool { return c.value == other.value }

// PeriodsPerYear returns the number of compounding periods in one year.
func (c CompoundingPeriod) PeriodsPerYear() int {
	switch c.value {
	case compoundingDaily:
		return 365
	case compoundingMonthly:
		return 12
	case compoundingQuarterly:
		return 4
	case compoundingAnnually:
		return 1
	default:
		return 0
	}
}

// ---------------------------------------------------------------------------
// PaymentFrequency – immutable value object
// ---------------------------------------------------------------------------

// PaymentFrequency is the cadence at which payments fall due.
type PaymentFrequency struct {
	value string
}

const (
	frequencyWeekly    = "WEEKLY"
	frequencyBiWeekly  = "BI_WEEKLY"
	frequencyMonthly   = "MONTHLY"
	frequencyQuarterly = "QUARTERLY"
	frequencyAnnually  = "ANNUALLY"
)

var (
	FrequencyWeekly    = PaymentFrequency{value: frequencyWeekly}
	FrequencyBiWeekly  = PaymentFrequency{value: frequencyBiWeekly}
	FrequencyMonthly   = PaymentFrequency{value: frequencyMonthly}
	FrequencyQuarterly = PaymentFrequency{value: frequencyQuarterly}
	FrequencyAnnually  = PaymentFrequency{value: frequencyAnnually}
)

var validPaymentFrequencies = map[string]PaymentFrequency{
	frequencyWeekly:    FrequencyWeekly,
	frequencyBiWeekly:  FrequencyBiWeekly,
	frequencyMonthly:   FrequencyMonthly,
	frequencyQuarterly: FrequencyQuarterly,
	frequencyAnnually:  FrequencyAnnually,
}

// NewPaymentFrequency creates a PaymentFrequency from a raw string.
func NewPaymentFrequency(s string) (PaymentFrequency, error) {
	v, ok := validPaymentFrequencies[s]
	if !ok {
		return PaymentFrequency{}, &InvalidTermError{Reason: fmt.Sprintf("invalid payment frequency: %q", s)}
	}
	return v, nil
}

// String returns the string representation.
func (f PaymentFrequency) String() string { return f.value }

// IsZero returns true if the frequency has not been initialised.
func (f PaymentFrequency) IsZero() bool { return f.value == "" }

// Equal returns true when both frequencies carry the same value.
func (f PaymentFrequency) Equal(other PaymentFrequency) bool { return f.value == other.value }

// PeriodsPerYear returns the number of payment periods in one year.
func (f PaymentFrequency) PeriodsPerYear() int {
	switch f.value {
	case frequencyWeekly:
		return 52
	case frequencyBiWeekly:
		return 26
	case frequencyMonthly:
		return 12
	case frequencyQuarterly:
		return 4
	case frequencyAnnually:
		return 1
	default:
		return 0
	}
}

// Next returns the payment date one period after t.
func (f PaymentFrequency) Next(t time.Time) time.Time {
	switch f.value {
	case frequencyWeekly:
		return t.AddDate(0, 0, 7)
	case frequencyBiWeekly:
		return t.AddDate(0, 0, 14)
	case frequencyMonthly:
		return t.AddDate(0, 1, 0)
	case frequencyQuarterly:
		return t.AddDate(0, 3, 0)
	case frequencyAnnually:
		return t.AddDate(1, 0, 0)
	default:
		return t
	}
}
