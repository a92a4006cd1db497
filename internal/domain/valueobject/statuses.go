package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// EntryStatus – immutable value object
// ---------------------------------------------------------------------------

// EntryStatus is the reconciliation status of one amortization schedule entry.
type EntryStatus struct {
	value string
}

const (
	entryStatusScheduled = "SCHEDULED"
	entryStatusPaid      = "PAID"
	entryStatusMissed    = "MISSED"
	entryStatusPartial   = "PARTIAL"
)

var (
	EntryStatusScheduled = EntryStatus{value: entryStatusScheduled}
	EntryStatusPaid      = EntryStatus{value: entryStatusPaid}
	EntryStatusMissed    = EntryStatus{value: entryStatusMissed}
	EntryStatusPartial   = EntryStatus{value: entryStatusPartial}
)

var validEntryStatuses = map[string]EntryStatus{
	entryStatusScheduled: EntryStatusScheduled,
	entryStatusPaid:      EntryStatusPaid,
	entryStatusMissed:    EntryStatusMissed,
	entryStatusPartial:   EntryStatusPartial,
}

// NewEntryStatus creates an EntryStatus from a raw string.
func NewEntryStatus(s string) (EntryStatus, error) {
	v, ok := validEntryStatuses[s]
	if !ok {
		return EntryStatus{}, fmt.Errorf("invalid schedule entry status: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (s EntryStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s EntryStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s EntryStatus) Equal(other EntryStatus) bool { return s.value == other.value }

// ---------------------------------------------------------------------------
// PaymentStatus – immutable value object
// ---------------------------------------------------------------------------

// PaymentStatus is the lifecycle state of a recorded liability payment. Only
// completed payments count toward schedule coverage; pending models a payment
// auto-created by reconciliation that still awaits user confirmation.
type PaymentStatus struct {
	value string
}

const (
	paymentStatusCompleted = "COMPLETED"
	paymentStatusPending   = "PENDING"
)

var (
	PaymentStatusCompleted = PaymentStatus{value: paymentStatusCompleted}
	PaymentStatusPending   = PaymentStatus{value: paymentStatusPending}
)

var validPaymentStatuses = map[string]PaymentStatus{
	paymentStatusCompleted: PaymentStatusCompleted,
	paymentStatusPending:   PaymentStatusPending,
}

// NewPaymentStatus creates a PaymentStatus from a raw string.
func NewPaymentStatus(s string) (PaymentStatus, error) {
	v, ok := validPaymentStatuses[s]
	if !ok {
		return PaymentStatus{}, fmt.Errorf("invalid payment status: %q", s)
	}
	return v, nil
}

// String returns the string representation.
func (s PaymentStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s PaymentStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s PaymentStatus) Equal(other PaymentStatus) bool { return s.value == other.value }
