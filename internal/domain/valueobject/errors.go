package valueobject

import "errors"

// InvalidRateError rejects a negative or malformed interest rate.
type InvalidRateError struct {
	Reason string
}

func (e *InvalidRateError) Error() string { return "invalid rate: " + e.Reason }

// InvalidTermError rejects inconsistent liability terms: end date not after
// start date, a deferral window exceeding the term, or an unrecognized enum.
type InvalidTermError struct {
	Reason string
}

func (e *InvalidTermError) Error() string { return "invalid term: " + e.Reason }

// InconsistentLedgerError rejects a payment ledger the schedule cannot be
// reconciled against: a payment dated before the liability start, or
// duplicate payment IDs.
type InconsistentLedgerError struct {
	Reason string
}

func (e *InconsistentLedgerError) Error() string { return "inconsistent ledger: " + e.Reason }

// Sentinel errors shared across the domain.
var (
	ErrLiabilityNotFound    = errors.New("liability not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrVersionConflict      = errors.New("optimistic locking conflict")
	ErrDeletionNotConfirmed = errors.New("payment deletion requires explicit confirmation")
)
