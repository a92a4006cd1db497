package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// LiabilityTermsRequest carries the static terms supplied when creating or
// updating a liability. PaymentAmount is an optional override; when nil the
// schedule generator computes the annuity payment.
type LiabilityTermsRequest struct {
	Name              string           `json:"name"`
	LiabilityType     string           `json:"liability_type"`
	Direction         string           `json:"direction"`
	PrincipalAmount   decimal.Decimal  `json:"principal_amount"`
	InterestRate      decimal.Decimal  `json:"interest_rate"`
	StartDate         time.Time        `json:"start_date"`
	EndDate           time.Time        `json:"end_date"`
	CompoundingPeriod string           `json:"compounding_period"`
	PaymentFrequency  string           `json:"payment_frequency"`
	DeferralType      string           `json:"deferral_type"`
	DeferralMonths    int              `json:"deferral_period_months"`
	PaymentAmount     *decimal.Decimal `json:"payment_amount,omitempty"`
	AccountID         string           `json:"account_id,omitempty"`
}

// CreateLiabilityRequest carries the data needed to create a new liability.
type CreateLiabilityRequest struct {
	UserID string                `json:"user_id"`
	Terms  LiabilityTermsRequest `json:"terms"`
}

// UpdateLiabilityRequest replaces a liability's static terms; the schedule is
// regenerated as part of the update.
type UpdateLiabilityRequest struct {
	UserID      string                `json:"user_id"`
	LiabilityID string                `json:"liability_id"`
	Terms       LiabilityTermsRequest `json:"terms"`
}

// DeleteLiabilityRequest identifies a liability to remove together with its
// schedule and payment ledger.
type DeleteLiabilityRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
}

// GetLiabilityRequest identifies a liability to retrieve. AsOf is the
// reconciliation reference date; the zero value means now.
type GetLiabilityRequest struct {
	UserID      string    `json:"user_id"`
	LiabilityID string    `json:"liability_id"`
	AsOf        time.Time `json:"as_of,omitempty"`
}

// ListLiabilitiesRequest identifies the user whose liabilities to list.
type ListLiabilitiesRequest struct {
	UserID string    `json:"user_id"`
	AsOf   time.Time `json:"as_of,omitempty"`
}

// RecordPaymentRequest carries an actual payment to append to the ledger.
type RecordPaymentRequest struct {
	UserID          string          `json:"user_id"`
	LiabilityID     string          `json:"liability_id"`
	PaymentDate     time.Time       `json:"payment_date"`
	Amount          decimal.Decimal `json:"amount"`
	PrincipalAmount decimal.Decimal `json:"principal_amount"`
	InterestAmount  decimal.Decimal `json:"interest_amount"`
	ExtraPayment    decimal.Decimal `json:"extra_payment"`
	Status          string          `json:"status,omitempty"`
	TransactionID   string          `json:"transaction_id,omitempty"`
}

// DeletePaymentRequest removes a recorded payment. Deletion is destructive
// and requires the explicit confirmation flag.
type DeletePaymentRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
	PaymentID   string `json:"payment_id"`
	Confirm     bool   `json:"confirm"`
}

// RegenerateScheduleRequest explicitly folds recorded extra payments into the
// opening principal and regenerates the schedule.
type RegenerateScheduleRequest struct {
	UserID      string `json:"user_id"`
	LiabilityID string `json:"liability_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// ScheduleEntryResponse represents a single amortization schedule entry.
type ScheduleEntryResponse struct {
	PaymentNumber       int             `json:"payment_number"`
	PaymentDate         time.Time       `json:"payment_date"`
	PaymentAmount       decimal.Decimal `json:"payment_amount"`
	PrincipalAmount     decimal.Decimal `json:"principal_amount"`
	InterestAmount      decimal.Decimal `json:"interest_amount"`
	RemainingPrincipal  decimal.Decimal `json:"remaining_principal"`
	Status              string          `json:"status"`
	IsDeferred          bool            `json:"is_deferred"`
	DeferralType        string          `json:"deferral_type"`
	ExtraPayment        decimal.Decimal `json:"extra_payment"`
	CapitalizedInterest decimal.Decimal `json:"capitalized_interest"`
}

// SummaryResponse carries the derived fields the rest of the application
// treats as ground truth.
type SummaryResponse struct {
	PrincipalPaid       decimal.Decimal `json:"principal_paid"`
	InterestPaid        decimal.Decimal `json:"interest_paid"`
	ExtraPaid           decimal.Decimal `json:"extra_paid"`
	CapitalizedInterest decimal.Decimal `json:"capitalized_interest"`
	RemainingBalance    decimal.Decimal `json:"remaining_balance"`
	NextPaymentDate     *time.Time      `json:"next_payment_date,omitempty"`
	MissedPayments      int             `json:"missed_payments_count"`
}

// LiabilityResponse is the external representation of a liability.
type LiabilityResponse struct {
	ID                string                  `json:"id"`
	UserID            string                  `json:"user_id"`
	Name              string                  `json:"name"`
	LiabilityType     string                  `json:"liability_type"`
	Direction         string                  `json:"direction"`
	PrincipalAmount   decimal.Decimal         `json:"principal_amount"`
	InterestRate      decimal.Decimal         `json:"interest_rate"`
	StartDate         time.Time               `json:"start_date"`
	EndDate           time.Time               `json:"end_date"`
	CompoundingPeriod string                  `json:"compounding_period"`
	PaymentFrequency  string                  `json:"payment_frequency"`
	DeferralType      string                  `json:"deferral_type"`
	DeferralMonths    int                     `json:"deferral_period_months"`
	PaymentAmount     *decimal.Decimal        `json:"payment_amount,omitempty"`
	AccountID         string                  `json:"account_id,omitempty"`
	Version           int                     `json:"version"`
	CreatedAt         time.Time               `json:"created_at"`
	UpdatedAt         time.Time               `json:"updated_at"`
	Schedule          []ScheduleEntryResponse `json:"schedule,omitempty"`
	Summary           *SummaryResponse        `json:"summary,omitempty"`
}

// TransactionResponse is the display view of a linked ledger transaction.
type TransactionResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Date        time.Time       `json:"date"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// PaymentResponse is the external representation of a recorded payment.
type PaymentResponse struct {
	ID                string               `json:"id"`
	LiabilityID       string               `json:"liability_id"`
	TransactionID     string               `json:"transaction_id,omitempty"`
	PaymentDate       time.Time            `json:"payment_date"`
	Amount            decimal.Decimal      `json:"amount"`
	PrincipalAmount   decimal.Decimal      `json:"principal_amount"`
	InterestAmount    decimal.Decimal      `json:"interest_amount"`
	ExtraPayment      decimal.Decimal      `json:"extra_payment"`
	Status            string               `json:"status"`
	FoldedAt          *time.Time           `json:"folded_at,omitempty"`
	LinkedTransaction *TransactionResponse `json:"linked_transaction,omitempty"`
}
