package grpc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/usecase"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// LiabilityHandler exposes liability operations over gRPC.
type LiabilityHandler struct {
	UnimplementedLiabilityServiceServer

	createLiability    *usecase.CreateLiabilityUseCase
	getLiability       *usecase.GetLiabilityUseCase
	listLiabilities    *usecase.ListLiabilitiesUseCase
	updateLiability    *usecase.UpdateLiabilityUseCase
	deleteLiability    *usecase.DeleteLiabilityUseCase
	recordPayment      *usecase.RecordPaymentUseCase
	deletePayment      *usecase.DeletePaymentUseCase
	regenerateSchedule *usecase.RegenerateScheduleUseCase
	logger             *slog.Logger
}

// NewLiabilityHandler creates a new handler with all use-case dependencies.
func NewLiabilityHandler(
	createLiability *usecase.CreateLiabilityUseCase,
	getLiability *usecase.GetLiabilityUseCase,
	listLiabilities *usecase.ListLiabilitiesUseCase,
	updateLiability *usecase.UpdateLiabilityUseCase,
	deleteLiability *usecase.DeleteLiabilityUseCase,
	recordPayment *usecase.RecordPaymentUseCase,
	deletePayment *usecase.DeletePaymentUseCase,
	regenerateSchedule *usecase.RegenerateScheduleUseCase,
	logger *slog.Logger,
) *LiabilityHandler {
	return &LiabilityHandler{
		createLiability:    createLiability,
		getLiability:       getLiability,
		listLiabilities:    listLiabilities,
		updateLiability:    updateLiability,
		deleteLiability:    deleteLiability,
		recordPayment:      recordPayment,
		deletePayment:      deletePayment,
		regenerateSchedule: regenerateSchedule,
		logger:             logger,
	}
}

// CreateLiability creates a new liability and generates its schedule.
func (h *LiabilityHandler) CreateLiability(ctx context.Context, req *CreateLiabilityRequest) (*CreateLiabilityResponse, error) {
	terms, err := parseTerms(req.Terms)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := h.createLiability.Execute(ctx, dto.CreateLiabilityRequest{
		UserID: req.UserID,
		Terms:  terms,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "CreateLiability", err)
	}
	return &CreateLiabilityResponse{Liability: &resp}, nil
}

// GetLiability retrieves a liability with its reconciled schedule and summary.
func (h *LiabilityHandler) GetLiability(ctx context.Context, req *GetLiabilityRequest) (*GetLiabilityResponse, error) {
	asOf, err := parseOptionalTime(req.AsOf)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid as_of date: "+err.Error())
	}

	resp, err := h.getLiability.Execute(ctx, dto.GetLiabilityRequest{
		UserID:      req.UserID,
		LiabilityID: req.LiabilityID,
		AsOf:        asOf,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "GetLiability", err)
	}
	return &GetLiabilityResponse{Liability: &resp}, nil
}

// ListLiabilities lists all liabilities of a user with summaries.
func (h *LiabilityHandler) ListLiabilities(ctx context.Context, req *ListLiabilitiesRequest) (*ListLiabilitiesResponse, error) {
	asOf, err := parseOptionalTime(req.AsOf)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid as_of date: "+err.Error())
	}

	resps, err := h.listLiabilities.Execute(ctx, dto.ListLiabilitiesRequest{
		UserID: req.UserID,
		AsOf:   asOf,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "ListLiabilities", err)
	}
	return &ListLiabilitiesResponse{Liabilities: resps}, nil
}

// UpdateLiability replaces a liability's terms and regenerates its schedule.
func (h *LiabilityHandler) UpdateLiability(ctx context.Context, req *UpdateLiabilityRequest) (*UpdateLiabilityResponse, error) {
	terms, err := parseTerms(req.Terms)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	resp, err := h.updateLiability.Execute(ctx, dto.UpdateLiabilityRequest{
		UserID:      req.UserID,
		LiabilityID: req.LiabilityID,
		Terms:       terms,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "UpdateLiability", err)
	}
	return &UpdateLiabilityResponse{Liability: &resp}, nil
}

// DeleteLiability removes a liability with its schedule and payments.
func (h *LiabilityHandler) DeleteLiability(ctx context.Context, req *DeleteLiabilityRequest) (*DeleteLiabilityResponse, error) {
	err := h.deleteLiability.Execute(ctx, dto.DeleteLiabilityRequest{
		UserID:      req.UserID,
		LiabilityID: req.LiabilityID,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "DeleteLiability", err)
	}
	return &DeleteLiabilityResponse{Deleted: true}, nil
}

// RecordPayment appends an actual payment to a liability's ledger.
func (h *LiabilityHandler) RecordPayment(ctx context.Context, req *RecordPaymentRequest) (*RecordPaymentResponse, error) {
	paymentDate, err := time.Parse(time.RFC3339, req.PaymentDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid payment_date: "+err.Error())
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid amount: "+err.Error())
	}
	principal, err := parseOptionalDecimal(req.PrincipalAmount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid principal_amount: "+err.Error())
	}
	interest, err := parseOptionalDecimal(req.InterestAmount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid interest_amount: "+err.Error())
	}
	extra, err := parseOptionalDecimal(req.ExtraPayment)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, "invalid extra_payment: "+err.Error())
	}

	resp, err := h.recordPayment.Execute(ctx, dto.RecordPaymentRequest{
		UserID:          req.UserID,
		LiabilityID:     req.LiabilityID,
		PaymentDate:     paymentDate,
		Amount:          amount,
		PrincipalAmount: principal,
		InterestAmount:  interest,
		ExtraPayment:    extra,
		Status:          req.Status,
		TransactionID:   req.TransactionID,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "RecordPayment", err)
	}
	return &RecordPaymentResponse{Payment: &resp}, nil
}

// DeletePayment removes a recorded payment after explicit confirmation.
func (h *LiabilityHandler) DeletePayment(ctx context.Context, req *DeletePaymentRequest) (*DeletePaymentResponse, error) {
	err := h.deletePayment.Execute(ctx, dto.DeletePaymentRequest{
		UserID:      req.UserID,
		LiabilityID: req.LiabilityID,
		PaymentID:   req.PaymentID,
		Confirm:     req.Confirm,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "DeletePayment", err)
	}
	return &DeletePaymentResponse{Deleted: true}, nil
}

// RegenerateSchedule folds recorded extra payments into the principal and
// rebuilds the schedule.
func (h *LiabilityHandler) RegenerateSchedule(ctx context.Context, req *RegenerateScheduleRequest) (*RegenerateScheduleResponse, error) {
	resp, err := h.regenerateSchedule.Execute(ctx, dto.RegenerateScheduleRequest{
		UserID:      req.UserID,
		LiabilityID: req.LiabilityID,
	})
	if err != nil {
		return nil, h.toStatusError(ctx, "RegenerateSchedule", err)
	}
	return &RegenerateScheduleResponse{Liability: &resp}, nil
}

// toStatusError maps domain errors to gRPC status codes.
func (h *LiabilityHandler) toStatusError(ctx context.Context, method string, err error) error {
	var (
		rateErr   *valueobject.InvalidRateError
		termErr   *valueobject.InvalidTermError
		ledgerErr *valueobject.InconsistentLedgerError
	)

	switch {
	case errors.Is(err, valueobject.ErrLiabilityNotFound),
		errors.Is(err, valueobject.ErrPaymentNotFound),
		errors.Is(err, valueobject.ErrTransactionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, valueobject.ErrDeletionNotConfirmed):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	case errors.As(err, &rateErr), errors.As(err, &termErr), errors.As(err, &ledgerErr):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		h.logger.ErrorContext(ctx, "internal error", "method", method, "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func parseTerms(t *LiabilityTerms) (dto.LiabilityTermsRequest, error) {
	if t == nil {
		return dto.LiabilityTermsRequest{}, errors.New("terms are required")
	}

	principal, err := decimal.NewFromString(t.PrincipalAmount)
	if err != nil {
		return dto.LiabilityTermsRequest{}, errors.New("invalid principal_amount: " + err.Error())
	}
	rate, err := decimal.NewFromString(t.InterestRate)
	if err != nil {
		return dto.LiabilityTermsRequest{}, errors.New("invalid interest_rate: " + err.Error())
	}
	startDate, err := time.Parse(time.RFC3339, t.StartDate)
	if err != nil {
		return dto.LiabilityTermsRequest{}, errors.New("invalid start_date: " + err.Error())
	}
	endDate, err := time.Parse(time.RFC3339, t.EndDate)
	if err != nil {
		return dto.LiabilityTermsRequest{}, errors.New("invalid end_date: " + err.Error())
	}

	var override *decimal.Decimal
	if t.PaymentAmount != "" {
		amt, err := decimal.NewFromString(t.PaymentAmount)
		if err != nil {
			return dto.LiabilityTermsRequest{}, errors.New("invalid payment_amount: " + err.Error())
		}
		override = &amt
	}

	return dto.LiabilityTermsRequest{
		Name:              t.Name,
		LiabilityType:     t.LiabilityType,
		Direction:         t.Direction,
		PrincipalAmount:   principal,
		InterestRate:      rate,
		StartDate:         startDate,
		EndDate:           endDate,
		CompoundingPeriod: t.CompoundingPeriod,
		PaymentFrequency:  t.PaymentFrequency,
		DeferralType:      t.DeferralType,
		DeferralMonths:    t.DeferralPeriodMonths,
		PaymentAmount:     override,
		AccountID:         t.AccountID,
	}, nil
}

func parseOptionalTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, s)
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}
