package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/event"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// RecordPaymentUseCase appends an actual payment to a liability's ledger.
type RecordPaymentUseCase struct {
	liabilityRepo port.LiabilityRepository
	paymentRepo   port.PaymentRepository
	txReader      port.TransactionReader
	publisher     port.EventPublisher
}

// NewRecordPaymentUseCase wires dependencies. txReader is optional; when nil
// the linked transaction is not resolved for display.
func NewRecordPaymentUseCase(
	liabilityRepo port.LiabilityRepository,
	paymentRepo port.PaymentRepository,
	txReader port.TransactionReader,
	publisher port.EventPublisher,
) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		liabilityRepo: liabilityRepo,
		paymentRepo:   paymentRepo,
		txReader:      txReader,
		publisher:     publisher,
	}
}

// Execute validates the payment against the owning liability and persists it.
// Schedules are not mutated here; reconciliation folds the new payment in on
// the next read.
func (uc *RecordPaymentUseCase) Execute(
	ctx context.Context,
	req dto.RecordPaymentRequest,
) (dto.PaymentResponse, error) {
	now := time.Now().UTC()

	// 1. Load the liability, scoped to the owning user.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Reject payments dated before the liability starts.
	if req.PaymentDate.Before(liability.StartDate()) {
		return dto.PaymentResponse{}, fmt.Errorf("record payment: %w", &valueobject.InconsistentLedgerError{
			Reason: "payment dated before liability start date",
		})
	}

	var status valueobject.PaymentStatus
	if req.Status != "" {
		status, err = valueobject.NewPaymentStatus(req.Status)
		if err != nil {
			return dto.PaymentResponse{}, fmt.Errorf("record payment: %w", err)
		}
	}

	// 3. Build and validate the payment record.
	payment, err := model.NewPayment(
		liability.ID(),
		req.PaymentDate,
		req.Amount, req.PrincipalAmount, req.InterestAmount, req.ExtraPayment,
		status,
		req.TransactionID,
		now,
	)
	if err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("record payment: %w", err)
	}

	if err := uc.paymentRepo.Save(ctx, payment); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("save payment: %w", err)
	}

	evt := event.NewPaymentRecorded(
		liability.ID(), liability.UserID(), payment.ID,
		payment.PaymentDate,
		payment.Amount, payment.PrincipalAmount, payment.InterestAmount, payment.ExtraPayment,
	)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return dto.PaymentResponse{}, fmt.Errorf("publish events: %w", err)
	}

	resp := toPaymentResponse(payment)

	// 4. Resolve the linked ledger transaction for display, best effort.
	if uc.txReader != nil && payment.TransactionID != "" {
		if tx, err := uc.txReader.FindByID(ctx, req.UserID, payment.TransactionID); err == nil {
			resp.LinkedTransaction = &dto.TransactionResponse{
				ID:          tx.ID,
				AccountID:   tx.AccountID,
				Date:        tx.Date,
				Amount:      tx.Amount,
				Description: tx.Description,
			}
		}
	}

	return resp, nil
}

func toPaymentResponse(p model.Payment) dto.PaymentResponse {
	return dto.PaymentResponse{
		ID:              p.ID,
		LiabilityID:     p.LiabilityID,
		TransactionID:   p.TransactionID,
		PaymentDate:     p.PaymentDate,
		Amount:          p.Amount,
		PrincipalAmount: p.PrincipalAmount,
		InterestAmount:  p.InterestAmount,
		ExtraPayment:    p.ExtraPayment,
		Status:          p.Status.String(),
		FoldedAt:        p.FoldedAt,
	}
}
