package usecase

import (
	"context"
	"fmt"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/event"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// DeletePaymentUseCase removes a recorded payment from a liability's ledger.
// Deletion shifts reconciliation state and is gated behind an explicit
// confirmation flag.
type DeletePaymentUseCase struct {
	liabilityRepo port.LiabilityRepository
	paymentRepo   port.PaymentRepository
	publisher     port.EventPublisher
}

// NewDeletePaymentUseCase wires dependencies.
func NewDeletePaymentUseCase(
	liabilityRepo port.LiabilityRepository,
	paymentRepo port.PaymentRepository,
	publisher port.EventPublisher,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		liabilityRepo: liabilityRepo,
		paymentRepo:   paymentRepo,
		publisher:     publisher,
	}
}

// Execute deletes the payment after ownership and confirmation checks.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, req dto.DeletePaymentRequest) error {
	if !req.Confirm {
		return valueobject.ErrDeletionNotConfirmed
	}

	// 1. Check the liability exists and belongs to the requesting user.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return fmt.Errorf("find liability: %w", err)
	}

	// 2. Load the payment, scoped to the liability.
	payment, err := uc.paymentRepo.FindByID(ctx, liability.ID(), req.PaymentID)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}

	if err := uc.paymentRepo.Delete(ctx, liability.ID(), payment.ID); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	evt := event.NewPaymentDeleted(liability.ID(), liability.UserID(), payment.ID, payment.Amount)
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	return nil
}
