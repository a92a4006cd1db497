package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
)

// GetLiabilityUseCase retrieves a liability with its schedule reconciled
// against the recorded payment ledger and a derived summary.
type GetLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
	paymentRepo   port.PaymentRepository
}

// NewGetLiabilityUseCase wires dependencies.
func NewGetLiabilityUseCase(
	liabilityRepo port.LiabilityRepository,
	paymentRepo port.PaymentRepository,
) *GetLiabilityUseCase {
	return &GetLiabilityUseCase{
		liabilityRepo: liabilityRepo,
		paymentRepo:   paymentRepo,
	}
}

// Execute loads the liability and its ledger, reconciles the schedule as of
// the requested reference date and summarizes the result. Reconciliation is
// recomputed on every read rather than stored.
func (uc *GetLiabilityUseCase) Execute(
	ctx context.Context,
	req dto.GetLiabilityRequest,
) (dto.LiabilityResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	// 1. Load the liability, scoped to the owning user.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Load the payment ledger.
	ledger, err := uc.paymentRepo.FindByLiabilityID(ctx, liability.ID())
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find payments: %w", err)
	}

	// 3. Reconcile schedule against ledger and derive the summary.
	reconciled, err := model.Reconcile(liability, liability.Schedule(), ledger, asOf)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("reconcile schedule: %w", err)
	}
	summary := model.Summarize(liability, reconciled, ledger)

	return toLiabilityResponse(liability, reconciled, &summary), nil
}
