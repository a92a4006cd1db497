package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
)

// UpdateLiabilityUseCase replaces a liability's static terms and regenerates
// its amortization schedule from scratch.
type UpdateLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewUpdateLiabilityUseCase wires dependencies.
func NewUpdateLiabilityUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *UpdateLiabilityUseCase {
	return &UpdateLiabilityUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute loads the liability, applies the new terms and persists the result.
// The saved schedule is fully replaced; recorded payments are untouched and
// re-reconcile against the new schedule on the next read.
func (uc *UpdateLiabilityUseCase) Execute(
	ctx context.Context,
	req dto.UpdateLiabilityRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Load the liability, scoped to the owning user.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Apply the new terms. Validation and schedule regeneration happen
	// inside the aggregate.
	updated, err := liability.UpdateTerms(toTerms(req.Terms), now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("update liability: %w", err)
	}

	// 3. Persist with optimistic locking.
	if err := uc.liabilityRepo.Save(ctx, updated); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	if err := uc.publisher.Publish(ctx, updated.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLiabilityResponse(updated, nil, nil), nil
}
