package usecase

import (
	"context"
	"fmt"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/event"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
)

// DeleteLiabilityUseCase removes a liability together with its schedule and
// payment ledger.
type DeleteLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewDeleteLiabilityUseCase wires dependencies.
func NewDeleteLiabilityUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *DeleteLiabilityUseCase {
	return &DeleteLiabilityUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute deletes the liability if it belongs to the requesting user. The
// schedule and payments are removed in the same transaction by the repository.
func (uc *DeleteLiabilityUseCase) Execute(ctx context.Context, req dto.DeleteLiabilityRequest) error {
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return fmt.Errorf("find liability: %w", err)
	}

	if err := uc.liabilityRepo.Delete(ctx, req.UserID, req.LiabilityID); err != nil {
		return fmt.Errorf("delete liability: %w", err)
	}

	evt := event.NewLiabilityDeleted(liability.ID(), liability.UserID(), liability.Name())
	if err := uc.publisher.Publish(ctx, evt); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}

	return nil
}
