package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// RegenerateScheduleUseCase folds the extra amounts of completed payments into
// the opening principal and regenerates the amortization schedule. Extra
// payments never change the schedule implicitly; this operation is the only
// way they reshape it, and each extra folds exactly once.
type RegenerateScheduleUseCase struct {
	liabilityRepo port.LiabilityRepository
	paymentRepo   port.PaymentRepository
	publisher     port.EventPublisher
}

// NewRegenerateScheduleUseCase wires dependencies.
func NewRegenerateScheduleUseCase(
	liabilityRepo port.LiabilityRepository,
	paymentRepo port.PaymentRepository,
	publisher port.EventPublisher,
) *RegenerateScheduleUseCase {
	return &RegenerateScheduleUseCase{
		liabilityRepo: liabilityRepo,
		paymentRepo:   paymentRepo,
		publisher:     publisher,
	}
}

// Execute sums recorded extra payments, reduces the principal by that amount
// and regenerates the schedule over the original term. The periodic payment
// drops; the number of periods stays.
func (uc *RegenerateScheduleUseCase) Execute(
	ctx context.Context,
	req dto.RegenerateScheduleRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	// 1. Load the liability, scoped to the owning user.
	liability, err := uc.liabilityRepo.FindByID(ctx, req.UserID, req.LiabilityID)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find liability: %w", err)
	}

	// 2. Sum the extra components of completed payments that have not been
	// folded into the principal by an earlier regeneration.
	ledger, err := uc.paymentRepo.FindByLiabilityID(ctx, liability.ID())
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("find payments: %w", err)
	}

	extra := decimal.Zero
	var folding []model.Payment
	for _, p := range ledger {
		if !p.Status.Equal(valueobject.PaymentStatusCompleted) || p.IsFolded() {
			continue
		}
		if p.ExtraPayment.GreaterThan(decimal.Zero) {
			extra = extra.Add(p.ExtraPayment)
			folding = append(folding, p)
		}
	}
	if extra.LessThanOrEqual(decimal.Zero) {
		return dto.LiabilityResponse{}, &valueobject.InconsistentLedgerError{
			Reason: "no extra payments awaiting fold into the principal",
		}
	}

	// 3. Reduce the principal and regenerate inside the aggregate.
	regenerated, err := liability.ApplyExtraPrincipal(extra, now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("regenerate schedule: %w", err)
	}

	if err := uc.liabilityRepo.Save(ctx, regenerated); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	// 4. Stamp the contributing payments as folded so neither a repeated
	// regeneration nor the balance summary counts their extras again.
	for _, p := range folding {
		if err := uc.paymentRepo.Save(ctx, p.MarkFolded(now)); err != nil {
			return dto.LiabilityResponse{}, fmt.Errorf("mark payment %s folded: %w", p.ID, err)
		}
	}

	if err := uc.publisher.Publish(ctx, regenerated.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLiabilityResponse(regenerated, nil, nil), nil
}
