package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
)

// ListLiabilitiesUseCase lists all liabilities of a user with per-liability
// summaries, each reconciled against its own payment ledger.
type ListLiabilitiesUseCase struct {
	liabilityRepo port.LiabilityRepository
	paymentRepo   port.PaymentRepository
}

// NewListLiabilitiesUseCase wires dependencies.
func NewListLiabilitiesUseCase(
	liabilityRepo port.LiabilityRepository,
	paymentRepo port.PaymentRepository,
) *ListLiabilitiesUseCase {
	return &ListLiabilitiesUseCase{
		liabilityRepo: liabilityRepo,
		paymentRepo:   paymentRepo,
	}
}

// Execute returns the user's liabilities with summaries. The full schedule is
// omitted from list responses; GetLiability returns it per liability.
func (uc *ListLiabilitiesUseCase) Execute(
	ctx context.Context,
	req dto.ListLiabilitiesRequest,
) ([]dto.LiabilityResponse, error) {
	asOf := req.AsOf
	if asOf.IsZero() {
		asOf = time.Now().UTC()
	}

	liabilities, err := uc.liabilityRepo.FindByUserID(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("find liabilities: %w", err)
	}

	responses := make([]dto.LiabilityResponse, 0, len(liabilities))
	for _, l := range liabilities {
		ledger, err := uc.paymentRepo.FindByLiabilityID(ctx, l.ID())
		if err != nil {
			return nil, fmt.Errorf("find payments for liability %s: %w", l.ID(), err)
		}

		reconciled, err := model.Reconcile(l, l.Schedule(), ledger, asOf)
		if err != nil {
			return nil, fmt.Errorf("reconcile liability %s: %w", l.ID(), err)
		}
		summary := model.Summarize(l, reconciled, ledger)

		resp := toLiabilityResponse(l, reconciled, &summary)
		resp.Schedule = nil
		responses = append(responses, resp)
	}

	return responses, nil
}
