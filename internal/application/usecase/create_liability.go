package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/port"
)

// CreateLiabilityUseCase creates a liability from its static terms, generates
// the amortization schedule, and publishes the creation event.
type CreateLiabilityUseCase struct {
	liabilityRepo port.LiabilityRepository
	publisher     port.EventPublisher
}

// NewCreateLiabilityUseCase wires dependencies.
func NewCreateLiabilityUseCase(
	liabilityRepo port.LiabilityRepository,
	publisher port.EventPublisher,
) *CreateLiabilityUseCase {
	return &CreateLiabilityUseCase{
		liabilityRepo: liabilityRepo,
		publisher:     publisher,
	}
}

// Execute validates the terms, builds the aggregate and persists it.
func (uc *CreateLiabilityUseCase) Execute(
	ctx context.Context,
	req dto.CreateLiabilityRequest,
) (dto.LiabilityResponse, error) {
	now := time.Now().UTC()

	liability, err := model.NewLiability(req.UserID, toTerms(req.Terms), now)
	if err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("create liability: %w", err)
	}

	if err := uc.liabilityRepo.Save(ctx, liability); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("save liability: %w", err)
	}

	if err := uc.publisher.Publish(ctx, liability.DomainEvents()...); err != nil {
		return dto.LiabilityResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toLiabilityResponse(liability, nil, nil), nil
}

func toTerms(t dto.LiabilityTermsRequest) model.LiabilityTerms {
	return model.LiabilityTerms{
		Name:              t.Name,
		LiabilityType:     t.LiabilityType,
		Direction:         t.Direction,
		PrincipalAmount:   t.PrincipalAmount,
		InterestRate:      t.InterestRate,
		StartDate:         t.StartDate,
		EndDate:           t.EndDate,
		CompoundingPeriod: t.CompoundingPeriod,
		PaymentFrequency:  t.PaymentFrequency,
		DeferralType:      t.DeferralType,
		DeferralMonths:    t.DeferralMonths,
		PaymentAmount:     t.PaymentAmount,
		AccountID:         t.AccountID,
	}
}

// toLiabilityResponse maps an aggregate to its external representation. The
// schedule defaults to the theoretical one; a reconciled schedule and summary
// are attached when the caller has computed them.
func toLiabilityResponse(l model.Liability, reconciled []model.AmortizationEntry, summary *model.Summary) dto.LiabilityResponse {
	sched := reconciled
	if sched == nil {
		sched = l.Schedule()
	}
	entries := make([]dto.ScheduleEntryResponse, len(sched))
	for i, e := range sched {
		entries[i] = dto.ScheduleEntryResponse{
			PaymentNumber:       e.PaymentNumber,
			PaymentDate:         e.PaymentDate,
			PaymentAmount:       e.PaymentAmount,
			PrincipalAmount:     e.PrincipalAmount,
			InterestAmount:      e.InterestAmount,
			RemainingPrincipal:  e.RemainingPrincipal,
			Status:              e.Status.String(),
			IsDeferred:          e.IsDeferred,
			DeferralType:        e.DeferralType.String(),
			ExtraPayment:        e.ExtraPayment,
			CapitalizedInterest: e.CapitalizedInterest,
		}
	}

	resp := dto.LiabilityResponse{
		ID:                l.ID(),
		UserID:            l.UserID(),
		Name:              l.Name(),
		LiabilityType:     l.LiabilityType().String(),
		Direction:         l.Direction().String(),
		PrincipalAmount:   l.PrincipalAmount(),
		InterestRate:      l.InterestRate(),
		StartDate:         l.StartDate(),
		EndDate:           l.EndDate(),
		CompoundingPeriod: l.CompoundingPeriod().String(),
		PaymentFrequency:  l.PaymentFrequency().String(),
		DeferralType:      l.DeferralType().String(),
		DeferralMonths:    l.DeferralMonths(),
		PaymentAmount:     l.PaymentOverride(),
		AccountID:         l.AccountID(),
		Version:           l.Version(),
		CreatedAt:         l.CreatedAt(),
		UpdatedAt:         l.UpdatedAt(),
		Schedule:          entries,
	}

	if summary != nil {
		s := dto.SummaryResponse{
			PrincipalPaid:       summary.PrincipalPaid,
			InterestPaid:        summary.InterestPaid,
			ExtraPaid:           summary.ExtraPaid,
			CapitalizedInterest: summary.CapitalizedInterest,
			RemainingBalance:    summary.RemainingBalance,
			MissedPayments:      summary.MissedPayments,
		}
		if !summary.NextPaymentDate.IsZero() {
			next := summary.NextPaymentDate
			s.NextPaymentDate = &next
		}
		resp.Summary = &s
	}

	return resp
}
