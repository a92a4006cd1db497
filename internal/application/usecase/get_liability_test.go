package usecase_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/dto"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/application/usecase"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

func TestGetLiability_Execute(t *testing.T) {
	t.Run("returns a reconciled schedule and summary", func(t *testing.T) {
		liability := testLiability(t, "user-001")
		firstDue := liability.Schedule()[0]

		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return liability, nil
			},
		}
		paymentRepo := &mockPaymentRepository{
			findByLiabilityIDFunc: func(ctx context.Context, liabilityID string) ([]model.Payment, error) {
				p, err := model.NewPayment(
					liability.ID(), firstDue.PaymentDate,
					firstDue.PaymentAmount, firstDue.PrincipalAmount, firstDue.InterestAmount, decimal.Zero,
					valueobject.PaymentStatusCompleted, "", firstDue.PaymentDate,
				)
				require.NoError(t, err)
				return []model.Payment{p}, nil
			},
		}

		uc := usecase.NewGetLiabilityUseCase(liabilityRepo, paymentRepo)

		resp, err := uc.Execute(context.Background(), dto.GetLiabilityRequest{
			UserID:      "user-001",
			LiabilityID: liability.ID(),
			AsOf:        firstDue.PaymentDate.AddDate(0, 0, 1),
		})

		require.NoError(t, err)
		require.Len(t, resp.Schedule, 12)
		assert.Equal(t, "PAID", resp.Schedule[0].Status)
		assert.Equal(t, "SCHEDULED", resp.Schedule[1].Status)

		require.NotNil(t, resp.Summary)
		assert.True(t, firstDue.PrincipalAmount.Equal(resp.Summary.PrincipalPaid))
		assert.True(t, firstDue.InterestAmount.Equal(resp.Summary.InterestPaid))
		assert.Equal(t, 0, resp.Summary.MissedPayments)
		require.NotNil(t, resp.Summary.NextPaymentDate)
		assert.True(t, resp.Summary.NextPaymentDate.Equal(liability.Schedule()[1].PaymentDate))
	})

	t.Run("marks overdue uncovered entries missed", func(t *testing.T) {
		liability := testLiability(t, "user-001")

		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return liability, nil
			},
		}
		paymentRepo := &mockPaymentRepository{}

		uc := usecase.NewGetLiabilityUseCase(liabilityRepo, paymentRepo)

		// Two periods past due, nothing paid.
		asOf := liability.Schedule()[1].PaymentDate.AddDate(0, 0, 1)
		resp, err := uc.Execute(context.Background(), dto.GetLiabilityRequest{
			UserID:      "user-001",
			LiabilityID: liability.ID(),
			AsOf:        asOf,
		})

		require.NoError(t, err)
		assert.Equal(t, "MISSED", resp.Schedule[0].Status)
		assert.Equal(t, "MISSED", resp.Schedule[1].Status)
		assert.Equal(t, "SCHEDULED", resp.Schedule[2].Status)
		assert.Equal(t, 2, resp.Summary.MissedPayments)
	})

	t.Run("fails when liability not found", func(t *testing.T) {
		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return model.Liability{}, fmt.Errorf("liability not found")
			},
		}
		paymentRepo := &mockPaymentRepository{}

		uc := usecase.NewGetLiabilityUseCase(liabilityRepo, paymentRepo)

		_, err := uc.Execute(context.Background(), dto.GetLiabilityRequest{
			UserID:      "user-001",
			LiabilityID: "nope",
			AsOf:        time.Now().UTC(),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find liability")
	})
}

func TestListLiabilities_Execute(t *testing.T) {
	t.Run("returns summaries without schedules", func(t *testing.T) {
		liability := testLiability(t, "user-001")

		liabilityRepo := &mockLiabilityRepository{
			findByUserIDFunc: func(ctx context.Context, userID string) ([]model.Liability, error) {
				return []model.Liability{liability}, nil
			},
		}
		paymentRepo := &mockPaymentRepository{}

		uc := usecase.NewListLiabilitiesUseCase(liabilityRepo, paymentRepo)

		resps, err := uc.Execute(context.Background(), dto.ListLiabilitiesRequest{
			UserID: "user-001",
			AsOf:   liability.StartDate(),
		})

		require.NoError(t, err)
		require.Len(t, resps, 1)
		assert.Empty(t, resps[0].Schedule)
		require.NotNil(t, resps[0].Summary)
		assert.True(t, liability.PrincipalAmount().Equal(resps[0].Summary.RemainingBalance))
	})

	t.Run("returns empty list for user without liabilities", func(t *testing.T) {
		uc := usecase.NewListLiabilitiesUseCase(&mockLiabilityRepository{}, &mockPaymentRepository{})

		resps, err := uc.Execute(context.Background(), dto.ListLiabilitiesRequest{UserID: "user-002"})

		require.NoError(t, err)
		assert.Empty(t, resps)
	})
}
