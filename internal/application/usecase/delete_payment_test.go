package usecase_test

import (
	"context"
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

func TestDeletePayment_Execute(t *testing.T) {
	newRecordedPayment := func(t *testing.T, liabilityID string, date time.Time) model.Payment {
		t.Helper()
		p, err := model.NewPayment(
			liabilityID, date,
			decimal.NewFromInt(500), decimal.Zero, decimal.Zero, decimal.Zero,
			valueobject.PaymentStatusCompleted, "", date,
		)
		require.NoError(t, err)
		return p
	}

	t.Run("deletes a confirmed payment and publishes the event", func(t *testing.T) {
		liability := testLiability(t, "user-001")
		payment := newRecordedPayment(t, liability.ID(), liability.StartDate().AddDate(0, 1, 0))

		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return liability, nil
			},
		}
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(ctx context.Context, liabilityID, id string) (model.Payment, error) {
				return payment, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDeletePaymentUseCase(liabilityRepo, paymentRepo, publisher)

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{
			UserID:      "user-001",
			LiabilityID: liability.ID(),
			PaymentID:   payment.ID,
			Confirm:     true,
		})

		require.NoError(t, err)
		require.Len(t, paymentRepo.deleted, 1)
		assert.Equal(t, payment.ID, paymentRepo.deleted[0])
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "liability.payment.deleted", publisher.publishedEvents[0].EventType())
	})

	t.Run("refuses deletion without confirmation", func(t *testing.T) {
		paymentRepo := &mockPaymentRepository{}

		uc := usecase.NewDeletePaymentUseCase(&mockLiabilityRepository{}, paymentRepo, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{
			UserID:      "user-001",
			LiabilityID: "liab-001",
			PaymentID:   "pay-001",
		})

		require.ErrorIs(t, err, valueobject.ErrDeletionNotConfirmed)
		assert.Empty(t, paymentRepo.deleted)
	})

	t.Run("fails when payment not found", func(t *testing.T) {
		liability := testLiability(t, "user-001")
		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return liability, nil
			},
		}

		uc := usecase.NewDeletePaymentUseCase(liabilityRepo, &mockPaymentRepository{}, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{
			UserID:      "user-001",
			LiabilityID: liability.ID(),
			PaymentID:   "missing",
			Confirm:     true,
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find payment")
	})
}

func TestDeleteLiability_Execute(t *testing.T) {
	t.Run("deletes an owned liability and publishes the event", func(t *testing.T) {
		liability := testLiability(t, "user-001")
		liabilityRepo := &mockLiabilityRepository{
			findByIDFunc: func(ctx context.Context, userID, id string) (model.Liability, error) {
				return liability, nil
			},
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDeleteLiabilityUseCase(liabilityRepo, publisher)

		err := uc.Execute(context.Background(), dto.DeleteLiabilityRequest{
			UserID:      "user-001",
			LiabilityID: liability.ID(),
		})

		require.NoError(t, err)
		require.Len(t, liabilityRepo.deleted, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, "liability.deleted", publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when liability not found", func(t *testing.T) {
		uc := usecase.NewDeleteLiabilityUseCase(&mockLiabilityRepository{}, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeleteLiabilityRequest{
			UserID:      "user-001",
			LiabilityID: "missing",
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "find liability")
	})
}
