package port

import (
	"context"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/event"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// LiabilityRepository persists and retrieves liabilities together with their
// generated amortization schedules.
type LiabilityRepository interface {
	Save(ctx context.Context, l model.Liability) error
	FindByID(ctx context.Context, userID, id string) (model.Liability, error)
	FindByUserID(ctx context.Context, userID string) ([]model.Liability, error)
	Delete(ctx context.Context, userID, id string) error
}

// PaymentRepository persists and retrieves the payment ledger of a liability.
type PaymentRepository interface {
	Save(ctx context.Context, p model.Payment) error
	FindByID(ctx context.Context, liabilityID, id string) (model.Payment, error)
	FindByLiabilityID(ctx context.Context, liabilityID string) ([]model.Payment, error)
	Delete(ctx context.Context, liabilityID, id string) error
}

// TransactionReader reads ledger transactions a payment is linked to, for
// display only.
type TransactionReader interface {
	FindByID(ctx context.Context, userID, id string) (model.LedgerTransaction, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}
