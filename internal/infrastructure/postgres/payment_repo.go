package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
)

// PaymentRepo implements port.PaymentRepository.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a new PostgreSQL-backed payment repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

// Save persists a payment record.
func (r *PaymentRepo) Save(ctx context.Context, p model.Payment) error {
	query := `
		INSERT INTO liability_payments (
			id, liability_id, transaction_id, payment_date,
			amount, principal_amount, interest_amount, extra_payment,
			status, folded_at, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
			payment_date     = EXCLUDED.payment_date,
			amount           = EXCLUDED.amount,
			principal_amount = EXCLUDED.principal_amount,
			interest_amount  = EXCLUDED.interest_amount,
			extra_payment    = EXCLUDED.extra_payment,
			status           = EXCLUDED.status,
			folded_at        = EXCLUDED.folded_at,
			updated_at       = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		p.ID, p.LiabilityID, nullableString(p.TransactionID), p.PaymentDate,
		p.Amount, p.PrincipalAmount, p.InterestAmount, p.ExtraPayment,
		p.Status.String(), p.FoldedAt, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	return nil
}

// FindByID retrieves a payment, scoped to its liability.
func (r *PaymentRepo) FindByID(ctx context.Context, liabilityID, id string) (model.Payment, error) {
	query := paymentSelect + ` WHERE liability_id = $1 AND id = $2`
	p, err := scanPaymentRow(r.pool.QueryRow(ctx, query, liabilityID, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payment{}, valueobject.ErrPaymentNotFound
	}
	return p, err
}

// FindByLiabilityID retrieves the full payment ledger of a liability in
// payment date order.
func (r *PaymentRepo) FindByLiabilityID(ctx context.Context, liabilityID string) ([]model.Payment, error) {
	query := paymentSelect + ` WHERE liability_id = $1 ORDER BY payment_date, created_at`
	rows, err := r.pool.Query(ctx, query, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("query payments: %w", err)
	}
	defer rows.Close()

	var payments []model.Payment
	for rows.Next() {
		p, err := scanPaymentRow(rows)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// Delete removes a payment.
func (r *PaymentRepo) Delete(ctx context.Context, liabilityID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM liability_payments WHERE liability_id = $1 AND id = $2`, liabilityID, id)
	if err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return valueobject.ErrPaymentNotFound
	}
	return nil
}

const paymentSelect = `
	SELECT id, liability_id, transaction_id, payment_date,
	       amount, principal_amount, interest_amount, extra_payment,
	       status, folded_at, created_at, updated_at
	FROM liability_payments`

func scanPaymentRow(s scannable) (model.Payment, error) {
	var (
		p             model.Payment
		transactionID *string
		statusStr     string
	)
	err := s.Scan(
		&p.ID, &p.LiabilityID, &transactionID, &p.PaymentDate,
		&p.Amount, &p.PrincipalAmount, &p.InterestAmount, &p.ExtraPayment,
		&statusStr, &p.FoldedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Payment{}, err
	}
	if err != nil {
		return model.Payment{}, fmt.Errorf("scan payment: %w", err)
	}

	p.Status, err = valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return model.Payment{}, fmt.Errorf("parse payment status: %w", err)
	}
	if transactionID != nil {
		p.TransactionID = *transactionID
	}
	return p, nil
}
