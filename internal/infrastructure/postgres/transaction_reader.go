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

// TransactionReader implements port.TransactionReader against the shared
// transactions table owned by the transaction service. Read-only: liability
// payments link to transactions for display but never modify them.
type TransactionReader struct {
	pool *pgxpool.Pool
}

// NewTransactionReader creates a read-only view over ledger transactions.
func NewTransactionReader(pool *pgxpool.Pool) *TransactionReader {
	return &TransactionReader{pool: pool}
}

// FindByID retrieves a transaction, scoped to accounts owned by the user.
func (r *TransactionReader) FindByID(ctx context.Context, userID, id string) (model.LedgerTransaction, error) {
	query := `
		SELECT t.id, t.account_id, t.date, t.amount, COALESCE(t.description, '')
		FROM transactions t
		JOIN accounts a ON a.id = t.account_id
		WHERE a.user_id = $1 AND t.id = $2
	`
	var tx model.LedgerTransaction
	err := r.pool.QueryRow(ctx, query, userID, id).Scan(
		&tx.ID, &tx.AccountID, &tx.Date, &tx.Amount, &tx.Description,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.LedgerTransaction{}, valueobject.ErrTransactionNotFound
	}
	if err != nil {
		return model.LedgerTransaction{}, fmt.Errorf("scan transaction: %w", err)
	}
	return tx, nil
}
