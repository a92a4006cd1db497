package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/model"
	"github.com/AlanJumeaucourt/wealth-manager-liability-service/internal/domain/valueobject"
	pkgpostgres "github.com/AlanJumeaucourt/wealth-manager-liability-service/pkg/postgres"
)

// LiabilityRepo implements port.LiabilityRepository.
type LiabilityRepo struct {
	pool *pgxpool.Pool
}

// NewLiabilityRepo creates a new PostgreSQL-backed liability repository.
func NewLiabilityRepo(pool *pgxpool.Pool) *LiabilityRepo {
	return &LiabilityRepo{pool: pool}
}

// Save persists a liability and its amortization schedule. The schedule is
// fully replaced on every save since term updates and explicit regeneration
// rebuild it from scratch.
func (r *LiabilityRepo) Save(ctx context.Context, l model.Liability) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		return r.save(ctx, tx, l)
	})
}

func (r *LiabilityRepo) save(ctx context.Context, tx pgx.Tx, l model.Liability) error {
	var override *decimal.Decimal
	if po := l.PaymentOverride(); po != nil {
		override = po
	}

	liabilityQuery := `
		INSERT INTO liabilities (
			id, user_id, name, liability_type, direction,
			principal_amount, interest_rate, start_date, end_date,
			compounding_period, payment_frequency,
			deferral_type, deferral_period_months, payment_amount,
			account_id, version, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)
		ON CONFLICT (id) DO UPDATE SET
			name                   = EXCLUDED.name,
			liability_type         = EXCLUDED.liability_type,
			direction              = EXCLUDED.direction,
			principal_amount       = EXCLUDED.principal_amount,
			interest_rate          = EXCLUDED.interest_rate,
			start_date             = EXCLUDED.start_date,
			end_date               = EXCLUDED.end_date,
			compounding_period     = EXCLUDED.compounding_period,
			payment_frequency      = EXCLUDED.payment_frequency,
			deferral_type          = EXCLUDED.deferral_type,
			deferral_period_months = EXCLUDED.deferral_period_months,
			payment_amount         = EXCLUDED.payment_amount,
			account_id             = EXCLUDED.account_id,
			version                = EXCLUDED.version,
			updated_at             = EXCLUDED.updated_at
		WHERE liabilities.version = EXCLUDED.version - 1
	`
	tag, err := tx.Exec(ctx, liabilityQuery,
		l.ID(), l.UserID(), l.Name(), l.LiabilityType().String(), l.Direction().String(),
		l.PrincipalAmount(), l.InterestRate(), l.StartDate(), l.EndDate(),
		l.CompoundingPeriod().String(), l.PaymentFrequency().String(),
		l.DeferralType().String(), l.DeferralMonths(), override,
		nullableString(l.AccountID()), l.Version(), l.CreatedAt(), l.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save liability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return valueobject.ErrVersionConflict
	}

	// Replace the schedule.
	if _, err := tx.Exec(ctx, `DELETE FROM amortization_entries WHERE liability_id = $1`, l.ID()); err != nil {
		return fmt.Errorf("clear amortization schedule: %w", err)
	}
	entryQuery := `
		INSERT INTO amortization_entries (
			liability_id, payment_number, payment_date,
			payment_amount, principal_amount, interest_amount, remaining_principal,
			is_deferred, deferral_type, capitalized_interest
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`
	for _, e := range l.Schedule() {
		_, err := tx.Exec(ctx, entryQuery,
			l.ID(), e.PaymentNumber, e.PaymentDate,
			e.PaymentAmount, e.PrincipalAmount, e.InterestAmount, e.RemainingPrincipal,
			e.IsDeferred, e.DeferralType.String(), e.CapitalizedInterest,
		)
		if err != nil {
			return fmt.Errorf("save amortization entry %d: %w", e.PaymentNumber, err)
		}
	}

	return nil
}

// FindByID retrieves a liability and its amortization schedule, scoped to
// the owning user.
func (r *LiabilityRepo) FindByID(ctx context.Context, userID, id string) (model.Liability, error) {
	query := liabilitySelect + ` WHERE user_id = $1 AND id = $2`
	l, err := scanLiabilityRow(r.pool.QueryRow(ctx, query, userID, id), nil)
	if err != nil {
		return model.Liability{}, err
	}

	schedule, err := r.loadSchedule(ctx, id)
	if err != nil {
		return model.Liability{}, err
	}
	return withSchedule(l, schedule), nil
}

// FindByUserID retrieves all liabilities of a user with their schedules.
func (r *LiabilityRepo) FindByUserID(ctx context.Context, userID string) ([]model.Liability, error) {
	query := liabilitySelect + ` WHERE user_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query liabilities: %w", err)
	}
	defer rows.Close()

	var liabilities []model.Liability
	for rows.Next() {
		l, err := scanLiabilityRow(rows, nil)
		if err != nil {
			return nil, err
		}
		liabilities = append(liabilities, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i, l := range liabilities {
		schedule, err := r.loadSchedule(ctx, l.ID())
		if err != nil {
			return nil, err
		}
		liabilities[i] = withSchedule(l, schedule)
	}
	return liabilities, nil
}

// Delete removes a liability; the schedule and payment ledger go with it via
// foreign key cascade.
func (r *LiabilityRepo) Delete(ctx context.Context, userID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM liabilities WHERE user_id = $1 AND id = $2`, userID, id)
	if err != nil {
		return fmt.Errorf("delete liability: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return valueobject.ErrLiabilityNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// internal helpers
// ---------------------------------------------------------------------------

const liabilitySelect = `
	SELECT id, user_id, name, liability_type, direction,
	       principal_amount, interest_rate, start_date, end_date,
	       compounding_period, payment_frequency,
	       deferral_type, deferral_period_months, payment_amount,
	       account_id, version, created_at, updated_at
	FROM liabilities`

func scanLiabilityRow(s scannable, schedule []model.AmortizationEntry) (model.Liability, error) {
	var (
		id, userID, name         string
		liabilityTypeStr, dirStr string
		principal, rate          decimal.Decimal
		startDate, endDate       time.Time
		compoundingStr, freqStr  string
		deferralStr              string
		deferralMonths           int
		override                 *decimal.Decimal
		accountID                *string
		version                  int
		createdAt, updatedAt     time.Time
	)

	err := s.Scan(
		&id, &userID, &name, &liabilityTypeStr, &dirStr,
		&principal, &rate, &startDate, &endDate,
		&compoundingStr, &freqStr,
		&deferralStr, &deferralMonths, &override,
		&accountID, &version, &createdAt, &updatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Liability{}, valueobject.ErrLiabilityNotFound
	}
	if err != nil {
		return model.Liability{}, fmt.Errorf("scan liability: %w", err)
	}

	liabilityType, err := valueobject.NewLiabilityType(liabilityTypeStr)
	if err != nil {
		return model.Liability{}, fmt.Errorf("parse liability type: %w", err)
	}
	direction, err := valueobject.NewDirection(dirStr)
	if err != nil {
		return model.Liability{}, fmt.Errorf("parse direction: %w", err)
	}
	compounding, err := valueobject.NewCompoundingPeriod(compoundingStr)
	if err != nil {
		return model.Liability{}, fmt.Errorf("parse compounding period: %w", err)
	}
	frequency, err := valueobject.NewPaymentFrequency(freqStr)
	if err != nil {
		return model.Liability{}, fmt.Errorf("parse payment frequency: %w", err)
	}
	deferral, err := valueobject.NewDeferralType(deferralStr)
	if err != nil {
		return model.Liability{}, fmt.Errorf("parse deferral type: %w", err)
	}

	acct := ""
	if accountID != nil {
		acct = *accountID
	}

	return model.ReconstructLiability(
		id, userID, name,
		liabilityType, direction,
		principal, rate,
		startDate, endDate,
		compounding, frequency,
		deferral, deferralMonths,
		override, acct,
		schedule, version, createdAt, updatedAt,
	), nil
}

func withSchedule(l model.Liability, schedule []model.AmortizationEntry) model.Liability {
	return model.ReconstructLiability(
		l.ID(), l.UserID(), l.Name(),
		l.LiabilityType(), l.Direction(),
		l.PrincipalAmount(), l.InterestRate(),
		l.StartDate(), l.EndDate(),
		l.CompoundingPeriod(), l.PaymentFrequency(),
		l.DeferralType(), l.DeferralMonths(),
		l.PaymentOverride(), l.AccountID(),
		schedule, l.Version(), l.CreatedAt(), l.UpdatedAt(),
	)
}

func (r *LiabilityRepo) loadSchedule(ctx context.Context, liabilityID string) ([]model.AmortizationEntry, error) {
	query := `
		SELECT payment_number, payment_date,
		       payment_amount, principal_amount, interest_amount, remaining_principal,
		       is_deferred, deferral_type, capitalized_interest
		FROM amortization_entries
		WHERE liability_id = $1
		ORDER BY payment_number
	`
	rows, err := r.pool.Query(ctx, query, liabilityID)
	if err != nil {
		return nil, fmt.Errorf("query amortization schedule: %w", err)
	}
	defer rows.Close()

	var schedule []model.AmortizationEntry
	for rows.Next() {
		var (
			e           model.AmortizationEntry
			deferralStr string
		)
		err := rows.Scan(
			&e.PaymentNumber, &e.PaymentDate,
			&e.PaymentAmount, &e.PrincipalAmount, &e.InterestAmount, &e.RemainingPrincipal,
			&e.IsDeferred, &deferralStr, &e.CapitalizedInterest,
		)
		if err != nil {
			return nil, fmt.Errorf("scan amortization entry: %w", err)
		}
		e.DeferralType, err = valueobject.NewDeferralType(deferralStr)
		if err != nil {
			return nil, fmt.Errorf("parse deferral type: %w", err)
		}
		e.Status = valueobject.EntryStatusScheduled
		e.ExtraPayment = decimal.Zero
		schedule = append(schedule, e)
	}
	return schedule, rows.Err()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
