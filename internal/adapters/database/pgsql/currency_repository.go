package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
	"github.com/printkit/pricelist_backend/internal/utils/mapping"
)

// PgxCurrencyRepository implements repositories.CurrencyRepositoryFacade using pgxpool.
type PgxCurrencyRepository struct {
	BaseRepository
}

// NewCurrencyRepository creates a new PgxCurrencyRepository.
func NewCurrencyRepository(db *pgxpool.Pool) *PgxCurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository: BaseRepository{Pool: db}}
}

var currencyConstraints = map[string]error{
	"uq_currencies_pricelist_code": apperrors.ErrDuplicateCurrencyCode,
	"uq_currencies_single_base":    apperrors.ErrMultipleBaseCurrency,
}

const currencyColumns = `currency_id, price_list_id, title, code, symbol, is_base,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCurrency(row pgx.Row) (*models.Currency, error) {
	var m models.Currency
	err := row.Scan(
		&m.CurrencyID, &m.PriceListID, &m.Title, &m.Code, &m.Symbol, &m.IsBase,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveCurrency persists a new currency together with an optional seed rate in
// one transaction. Uniqueness of (price_list_id, code) and the single-base
// invariant are enforced by the database so concurrent writers cannot race
// past an application-level check.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency, seed *domain.CurrencyRate) error {
	m := mapping.ToModelCurrency(currency)
	m.Code = strings.ToUpper(m.Code)

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO currencies (currency_id, price_list_id, title, code, symbol, is_base,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.CurrencyID, m.PriceListID, m.Title, m.Code, m.Symbol, m.IsBase,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapUniqueViolation(err, currencyConstraints)
	}

	if seed != nil {
		mr := mapping.ToModelCurrencyRate(*seed)
		_, err = tx.Exec(ctx, `
			INSERT INTO currency_rates (rate_id, currency_id, rate, date_effective, created_by)
			VALUES ($1, $2, $3, $4, $5)`,
			mr.RateID, mr.CurrencyID, mr.Rate, mr.DateEffective, mr.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert seed rate: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_id = $1`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyID)
		}
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// FindCurrencyByCode retrieves a currency by (price list, uppercased code).
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, priceListID, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE price_list_id = $1 AND code = $2`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, priceListID, strings.ToUpper(code)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: currency %s on price list %s", apperrors.ErrNotFound, strings.ToUpper(code), priceListID)
		}
		return nil, fmt.Errorf("failed to find currency by code: %w", err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// FindBaseCurrency retrieves the base currency of a price list.
func (r *PgxCurrencyRepository) FindBaseCurrency(ctx context.Context, priceListID string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE price_list_id = $1 AND is_base`
	m, err := scanCurrency(r.Pool.QueryRow(ctx, query, priceListID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: base currency of price list %s", apperrors.ErrNotFound, priceListID)
		}
		return nil, fmt.Errorf("failed to find base currency: %w", err)
	}
	d := mapping.ToDomainCurrency(*m)
	return &d, nil
}

// ListCurrencies retrieves a price list's currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, priceListID string) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE price_list_id = $1 ORDER BY code`
	rows, err := r.Pool.Query(ctx, query, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	defer rows.Close()

	var ms []models.Currency
	for rows.Next() {
		m, err := scanCurrency(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan currency: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

// UpdateCurrency persists changes to title and symbol only. Code, base flag
// and list binding are immutable after creation.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE currencies
		SET title = $1, symbol = $2, last_updated_at = $3, last_updated_by = $4
		WHERE currency_id = $5`,
		m.Title, m.Symbol, m.LastUpdatedAt, m.LastUpdatedBy, m.CurrencyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update currency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currency.CurrencyID)
	}
	return nil
}

// DeleteCurrency removes a currency; its rate history cascades.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1`, currencyID)
	if err != nil {
		return fmt.Errorf("failed to delete currency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currencyID)
	}
	return nil
}

// AppendRate inserts a rate record and returns it with the storage-assigned
// insertion sequence. Rows are never updated; history only grows.
func (r *PgxCurrencyRepository) AppendRate(ctx context.Context, rate domain.CurrencyRate) (*domain.CurrencyRate, error) {
	m := mapping.ToModelCurrencyRate(rate)
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO currency_rates (rate_id, currency_id, rate, date_effective, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq`,
		m.RateID, m.CurrencyID, m.Rate, m.DateEffective, m.CreatedBy,
	).Scan(&m.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to append rate: %w", err)
	}
	d := mapping.ToDomainCurrencyRate(m)
	return &d, nil
}

// RateAt retrieves the rate in force strictly before at: the latest record by
// effective timestamp, ties broken by insertion sequence.
func (r *PgxCurrencyRepository) RateAt(ctx context.Context, currencyID string, at time.Time) (*domain.CurrencyRate, error) {
	var m models.CurrencyRate
	err := r.Pool.QueryRow(ctx, `
		SELECT rate_id, currency_id, rate, date_effective, seq, created_by
		FROM currency_rates
		WHERE currency_id = $1 AND date_effective < $2
		ORDER BY date_effective DESC, seq DESC
		LIMIT 1`,
		currencyID, at,
	).Scan(&m.RateID, &m.CurrencyID, &m.Rate, &m.DateEffective, &m.Seq, &m.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoRateDefined
		}
		return nil, fmt.Errorf("failed to resolve rate: %w", err)
	}
	d := mapping.ToDomainCurrencyRate(m)
	return &d, nil
}

// ListRates retrieves a currency's full rate history, oldest first.
func (r *PgxCurrencyRepository) ListRates(ctx context.Context, currencyID string) ([]domain.CurrencyRate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT rate_id, currency_id, rate, date_effective, seq, created_by
		FROM currency_rates
		WHERE currency_id = $1
		ORDER BY date_effective, seq`,
		currencyID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	defer rows.Close()

	var ds []domain.CurrencyRate
	for rows.Next() {
		var m models.CurrencyRate
		if err := rows.Scan(&m.RateID, &m.CurrencyID, &m.Rate, &m.DateEffective, &m.Seq, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan rate: %w", err)
		}
		ds = append(ds, mapping.ToDomainCurrencyRate(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rates: %w", err)
	}
	return ds, nil
}
