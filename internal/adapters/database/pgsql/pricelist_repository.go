package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
	"github.com/printkit/pricelist_backend/internal/utils/mapping"
)

// PgxPriceListRepository implements repositories.PriceListRepositoryFacade using pgxpool.
type PgxPriceListRepository struct {
	BaseRepository
}

// NewPriceListRepository creates a new PgxPriceListRepository.
func NewPriceListRepository(db *pgxpool.Pool) *PgxPriceListRepository {
	return &PgxPriceListRepository{BaseRepository: BaseRepository{Pool: db}}
}

const priceListColumns = `price_list_id, title, description, active, owner_user_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanPriceList(row pgx.Row) (*models.PriceList, error) {
	var m models.PriceList
	err := row.Scan(
		&m.PriceListID, &m.Title, &m.Description, &m.Active, &m.OwnerUserID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// CreatePriceList inserts the list, its synthetic base currency and the seed
// 1.00 rate in a single transaction so a partially created list can never be
// observed.
func (r *PgxPriceListRepository) CreatePriceList(ctx context.Context, list domain.PriceList, base domain.Currency, seed domain.CurrencyRate) error {
	m := mapping.ToModelPriceList(list)
	mc := mapping.ToModelCurrency(base)
	mr := mapping.ToModelCurrencyRate(seed)

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO price_lists (price_list_id, title, description, active, owner_user_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.PriceListID, m.Title, m.Description, m.Active, m.OwnerUserID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapUniqueViolation(err, map[string]error{
			"price_lists_title_key": fmt.Errorf("%w: price list title already in use", apperrors.ErrDuplicate),
		})
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO currencies (currency_id, price_list_id, title, code, symbol, is_base,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		mc.CurrencyID, mc.PriceListID, mc.Title, mc.Code, mc.Symbol, mc.IsBase,
		mc.CreatedAt, mc.CreatedBy, mc.LastUpdatedAt, mc.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert base currency: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO currency_rates (rate_id, currency_id, rate, date_effective, created_by)
		VALUES ($1, $2, $3, $4, $5)`,
		mr.RateID, mr.CurrencyID, mr.Rate, mr.DateEffective, mr.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert seed rate: %w", err)
	}

	return r.Commit(ctx, tx)
}

// FindPriceListByID retrieves a price list by its ID.
func (r *PgxPriceListRepository) FindPriceListByID(ctx context.Context, priceListID string) (*domain.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists WHERE price_list_id = $1`
	m, err := scanPriceList(r.Pool.QueryRow(ctx, query, priceListID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: price list %s", apperrors.ErrNotFound, priceListID)
		}
		return nil, fmt.Errorf("failed to find price list: %w", err)
	}
	d := mapping.ToDomainPriceList(*m)
	return &d, nil
}

// ListPriceLists retrieves all price lists ordered by title.
func (r *PgxPriceListRepository) ListPriceLists(ctx context.Context) ([]domain.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists ORDER BY title`
	return r.queryPriceLists(ctx, query)
}

// ListPriceListsByOwner retrieves the price lists owned by one user, ordered by title.
func (r *PgxPriceListRepository) ListPriceListsByOwner(ctx context.Context, ownerUserID string) ([]domain.PriceList, error) {
	query := `SELECT ` + priceListColumns + ` FROM price_lists WHERE owner_user_id = $1 ORDER BY title`
	return r.queryPriceLists(ctx, query, ownerUserID)
}

func (r *PgxPriceListRepository) queryPriceLists(ctx context.Context, query string, args ...any) ([]domain.PriceList, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list price lists: %w", err)
	}
	defer rows.Close()

	var ms []models.PriceList
	for rows.Next() {
		m, err := scanPriceList(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan price list: %w", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating price lists: %w", err)
	}
	return mapping.ToDomainPriceListSlice(ms), nil
}

// UpdatePriceList persists changes to title, description and active flag.
func (r *PgxPriceListRepository) UpdatePriceList(ctx context.Context, list domain.PriceList) error {
	m := mapping.ToModelPriceList(list)
	tag, err := r.Pool.Exec(ctx, `
		UPDATE price_lists
		SET title = $1, description = $2, active = $3, last_updated_at = $4, last_updated_by = $5
		WHERE price_list_id = $6`,
		m.Title, m.Description, m.Active, m.LastUpdatedAt, m.LastUpdatedBy, m.PriceListID,
	)
	if err != nil {
		return mapUniqueViolation(err, map[string]error{
			"price_lists_title_key": fmt.Errorf("%w: price list title already in use", apperrors.ErrDuplicate),
		})
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: price list %s", apperrors.ErrNotFound, list.PriceListID)
	}
	return nil
}

// DeletePriceList removes the list; currencies, rates, assignments and price
// records cascade at the storage layer.
func (r *PgxPriceListRepository) DeletePriceList(ctx context.Context, priceListID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM price_lists WHERE price_list_id = $1`, priceListID)
	if err != nil {
		return fmt.Errorf("failed to delete price list: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: price list %s", apperrors.ErrNotFound, priceListID)
	}
	return nil
}

// SaveMembership inserts a membership row.
func (r *PgxPriceListRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	m := mapping.ToModelMembership(membership)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO price_list_memberships (price_list_id, user_id, role, active, joined_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.PriceListID, m.UserID, m.Role, m.Active, m.JoinedAt,
	)
	if err != nil {
		return mapUniqueViolation(err, map[string]error{
			"price_list_memberships_pkey": fmt.Errorf("%w: user is already a member of this price list", apperrors.ErrDuplicate),
		})
	}
	return nil
}

// FindMembership retrieves one membership, active or not.
func (r *PgxPriceListRepository) FindMembership(ctx context.Context, priceListID, userID string) (*domain.Membership, error) {
	var m models.Membership
	err := r.Pool.QueryRow(ctx, `
		SELECT price_list_id, user_id, role, active, joined_at
		FROM price_list_memberships
		WHERE price_list_id = $1 AND user_id = $2`,
		priceListID, userID,
	).Scan(&m.PriceListID, &m.UserID, &m.Role, &m.Active, &m.JoinedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: membership", apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find membership: %w", err)
	}
	d := mapping.ToDomainMembership(m)
	return &d, nil
}

// ListMemberships retrieves all memberships of a price list.
func (r *PgxPriceListRepository) ListMemberships(ctx context.Context, priceListID string) ([]domain.Membership, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT price_list_id, user_id, role, active, joined_at
		FROM price_list_memberships
		WHERE price_list_id = $1
		ORDER BY joined_at`,
		priceListID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var ds []domain.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.PriceListID, &m.UserID, &m.Role, &m.Active, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		ds = append(ds, mapping.ToDomainMembership(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating memberships: %w", err)
	}
	return ds, nil
}

// DeactivateMembership marks a membership inactive without removing it.
func (r *PgxPriceListRepository) DeactivateMembership(ctx context.Context, priceListID, userID string) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE price_list_memberships SET active = FALSE
		WHERE price_list_id = $1 AND user_id = $2`,
		priceListID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to deactivate membership: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: membership", apperrors.ErrNotFound)
	}
	return nil
}
