package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/printkit/pricelist_backend/internal/apperrors"
	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/models"
	"github.com/printkit/pricelist_backend/internal/utils/mapping"
)

// PgxCatalogRepository implements repositories.CatalogRepositoryFacade using pgxpool.
type PgxCatalogRepository struct {
	BaseRepository
}

// NewCatalogRepository creates a new PgxCatalogRepository.
func NewCatalogRepository(db *pgxpool.Pool) *PgxCatalogRepository {
	return &PgxCatalogRepository{BaseRepository: BaseRepository{Pool: db}}
}

const assignmentColumns = `assignment_id, price_list_id, product_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanAssignment(row pgx.Row) (*models.CatalogAssignment, error) {
	var m models.CatalogAssignment
	err := row.Scan(
		&m.AssignmentID, &m.PriceListID, &m.ProductID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveAssignment persists a new assignment together with an optional seed
// price record in one transaction. (price_list_id, product_id) uniqueness is
// enforced by the database.
func (r *PgxCatalogRepository) SaveAssignment(ctx context.Context, assignment domain.CatalogAssignment, seed *domain.PriceRecord) error {
	m := mapping.ToModelAssignment(assignment)

	tx, err := r.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	_, err = tx.Exec(ctx, `
		INSERT INTO price_list_products (assignment_id, price_list_id, product_id,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.AssignmentID, m.PriceListID, m.ProductID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapUniqueViolation(err, map[string]error{
			"uq_assignments_pricelist_product": apperrors.ErrProductAlreadyAssigned,
		})
	}

	if seed != nil {
		mp := models.PriceRecord{
			PriceID:       seed.PriceID,
			AssignmentID:  seed.AssignmentID,
			Price:         seed.Price,
			DateEffective: seed.DateEffective,
			CreatedBy:     seed.CreatedBy,
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO price_list_product_prices (price_id, assignment_id, price, date_effective, created_by)
			VALUES ($1, $2, $3, $4, $5)`,
			mp.PriceID, mp.AssignmentID, mp.Price, mp.DateEffective, mp.CreatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert seed price: %w", err)
		}
	}

	return r.Commit(ctx, tx)
}

// FindAssignmentByID retrieves an assignment by its ID.
func (r *PgxCatalogRepository) FindAssignmentByID(ctx context.Context, assignmentID string) (*domain.CatalogAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM price_list_products WHERE assignment_id = $1`
	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, assignmentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: assignment %s", apperrors.ErrNotFound, assignmentID)
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	d := mapping.ToDomainAssignment(*m)
	return &d, nil
}

// FindAssignment retrieves the assignment of a product on a price list.
// Absence maps to ErrProductNotInPriceList so the resolver can surface it
// unchanged.
func (r *PgxCatalogRepository) FindAssignment(ctx context.Context, priceListID, productID string) (*domain.CatalogAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM price_list_products WHERE price_list_id = $1 AND product_id = $2`
	m, err := scanAssignment(r.Pool.QueryRow(ctx, query, priceListID, productID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrProductNotInPriceList
		}
		return nil, fmt.Errorf("failed to find assignment: %w", err)
	}
	d := mapping.ToDomainAssignment(*m)
	return &d, nil
}

// ListAssignments retrieves all assignments of a price list.
func (r *PgxCatalogRepository) ListAssignments(ctx context.Context, priceListID string) ([]domain.CatalogAssignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM price_list_products WHERE price_list_id = $1 ORDER BY created_at`
	rows, err := r.Pool.Query(ctx, query, priceListID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	defer rows.Close()

	var ds []domain.CatalogAssignment
	for rows.Next() {
		m, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		ds = append(ds, mapping.ToDomainAssignment(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignments: %w", err)
	}
	return ds, nil
}

// DeleteAssignment removes an assignment; its price history cascades.
func (r *PgxCatalogRepository) DeleteAssignment(ctx context.Context, assignmentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM price_list_products WHERE assignment_id = $1`, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: assignment %s", apperrors.ErrNotFound, assignmentID)
	}
	return nil
}

// AppendPrice inserts a price record and returns it with the storage-assigned
// insertion sequence.
func (r *PgxCatalogRepository) AppendPrice(ctx context.Context, record domain.PriceRecord) (*domain.PriceRecord, error) {
	m := models.PriceRecord{
		PriceID:       record.PriceID,
		AssignmentID:  record.AssignmentID,
		Price:         record.Price,
		DateEffective: record.DateEffective,
		CreatedBy:     record.CreatedBy,
	}
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO price_list_product_prices (price_id, assignment_id, price, date_effective, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING seq`,
		m.PriceID, m.AssignmentID, m.Price, m.DateEffective, m.CreatedBy,
	).Scan(&m.Seq)
	if err != nil {
		return nil, fmt.Errorf("failed to append price: %w", err)
	}
	d := mapping.ToDomainPriceRecord(m)
	return &d, nil
}

// PriceAt retrieves the price in force strictly before at, ties broken by
// insertion sequence.
func (r *PgxCatalogRepository) PriceAt(ctx context.Context, assignmentID string, at time.Time) (*domain.PriceRecord, error) {
	var m models.PriceRecord
	err := r.Pool.QueryRow(ctx, `
		SELECT price_id, assignment_id, price, date_effective, seq, created_by
		FROM price_list_product_prices
		WHERE assignment_id = $1 AND date_effective < $2
		ORDER BY date_effective DESC, seq DESC
		LIMIT 1`,
		assignmentID, at,
	).Scan(&m.PriceID, &m.AssignmentID, &m.Price, &m.DateEffective, &m.Seq, &m.CreatedBy)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoPriceDefined
		}
		return nil, fmt.Errorf("failed to resolve price: %w", err)
	}
	d := mapping.ToDomainPriceRecord(m)
	return &d, nil
}

// ListPrices retrieves an assignment's full price history, oldest first.
func (r *PgxCatalogRepository) ListPrices(ctx context.Context, assignmentID string) ([]domain.PriceRecord, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT price_id, assignment_id, price, date_effective, seq, created_by
		FROM price_list_product_prices
		WHERE assignment_id = $1
		ORDER BY date_effective, seq`,
		assignmentID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}
	defer rows.Close()

	var ds []domain.PriceRecord
	for rows.Next() {
		var m models.PriceRecord
		if err := rows.Scan(&m.PriceID, &m.AssignmentID, &m.Price, &m.DateEffective, &m.Seq, &m.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan price: %w", err)
		}
		ds = append(ds, mapping.ToDomainPriceRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating prices: %w", err)
	}
	return ds, nil
}
