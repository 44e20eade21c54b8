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

// PgxProductRepository implements repositories.ProductReader against the
// product catalog's table. Read-only: the catalog belongs to another service.
type PgxProductRepository struct {
	BaseRepository
}

// NewProductRepository creates a new PgxProductRepository.
func NewProductRepository(db *pgxpool.Pool) *PgxProductRepository {
	return &PgxProductRepository{BaseRepository: BaseRepository{Pool: db}}
}

// FindProductByID retrieves a product by its ID.
func (r *PgxProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	var m models.Product
	err := r.Pool.QueryRow(ctx,
		`SELECT product_id, title, owner_user_id FROM products WHERE product_id = $1`,
		productID,
	).Scan(&m.ProductID, &m.Title, &m.OwnerUserID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: product %s", apperrors.ErrNotFound, productID)
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	d := mapping.ToDomainProduct(m)
	return &d, nil
}

// ListAssignableProducts retrieves products owned by ownerUserID that are not
// yet assigned to the price list, keyset-paged in (title, product_id) order so
// the sequence can be restarted from any cursor.
func (r *PgxProductRepository) ListAssignableProducts(ctx context.Context, priceListID, ownerUserID, afterTitle, afterProductID string, limit int) ([]domain.Product, error) {
	query := `
		SELECT p.product_id, p.title, p.owner_user_id
		FROM products p
		WHERE p.owner_user_id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM price_list_products a
			WHERE a.price_list_id = $2 AND a.product_id = p.product_id
		  )
		  AND (p.title, p.product_id) > ($3, $4)
		ORDER BY p.title, p.product_id
		LIMIT $5`

	rows, err := r.Pool.Query(ctx, query, ownerUserID, priceListID, afterTitle, afterProductID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable products: %w", err)
	}
	defer rows.Close()

	var ms []models.Product
	for rows.Next() {
		var m models.Product
		if err := rows.Scan(&m.ProductID, &m.Title, &m.OwnerUserID); err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	return mapping.ToDomainProductSlice(ms), nil
}
