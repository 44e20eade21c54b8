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

// PgxUserRepository implements repositories.UserRepositoryFacade using pgxpool.
type PgxUserRepository struct {
	BaseRepository
}

// NewUserRepository creates a new PgxUserRepository.
func NewUserRepository(db *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

const userColumns = `user_id, name, username, is_staff, password_hash,
	created_at, created_by, last_updated_at, last_updated_by`

func scanUser(row pgx.Row) (*models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Name, &m.Username, &m.IsStaff, &m.PasswordHash,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveUser persists a new user.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO users (user_id, name, username, is_staff, password_hash,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		m.UserID, m.Name, m.Username, m.IsStaff, m.PasswordHash,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return mapUniqueViolation(err, map[string]error{
			"users_username_key": fmt.Errorf("%w: username already taken", apperrors.ErrDuplicate),
		})
	}
	return nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, userID)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}

// FindUserByUsername retrieves a user by their unique username.
func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	m, err := scanUser(r.Pool.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	d := mapping.ToDomainUser(*m)
	return &d, nil
}
