package services

import (
	"context"
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
	"github.com/printkit/pricelist_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// RegisterUser creates a new user with a hashed password.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)
}

// AuthenticatorSvc verifies credentials for the login flow.
type AuthenticatorSvc interface {
	// VerifyCredentials returns the user when username/password match, or
	// apperrors.ErrUnauthorized otherwise.
	VerifyCredentials(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthenticatorSvc
}

// TokenSvcFacade issues access tokens for authenticated principals.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it with
	// its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
