package dto

import (
	"time"

	"github.com/printkit/pricelist_backend/internal/core/domain"
)

// RegisterUserRequest defines the data needed to create a new user.
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required,max=64"`
	Username string `json:"username" binding:"required,alphanum,min=3,max=32"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for a token login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID    string    `json:"userID"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	IsStaff   bool      `json:"isStaff"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Username:  u.Username,
		IsStaff:   u.IsStaff,
		CreatedAt: u.CreatedAt,
	}
}
