package dto

import (
	"github.com/menix-gg/arena-backend/internal/domain/entity"
)

// LoginRequest is the login-or-create payload. Either email or identifier
// carries the login key; identifier is kept for older clients.
type LoginRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Identifier string `json:"identifier"`
	Password   string `json:"password" binding:"required"`
}

// LoginKey returns the effective login identifier
func (r *LoginRequest) LoginKey() string {
	if r.Email != "" {
		return r.Email
	}
	return r.Identifier
}

// UserResponse is the sanitized user view. Credential fields are never
// serialized.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	Wallet    int64  `json:"wallet"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// NewUserResponse converts a user entity to its API view
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Wallet:   u.Wallet(),
	}
}

// AuthResponse wraps the login-or-create result
type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// UsersResponse wraps a user listing
type UsersResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}
