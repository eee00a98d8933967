package entity

import (
	"strings"
	"time"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
)

// User represents a platform user with a wallet balance
type User struct {
	ID           string    // Unique identifier (uuid)
	Username     string    // Display name
	Email        string    // Login identifier, unique
	PasswordHash string    // bcrypt hash, never exposed through the API
	wallet       int64     // Balance in currency minor units, invariant: >= 0 (private)
	CreatedAt    time.Time // When the user was created
	UpdatedAt    time.Time // When the user was last updated
}

// NewUser creates a new user with a zero wallet balance
func NewUser(id, username, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, errs.ErrInvalidUserID
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, errs.ErrInvalidEmail
	}
	if passwordHash == "" {
		return nil, errs.ErrInvalidCredentials
	}
	if username == "" {
		username = DefaultUsername(email)
	}

	now := timeProvider.Now()
	return &User{
		ID:           id,
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		wallet:       0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// DefaultUsername derives a display name from the login identifier.
// For an email address this is the local part, otherwise the identifier itself.
func DefaultUsername(identifier string) string {
	if at := strings.Index(identifier, "@"); at > 0 {
		return identifier[:at]
	}
	return identifier
}

// Wallet returns the current balance in minor units
func (u *User) Wallet() int64 {
	return u.wallet
}

// SetWallet updates the balance directly (for internal use, like repositories)
func (u *User) SetWallet(amount int64, timeProvider coreport.TimeProvider) {
	u.wallet = amount
	u.UpdatedAt = timeProvider.Now()
}

// CanAfford reports whether the wallet covers the given amount
func (u *User) CanAfford(amount int64) bool {
	return u.wallet >= amount
}

// Credit adds a verified payment amount to the wallet.
// Amounts that are zero or negative are rejected.
func (u *User) Credit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount <= 0 {
		return errs.ErrInvalidAmount
	}
	u.wallet += amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts an entry fee from the wallet.
// Returns ErrInsufficientBalance if the wallet would go negative.
func (u *User) Debit(amount int64, timeProvider coreport.TimeProvider) error {
	if amount < 0 {
		return errs.ErrInvalidAmount
	}
	if u.wallet < amount {
		return errs.ErrInsufficientBalance
	}
	u.wallet -= amount
	u.UpdatedAt = timeProvider.Now()
	return nil
}
