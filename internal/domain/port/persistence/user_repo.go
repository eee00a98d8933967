package persistence

import (
	"context"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
)

// UserRepository defines the methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.User, error)

	// GetByEmail retrieves a user by login identifier
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has the given email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// List returns all users ordered by creation time descending
	List(ctx context.Context) ([]*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If a user with the same email already exists
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// Debit atomically subtracts amount from the wallet, only if the
	// balance covers it. The guard is evaluated by the store in a single
	// conditional update so concurrent debits cannot drive the wallet
	// negative.
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientBalance: If the wallet does not cover amount
	// - ErrDatabaseConnection: If database connection fails
	Debit(ctx context.Context, userID string, amount int64) (*entity.User, error)

	// Credit atomically adds a verified payment amount to the wallet
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is zero or negative
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	Credit(ctx context.Context, userID string, amount int64) (*entity.User, error)
}
