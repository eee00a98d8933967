package persistence

import (
	"context"
)

// UnitOfWork coordinates repository operations inside a single store
// transaction so a registration either applies all of its effects
// (slot reservation, wallet debit, registration record) or none.
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTournamentRepository returns a tournament repository bound to the current transaction
	GetTournamentRepository(ctx context.Context) TournamentRepository

	// GetRegistrationRepository returns a registration repository bound to the current transaction
	GetRegistrationRepository(ctx context.Context) RegistrationRepository
}
