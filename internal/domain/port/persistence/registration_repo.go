package persistence

import (
	"context"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
)

// RegistrationRepository defines the methods to interact with registration records
type RegistrationRepository interface {
	// Create persists a registration. The store enforces uniqueness of
	// (UserID, TournamentID), which is what makes duplicate registration
	// attempts safe under concurrency.
	//
	// Possible errors:
	// - ErrAlreadyRegistered: If the user already registered for this tournament
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, registration *entity.Registration) error

	// Exists reports whether a registration exists for the user and tournament
	Exists(ctx context.Context, userID, tournamentID string) (bool, error)

	// ListByTournament returns registrations for a tournament, oldest first
	ListByTournament(ctx context.Context, tournamentID string) ([]*entity.Registration, error)

	// ListByUser returns registrations made by a user, newest first
	ListByUser(ctx context.Context, userID string) ([]*entity.Registration, error)
}
