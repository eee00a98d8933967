package persistence

import (
	"context"
	"time"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
)

// TournamentFilter narrows tournament listings. Zero values match everything.
type TournamentFilter struct {
	Status entity.TournamentStatus
	Type   entity.TournamentType
}

// TournamentRepository defines the methods to interact with tournament data
type TournamentRepository interface {
	// GetByID retrieves a tournament by ID
	//
	// Possible errors:
	// - ErrTournamentNotFound: If tournament doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id string) (*entity.Tournament, error)

	// GetByIDForUpdate retrieves a tournament and takes an exclusive row
	// lock, serializing concurrent registrations for the same tournament.
	// Only meaningful inside a unit of work.
	GetByIDForUpdate(ctx context.Context, id string) (*entity.Tournament, error)

	// List returns tournaments matching the filter, newest first
	List(ctx context.Context, filter TournamentFilter) ([]*entity.Tournament, error)

	// Create persists a new tournament
	Create(ctx context.Context, tournament *entity.Tournament) error

	// ReserveSlot atomically increments the registrant count, only while
	// capacity remains and the status accepts registrations. The guard is
	// evaluated by the store in one conditional update.
	//
	// Possible errors:
	// - ErrTournamentNotFound: If tournament doesn't exist
	// - ErrTournamentFull: If every slot is taken
	// - ErrTournamentClosed: If the status does not accept registrations
	// - ErrDatabaseConnection: If database connection fails
	ReserveSlot(ctx context.Context, tournamentID string) error

	// UpdateStatus transitions a tournament's lifecycle state.
	// A Completed tournament is never transitioned.
	UpdateStatus(ctx context.Context, tournamentID string, status entity.TournamentStatus) error

	// ActivateStarted promotes every Upcoming tournament whose start time
	// has passed to Active, returning how many were promoted.
	ActivateStarted(ctx context.Context, now time.Time) (int64, error)

	// Count returns the number of stored tournaments
	Count(ctx context.Context) (int64, error)
}
