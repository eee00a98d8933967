package tournament

import (
	"context"

	"github.com/google/uuid"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
)

// TournamentUseCase handles tournament listing and administration
type TournamentUseCase struct {
	tournamentRepo persistence.TournamentRepository
	timeProvider   coreport.TimeProvider
	logger         coreport.Logger
}

// NewTournamentUseCase creates a new TournamentUseCase
func NewTournamentUseCase(
	tournamentRepo persistence.TournamentRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TournamentUseCase {
	return &TournamentUseCase{
		tournamentRepo: tournamentRepo,
		timeProvider:   timeProvider,
		logger:         logger,
	}
}

// ListTournaments returns tournaments matching the filter, newest first
func (t *TournamentUseCase) ListTournaments(ctx context.Context, filter persistence.TournamentFilter) ([]*entity.Tournament, error) {
	if filter.Status != "" && !entity.ValidTournamentStatus(filter.Status) {
		return nil, errs.ErrInvalidRequest
	}
	if filter.Type != "" && !entity.ValidTournamentType(filter.Type) {
		return nil, errs.ErrInvalidRequest
	}
	return t.tournamentRepo.List(ctx, filter)
}

// GetTournament returns a single tournament
func (t *TournamentUseCase) GetTournament(ctx context.Context, tournamentID string) (*entity.Tournament, error) {
	if tournamentID == "" {
		return nil, errs.ErrInvalidTournamentID
	}
	return t.tournamentRepo.GetByID(ctx, tournamentID)
}

// CreateTournament validates and persists a new tournament (administrative)
func (t *TournamentUseCase) CreateTournament(ctx context.Context, draft entity.Tournament) (*entity.Tournament, error) {
	created, err := entity.NewTournament(uuid.NewString(), draft, t.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := t.tournamentRepo.Create(ctx, created); err != nil {
		t.logger.Error("Failed to create tournament", map[string]any{
			"name":  created.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	t.logger.Info("Tournament created", map[string]any{
		"tournamentId": created.ID,
		"name":         created.Name,
		"totalSlots":   created.TotalSlots,
		"entryFee":     created.EntryFee,
	})
	return created, nil
}

// TransitionStatus moves a tournament to a new lifecycle state (administrative).
// Completed tournaments are terminal and reject any transition.
func (t *TournamentUseCase) TransitionStatus(ctx context.Context, tournamentID string, status entity.TournamentStatus) (*entity.Tournament, error) {
	if tournamentID == "" {
		return nil, errs.ErrInvalidTournamentID
	}
	if !entity.ValidTournamentStatus(status) {
		return nil, errs.ErrInvalidTournamentData
	}

	current, err := t.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := current.TransitionTo(status, t.timeProvider); err != nil {
		return nil, err
	}

	if err := t.tournamentRepo.UpdateStatus(ctx, tournamentID, status); err != nil {
		return nil, err
	}

	t.logger.Info("Tournament status updated", map[string]any{
		"tournamentId": tournamentID,
		"status":       status,
	})
	return current, nil
}

// ActivateStarted promotes Upcoming tournaments whose start time has passed.
// Invoked periodically by the scheduler.
func (t *TournamentUseCase) ActivateStarted(ctx context.Context) (int64, error) {
	promoted, err := t.tournamentRepo.ActivateStarted(ctx, t.timeProvider.Now())
	if err != nil {
		t.logger.Error("Failed to activate started tournaments", map[string]any{
			"error": err.Error(),
		})
		return 0, err
	}
	if promoted > 0 {
		t.logger.Info("Promoted started tournaments", map[string]any{
			"count": promoted,
		})
	}
	return promoted, nil
}
