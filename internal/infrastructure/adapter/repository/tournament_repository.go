package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/model"
)

// TournamentRepository implements persistence.TournamentRepository using GORM
type TournamentRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewTournamentRepository creates a new TournamentRepository instance
func NewTournamentRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *TournamentRepository {
	return &TournamentRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *TournamentRepository) modelToEntity(m *model.Tournament) *entity.Tournament {
	return &entity.Tournament{
		ID:           m.ID,
		Name:         m.Name,
		Type:         entity.TournamentType(m.Type),
		MatchType:    m.MatchType,
		Map:          m.Map,
		GameMode:     m.GameMode,
		Perspective:  m.Perspective,
		Status:       entity.TournamentStatus(m.Status),
		EntryFee:     m.EntryFee,
		Prize:        m.Prize,
		Joined:       m.Joined,
		TotalSlots:   m.TotalSlots,
		StartTime:    m.StartTime,
		Duration:     m.Duration,
		Rounds:       m.Rounds,
		RoomID:       m.RoomID,
		RoomPassword: m.RoomPassword,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func (r *TournamentRepository) entityToModel(t *entity.Tournament) *model.Tournament {
	return &model.Tournament{
		ID:           t.ID,
		Name:         t.Name,
		Type:         string(t.Type),
		MatchType:    t.MatchType,
		Map:          t.Map,
		GameMode:     t.GameMode,
		Perspective:  t.Perspective,
		Status:       string(t.Status),
		EntryFee:     t.EntryFee,
		Prize:        t.Prize,
		Joined:       t.Joined,
		TotalSlots:   t.TotalSlots,
		StartTime:    t.StartTime,
		Duration:     t.Duration,
		Rounds:       t.Rounds,
		RoomID:       t.RoomID,
		RoomPassword: t.RoomPassword,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
	}
}

func (r *TournamentRepository) handleDatabaseError(operation string, err error, tournamentID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Tournament not found", map[string]any{
			"tournament_id": tournamentID,
		})
		return errs.ErrTournamentNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"tournament_id": tournamentID,
		"error":         err.Error(),
	})

	if r.errorClassifier.IsCheckViolation(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a tournament by ID
func (r *TournamentRepository) GetByID(ctx context.Context, id string) (*entity.Tournament, error) {
	var m model.Tournament
	result := r.db.WithContext(ctx).First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting tournament", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// GetByIDForUpdate retrieves a tournament and takes an exclusive row lock,
// serializing concurrent registrations against the same tournament.
func (r *TournamentRepository) GetByIDForUpdate(ctx context.Context, id string) (*entity.Tournament, error) {
	var m model.Tournament
	result := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("locking tournament", result.Error, id)
	}
	return r.modelToEntity(&m), nil
}

// List returns tournaments matching the filter, newest first
func (r *TournamentRepository) List(ctx context.Context, filter persistence.TournamentFilter) ([]*entity.Tournament, error) {
	query := r.db.WithContext(ctx).Model(&model.Tournament{})
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.Type != "" {
		query = query.Where("type = ?", string(filter.Type))
	}

	var models []model.Tournament
	result := query.Order("created_at DESC").Find(&models)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing tournaments", result.Error, "")
	}

	tournaments := make([]*entity.Tournament, 0, len(models))
	for i := range models {
		tournaments = append(tournaments, r.modelToEntity(&models[i]))
	}
	return tournaments, nil
}

// Create persists a new tournament
func (r *TournamentRepository) Create(ctx context.Context, tournament *entity.Tournament) error {
	result := r.db.WithContext(ctx).Create(r.entityToModel(tournament))
	if result.Error != nil {
		return r.handleDatabaseError("creating tournament", result.Error, tournament.ID)
	}

	r.logger.Info("Tournament persisted", map[string]any{
		"tournament_id": tournament.ID,
		"name":          tournament.Name,
	})
	return nil
}

// ReserveSlot atomically increments the registrant count. The WHERE clause
// is the capacity and status guard evaluated by the store; zero rows
// affected means the slot race was lost or the tournament closed.
func (r *TournamentRepository) ReserveSlot(ctx context.Context, tournamentID string) error {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("id = ? AND joined < total_slots AND status IN ?",
			tournamentID,
			[]string{string(entity.StatusUpcoming), string(entity.StatusActive)}).
		Updates(map[string]interface{}{
			"joined":     gorm.Expr("joined + 1"),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("reserving slot", result.Error, tournamentID)
	}

	if result.RowsAffected == 0 {
		var m model.Tournament
		if err := r.db.WithContext(ctx).First(&m, "id = ?", tournamentID).Error; err != nil {
			return r.handleDatabaseError("reserving slot", err, tournamentID)
		}
		status := entity.TournamentStatus(m.Status)
		if status != entity.StatusUpcoming && status != entity.StatusActive {
			return errs.ErrTournamentClosed
		}
		r.logger.Warn("Slot reservation rejected, tournament full", map[string]any{
			"tournament_id": tournamentID,
			"joined":        m.Joined,
			"total_slots":   m.TotalSlots,
		})
		return errs.ErrTournamentFull
	}
	return nil
}

// UpdateStatus transitions a tournament's lifecycle state. Completed rows
// are excluded by the store so the roster of a finished tournament can
// never thaw.
func (r *TournamentRepository) UpdateStatus(ctx context.Context, tournamentID string, status entity.TournamentStatus) error {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("id = ? AND status <> ?", tournamentID, string(entity.StatusCompleted)).
		Updates(map[string]interface{}{
			"status":     string(status),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return r.handleDatabaseError("updating tournament status", result.Error, tournamentID)
	}

	if result.RowsAffected == 0 {
		var m model.Tournament
		if err := r.db.WithContext(ctx).First(&m, "id = ?", tournamentID).Error; err != nil {
			return r.handleDatabaseError("updating tournament status", err, tournamentID)
		}
		return errs.ErrTournamentClosed
	}
	return nil
}

// ActivateStarted promotes every Upcoming tournament whose start time has
// passed to Active, returning how many were promoted.
func (r *TournamentRepository) ActivateStarted(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).
		Where("status = ? AND start_time <= ?", string(entity.StatusUpcoming), now).
		Updates(map[string]interface{}{
			"status":     string(entity.StatusActive),
			"updated_at": now,
		})
	if result.Error != nil {
		return 0, r.handleDatabaseError("activating started tournaments", result.Error, "")
	}
	return result.RowsAffected, nil
}

// Count returns the number of stored tournaments
func (r *TournamentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Tournament{}).Count(&count)
	if result.Error != nil {
		return 0, r.handleDatabaseError("counting tournaments", result.Error, "")
	}
	return count, nil
}
