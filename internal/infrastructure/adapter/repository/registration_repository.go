package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/model"
)

// RegistrationRepository implements persistence.RegistrationRepository using GORM
type RegistrationRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewRegistrationRepository creates a new RegistrationRepository instance
func NewRegistrationRepository(db *gorm.DB, logger coreport.Logger) *RegistrationRepository {
	return &RegistrationRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func (r *RegistrationRepository) modelToEntity(m *model.Registration) *entity.Registration {
	return &entity.Registration{
		ID:           m.ID,
		UserID:       m.UserID,
		TournamentID: m.TournamentID,
		AmountPaid:   m.AmountPaid,
		CreatedAt:    m.CreatedAt,
	}
}

// Create persists a registration. The composite unique index on
// (user_id, tournament_id) turns a concurrent duplicate into
// ErrAlreadyRegistered instead of a second charge.
func (r *RegistrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	m := model.Registration{
		ID:           registration.ID,
		UserID:       registration.UserID,
		TournamentID: registration.TournamentID,
		AmountPaid:   registration.AmountPaid,
		CreatedAt:    registration.CreatedAt,
	}

	result := r.db.WithContext(ctx).Create(&m)
	if result.Error != nil {
		if r.errorClassifier.IsDuplicateKeyError(result.Error) {
			r.logger.Warn("Duplicate registration rejected", map[string]any{
				"user_id":       registration.UserID,
				"tournament_id": registration.TournamentID,
			})
			return errs.ErrAlreadyRegistered
		}
		r.logger.Error("Database error when creating registration", map[string]any{
			"user_id":       registration.UserID,
			"tournament_id": registration.TournamentID,
			"error":         result.Error.Error(),
		})
		return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return nil
}

// Exists reports whether a registration exists for the user and tournament
func (r *RegistrationRepository) Exists(ctx context.Context, userID, tournamentID string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Registration{}).
		Where("user_id = ? AND tournament_id = ?", userID, tournamentID).
		Count(&count)
	if result.Error != nil {
		return false, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}
	return count > 0, nil
}

// ListByTournament returns registrations for a tournament, oldest first
func (r *RegistrationRepository) ListByTournament(ctx context.Context, tournamentID string) ([]*entity.Registration, error) {
	var models []model.Registration
	result := r.db.WithContext(ctx).
		Where("tournament_id = ?", tournamentID).
		Order("created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	registrations := make([]*entity.Registration, 0, len(models))
	for i := range models {
		registrations = append(registrations, r.modelToEntity(&models[i]))
	}
	return registrations, nil
}

// ListByUser returns registrations made by a user, newest first
func (r *RegistrationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Registration, error) {
	var models []model.Registration
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, result.Error.Error())
	}

	registrations := make([]*entity.Registration, 0, len(models))
	for i := range models {
		registrations = append(registrations, r.modelToEntity(&models[i]))
	}
	return registrations, nil
}
