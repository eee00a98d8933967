package migration

import (
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Manager runs schema migrations
type Manager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewManager creates a new migration manager
func NewManager(db *gorm.DB, logger coreport.Logger) *Manager {
	return &Manager{
		db:     db,
		logger: logger,
	}
}

// MigrateAll creates or updates the schema for all models. Constraint
// definitions on the models (unique registration pairs, non-negative
// wallet, joined <= total_slots) are applied here.
func (m *Manager) MigrateAll() error {
	m.logger.Info("Starting database migrations", nil)

	if err := m.db.AutoMigrate(
		&model.User{},
		&model.Tournament{},
		&model.Registration{},
	); err != nil {
		m.logger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed", nil)
	return nil
}
