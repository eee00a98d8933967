package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to a domain entity
func (r *UserRepository) modelToEntity(userModel *model.User) *entity.User {
	user := &entity.User{
		ID:           userModel.ID,
		Username:     userModel.Username,
		Email:        userModel.Email,
		PasswordHash: userModel.PasswordHash,
		CreatedAt:    userModel.CreatedAt,
		UpdatedAt:    userModel.UpdatedAt,
	}
	user.SetWallet(userModel.Wallet, r.timeProvider)
	user.UpdatedAt = userModel.UpdatedAt
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateUser
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "id = ?", id)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}
	return r.modelToEntity(&userModel), nil
}

// GetByEmail retrieves a user by login identifier
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, "email = ?", email)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, email)
	}
	return r.modelToEntity(&userModel), nil
}

// List returns all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&userModels)
	if result.Error != nil {
		return nil, r.handleDatabaseError("listing users", result.Error, "")
	}

	users := make([]*entity.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, r.modelToEntity(&userModels[i]))
	}
	return users, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Wallet:       user.Wallet(),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, user.ID)
	}

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// Debit atomically subtracts amount from the wallet with a store-evaluated
// balance guard. Zero rows affected means the guard failed: either the user
// is missing or the wallet cannot cover the amount.
func (r *UserRepository) Debit(ctx context.Context, userID string, amount int64) (*entity.User, error) {
	if amount < 0 {
		return nil, errs.ErrInvalidAmount
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ? AND wallet >= ?", userID, amount).
		Updates(map[string]interface{}{
			"wallet":     gorm.Expr("wallet - ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("debiting wallet", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing user from an uncovered debit
		var userModel model.User
		if err := r.db.WithContext(ctx).First(&userModel, "id = ?", userID).Error; err != nil {
			return nil, r.handleDatabaseError("debiting wallet", err, userID)
		}
		r.logger.Warn("Debit rejected, wallet below amount", map[string]any{
			"user_id": userID,
			"wallet":  userModel.Wallet,
			"amount":  amount,
		})
		return nil, errs.NewRegistrationError(userID, "", amount, userModel.Wallet, errs.ErrInsufficientBalance)
	}

	return r.GetByID(ctx, userID)
}

// Credit atomically adds amount to the wallet
func (r *UserRepository) Credit(ctx context.Context, userID string, amount int64) (*entity.User, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"wallet":     gorm.Expr("wallet + ?", amount),
			"updated_at": r.timeProvider.Now(),
		})
	if result.Error != nil {
		return nil, r.handleDatabaseError("crediting wallet", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}
