package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
)

// AuthResult is the outcome of a login-or-create attempt
type AuthResult struct {
	User    *entity.User
	Created bool // true when a new account was provisioned
}

// Authenticate implements login-or-create semantics keyed on the email (or
// free-form identifier). An existing account requires a matching password;
// an unknown identifier provisions a fresh account with a zero wallet.
// Passwords are stored as bcrypt hashes, never in plaintext.
func (u *UserUseCase) Authenticate(ctx context.Context, username, identifier, password string) (*AuthResult, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" {
		return nil, errs.ErrInvalidEmail
	}
	if password == "" {
		return nil, errs.ErrInvalidCredentials
	}

	existing, err := u.userRepo.GetByEmail(ctx, identifier)
	if err != nil && !errors.Is(err, errs.ErrUserNotFound) {
		u.logger.Error("Failed to look up user", map[string]any{
			"email": identifier,
			"error": err.Error(),
		})
		return nil, err
	}

	if existing != nil {
		// bcrypt comparison is constant-time over the hash
		if err := bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(password)); err != nil {
			u.logger.Warn("Password mismatch", map[string]any{
				"email": identifier,
			})
			return nil, errs.ErrInvalidCredentials
		}

		u.logger.Info("User authenticated", map[string]any{
			"userId": existing.ID,
			"email":  existing.Email,
		})
		return &AuthResult{User: existing, Created: false}, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.ErrInternalServer
	}

	created, err := entity.NewUser(uuid.NewString(), username, identifier, string(hash), u.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(ctx, created); err != nil {
		if errors.Is(err, errs.ErrDuplicateUser) {
			// Lost a signup race for the same email; treat as a failed login
			// rather than leaking account existence.
			return nil, errs.ErrInvalidCredentials
		}
		u.logger.Error("Failed to create user", map[string]any{
			"email": identifier,
			"error": err.Error(),
		})
		return nil, err
	}

	u.logger.Info("User created", map[string]any{
		"userId": created.ID,
		"email":  created.Email,
	})
	return &AuthResult{User: created, Created: true}, nil
}
