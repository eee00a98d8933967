package entity

import (
	"time"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
)

// Registration is the join entity between a user and a tournament.
// Uniqueness of (UserID, TournamentID) is enforced by the store so a
// duplicate attempt can never double-charge.
type Registration struct {
	ID           string
	UserID       string
	TournamentID string
	AmountPaid   int64 // Entry fee captured at registration time, minor units
	CreatedAt    time.Time
}

// NewRegistration creates a registration record for a user joining a tournament
func NewRegistration(id, userID, tournamentID string, amountPaid int64, timeProvider coreport.TimeProvider) (*Registration, error) {
	if id == "" {
		return nil, errs.ErrInvalidRegistrationID
	}
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if tournamentID == "" {
		return nil, errs.ErrInvalidTournamentID
	}
	if amountPaid < 0 {
		return nil, errs.ErrInvalidAmount
	}

	return &Registration{
		ID:           id,
		UserID:       userID,
		TournamentID: tournamentID,
		AmountPaid:   amountPaid,
		CreatedAt:    timeProvider.Now(),
	}, nil
}
