package dto

import (
	"time"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	"github.com/menix-gg/arena-backend/internal/domain/usecase/registration"
)

// RegisterRequest identifies the registering user; the tournament comes
// from the URL path.
type RegisterRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// RegistrationResponse is the API view of a registration record
type RegistrationResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"userId"`
	TournamentID string    `json:"tournamentId"`
	AmountPaid   int64     `json:"amountPaid"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewRegistrationResponse converts a registration entity to its API view
func NewRegistrationResponse(r *entity.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		UserID:       r.UserID,
		TournamentID: r.TournamentID,
		AmountPaid:   r.AmountPaid,
		CreatedAt:    r.CreatedAt,
	}
}

// RegisterResponse wraps a successful registration with the post-debit
// wallet balance.
type RegisterResponse struct {
	Success      bool                 `json:"success"`
	Registration RegistrationResponse `json:"registration"`
	Wallet       int64                `json:"wallet"`
}

// NewRegisterResponse builds the response from a registration result
func NewRegisterResponse(result *registration.Result) RegisterResponse {
	return RegisterResponse{
		Success:      true,
		Registration: NewRegistrationResponse(result.Registration),
		Wallet:       result.Wallet,
	}
}
