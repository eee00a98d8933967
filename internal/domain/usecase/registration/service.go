package registration

import (
	"github.com/menix-gg/arena-backend/internal/domain/entity"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
)

// Service orchestrates tournament registration: slot reservation, wallet
// debit and the registration record applied as one atomic unit.
type Service struct {
	uow              persistence.UnitOfWork
	registrationRepo persistence.RegistrationRepository
	timeProvider     coreport.TimeProvider
	logger           coreport.Logger
}

// NewService creates a registration Service. registrationRepo is a
// non-transactional repository used only for the duplicate fast-path;
// all state changes go through the unit of work.
func NewService(
	uow persistence.UnitOfWork,
	registrationRepo persistence.RegistrationRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:              uow,
		registrationRepo: registrationRepo,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Result is the outcome of a successful registration
type Result struct {
	Registration *entity.Registration
	Tournament   *entity.Tournament
	Wallet       int64 // Wallet balance after the debit, minor units
}
