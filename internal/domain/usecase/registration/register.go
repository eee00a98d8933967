package registration

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
)

// Register reserves a slot in the tournament for the user and debits the
// entry fee from their wallet.
//
// All effects happen inside a single store transaction: the tournament row
// is locked, the registration insert is guarded by the store's uniqueness
// constraint, and the slot increment and wallet debit are conditional
// updates re-checked by the store. Any failure aborts the whole unit, so a
// debit can never happen without a reserved slot or vice versa. Because the
// mutual exclusion lives in the database, arbitrarily many server processes
// can race safely.
func (s *Service) Register(ctx context.Context, userID, tournamentID string) (*Result, error) {
	if userID == "" {
		return nil, errs.ErrInvalidUserID
	}
	if tournamentID == "" {
		return nil, errs.ErrInvalidTournamentID
	}

	// Duplicate fast-path: answer repeat requests without taking row locks.
	// The uniqueness constraint inside the transaction remains the actual
	// guarantee under concurrency.
	exists, err := s.registrationRepo.Exists(ctx, userID, tournamentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrAlreadyRegistered
	}

	txCtx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.registerInTx(txCtx, userID, tournamentID)
	if err != nil {
		if rbErr := s.uow.Rollback(txCtx); rbErr != nil {
			s.logger.Error("Failed to rollback registration", map[string]any{
				"userId":       userID,
				"tournamentId": tournamentID,
				"error":        rbErr.Error(),
			})
		}
		s.logFailure(userID, tournamentID, err)
		return nil, err
	}

	if err := s.uow.Commit(txCtx); err != nil {
		s.logger.Error("Failed to commit registration", map[string]any{
			"userId":       userID,
			"tournamentId": tournamentID,
			"error":        err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Registration completed", map[string]any{
		"userId":         userID,
		"tournamentId":   tournamentID,
		"registrationId": result.Registration.ID,
		"amountPaid":     result.Registration.AmountPaid,
		"wallet":         result.Wallet,
	})
	return result, nil
}

// registerInTx applies the registration inside an open transaction.
// Lock order is always tournament first, then user, so concurrent
// registrations cannot deadlock.
func (s *Service) registerInTx(txCtx context.Context, userID, tournamentID string) (*Result, error) {
	tournaments := s.uow.GetTournamentRepository(txCtx)
	users := s.uow.GetUserRepository(txCtx)
	registrations := s.uow.GetRegistrationRepository(txCtx)

	tournament, err := tournaments.GetByIDForUpdate(txCtx, tournamentID)
	if err != nil {
		return nil, err
	}
	if err := tournament.CanRegister(); err != nil {
		return nil, err
	}

	user, err := users.GetByID(txCtx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanAfford(tournament.EntryFee) {
		return nil, errs.NewRegistrationError(
			userID, tournamentID, tournament.EntryFee, user.Wallet(),
			errs.ErrInsufficientBalance,
		)
	}

	record, err := entity.NewRegistration(uuid.NewString(), userID, tournamentID, tournament.EntryFee, s.timeProvider)
	if err != nil {
		return nil, err
	}
	if err := registrations.Create(txCtx, record); err != nil {
		return nil, err
	}

	// The store re-evaluates both guards; RowsAffected checks inside the
	// repositories turn a lost race into a typed conflict, never a
	// partial effect.
	if err := tournaments.ReserveSlot(txCtx, tournamentID); err != nil {
		return nil, err
	}
	debited, err := users.Debit(txCtx, userID, tournament.EntryFee)
	if err != nil {
		return nil, err
	}

	tournament.Joined++
	return &Result{
		Registration: record,
		Tournament:   tournament,
		Wallet:       debited.Wallet(),
	}, nil
}

func (s *Service) logFailure(userID, tournamentID string, err error) {
	fields := map[string]any{
		"userId":       userID,
		"tournamentId": tournamentID,
		"error":        err.Error(),
		"error_code":   errs.ErrorCode(err),
	}

	var regErr *errs.RegistrationError
	if errors.As(err, &regErr) {
		fields = regErr.LogFields()
	}

	if errs.IsConflictError(err) || errs.IsNotFoundError(err) {
		s.logger.Warn("Registration rejected", fields)
		return
	}
	s.logger.Error("Registration failed", fields)
}
