package registration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coremocks "github.com/menix-gg/arena-backend/mocks/port/core"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func fixedTimeProvider(t *testing.T) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()
	return mockTime
}

func testTournament(t *testing.T, entryFee int64, joined, slots int) *entity.Tournament {
	tournament, err := entity.NewTournament("t-1", entity.Tournament{
		Name:       "BGMI Solo Showdown",
		Type:       entity.TypeSolo,
		EntryFee:   entryFee,
		TotalSlots: slots,
		Joined:     joined,
	}, fixedTimeProvider(t))
	require.NoError(t, err)
	return tournament
}

func testUser(t *testing.T, wallet int64) *entity.User {
	user, err := entity.NewUser("u-1", "player1", "player1@example.com", "$2a$10$hash", fixedTimeProvider(t))
	require.NoError(t, err)
	user.SetWallet(wallet, fixedTimeProvider(t))
	return user
}

type registerFixture struct {
	uow          *persistencemocks.MockUnitOfWork
	fastPathRepo *persistencemocks.MockRegistrationRepository
	txUsers      *persistencemocks.MockUserRepository
	txTournament *persistencemocks.MockTournamentRepository
	txRegs       *persistencemocks.MockRegistrationRepository
	service      *Service
}

func newRegisterFixture(t *testing.T) *registerFixture {
	f := &registerFixture{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		fastPathRepo: persistencemocks.NewMockRegistrationRepository(t),
		txUsers:      persistencemocks.NewMockUserRepository(t),
		txTournament: persistencemocks.NewMockTournamentRepository(t),
		txRegs:       persistencemocks.NewMockRegistrationRepository(t),
	}
	f.service = NewService(f.uow, f.fastPathRepo, fixedTimeProvider(t), relaxedLogger(t))
	return f
}

func (f *registerFixture) expectTx() {
	f.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil)
	f.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(f.txTournament).Maybe()
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.txUsers).Maybe()
	f.uow.EXPECT().GetRegistrationRepository(mock.Anything).Return(f.txRegs).Maybe()
}

func TestRegisterValidation(t *testing.T) {
	t.Run("Empty user ID", func(t *testing.T) {
		f := newRegisterFixture(t)

		result, err := f.service.Register(context.Background(), "", "t-1")

		assert.Equal(t, errs.ErrInvalidUserID, err)
		assert.Nil(t, result)
	})

	t.Run("Empty tournament ID", func(t *testing.T) {
		f := newRegisterFixture(t)

		result, err := f.service.Register(context.Background(), "u-1", "")

		assert.Equal(t, errs.ErrInvalidTournamentID, err)
		assert.Nil(t, result)
	})
}

func TestRegisterDuplicateFastPath(t *testing.T) {
	f := newRegisterFixture(t)
	f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(true, nil)

	result, err := f.service.Register(context.Background(), "u-1", "t-1")

	assert.Equal(t, errs.ErrAlreadyRegistered, err)
	assert.Nil(t, result)
}

func TestRegisterSuccess(t *testing.T) {
	f := newRegisterFixture(t)
	f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
	f.expectTx()

	tournament := testTournament(t, 5000, 3, 25)
	f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
	f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 8000), nil)
	f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(nil)
	f.txUsers.EXPECT().Debit(mock.Anything, "u-1", int64(5000)).Return(testUser(t, 3000), nil)
	f.uow.EXPECT().Commit(mock.Anything).Return(nil)

	result, err := f.service.Register(context.Background(), "u-1", "t-1")

	require.NoError(t, err)
	assert.Equal(t, "u-1", result.Registration.UserID)
	assert.Equal(t, "t-1", result.Registration.TournamentID)
	assert.Equal(t, int64(5000), result.Registration.AmountPaid)
	assert.NotEmpty(t, result.Registration.ID)
	assert.Equal(t, int64(3000), result.Wallet)
	assert.Equal(t, 4, result.Tournament.Joined)
}

func TestRegisterFreeTournament(t *testing.T) {
	f := newRegisterFixture(t)
	f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
	f.expectTx()

	tournament := testTournament(t, 0, 0, 25)
	f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
	f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 0), nil)
	f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(nil)
	f.txUsers.EXPECT().Debit(mock.Anything, "u-1", int64(0)).Return(testUser(t, 0), nil)
	f.uow.EXPECT().Commit(mock.Anything).Return(nil)

	result, err := f.service.Register(context.Background(), "u-1", "t-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Registration.AmountPaid)
	assert.Equal(t, int64(0), result.Wallet)
}

func TestRegisterRollsBackOnFailure(t *testing.T) {
	t.Run("Tournament full", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 25, 25)
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		assert.Equal(t, errs.ErrTournamentFull, err)
		assert.Nil(t, result)
	})

	t.Run("Tournament completed", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 0, 25)
		require.NoError(t, tournament.TransitionTo(entity.StatusCompleted, fixedTimeProvider(t)))
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		assert.Equal(t, errs.ErrTournamentClosed, err)
		assert.Nil(t, result)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 0, 25)
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 4999), nil)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrInsufficientBalance))
		assert.Nil(t, result)

		var regErr *errs.RegistrationError
		require.True(t, errors.As(err, &regErr))
		assert.Equal(t, int64(5000), regErr.EntryFee)
		assert.Equal(t, int64(4999), regErr.Wallet)
	})

	t.Run("Duplicate insert inside the transaction", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 0, 25)
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 8000), nil)
		f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrAlreadyRegistered)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		assert.Equal(t, errs.ErrAlreadyRegistered, err)
		assert.Nil(t, result)
	})

	t.Run("Lost slot race during conditional update", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 24, 25)
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 8000), nil)
		f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(errs.ErrTournamentFull)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		assert.Equal(t, errs.ErrTournamentFull, err)
		assert.Nil(t, result)
	})

	t.Run("Debit failure aborts the unit", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
		f.expectTx()

		tournament := testTournament(t, 5000, 0, 25)
		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
		f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 8000), nil)
		f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
		f.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(nil)
		f.txUsers.EXPECT().Debit(mock.Anything, "u-1", int64(5000)).
			Return(nil, errs.NewRegistrationError("u-1", "t-1", 5000, 0, errs.ErrInsufficientBalance))
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "t-1")

		assert.True(t, errors.Is(err, errs.ErrInsufficientBalance))
		assert.Nil(t, result)
	})

	t.Run("Unknown tournament", func(t *testing.T) {
		f := newRegisterFixture(t)
		f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "ghost").Return(false, nil)
		f.expectTx()

		f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "ghost").Return(nil, errs.ErrTournamentNotFound)
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil)

		result, err := f.service.Register(context.Background(), "u-1", "ghost")

		assert.Equal(t, errs.ErrTournamentNotFound, err)
		assert.Nil(t, result)
	})
}

func TestRegisterCommitFailure(t *testing.T) {
	f := newRegisterFixture(t)
	f.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil)
	f.expectTx()

	tournament := testTournament(t, 5000, 0, 25)
	f.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(tournament, nil)
	f.txUsers.EXPECT().GetByID(mock.Anything, "u-1").Return(testUser(t, 8000), nil)
	f.txRegs.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	f.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(nil)
	f.txUsers.EXPECT().Debit(mock.Anything, "u-1", int64(5000)).Return(testUser(t, 3000), nil)
	f.uow.EXPECT().Commit(mock.Anything).Return(errs.ErrDatabaseConnection)

	result, err := f.service.Register(context.Background(), "u-1", "t-1")

	assert.Equal(t, errs.ErrDatabaseConnection, err)
	assert.Nil(t, result)
}
