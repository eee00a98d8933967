package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	registrationUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/registration"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

type registrationRig struct {
	uow          *persistencemocks.MockUnitOfWork
	fastPathRepo *persistencemocks.MockRegistrationRepository
	txUsers      *persistencemocks.MockUserRepository
	txTournament *persistencemocks.MockTournamentRepository
	txRegs       *persistencemocks.MockRegistrationRepository
	router       *gin.Engine
}

func newRegistrationRig(t *testing.T) *registrationRig {
	rig := &registrationRig{
		uow:          persistencemocks.NewMockUnitOfWork(t),
		fastPathRepo: persistencemocks.NewMockRegistrationRepository(t),
		txUsers:      persistencemocks.NewMockUserRepository(t),
		txTournament: persistencemocks.NewMockTournamentRepository(t),
		txRegs:       persistencemocks.NewMockRegistrationRepository(t),
	}

	service := registrationUseCase.NewService(rig.uow, rig.fastPathRepo, fixedTimeProvider(t), relaxedLogger(t))
	h := NewRegistrationHandler(service, relaxedLogger(t))

	rig.router = gin.New()
	rig.router.POST("/api/tournaments/:tournamentId/register", h.Register)
	return rig
}

func (rig *registrationRig) expectTx() {
	rig.uow.EXPECT().Begin(mock.Anything).Return(context.Background(), nil)
	rig.uow.EXPECT().GetUserRepository(mock.Anything).Return(rig.txUsers).Maybe()
	rig.uow.EXPECT().GetTournamentRepository(mock.Anything).Return(rig.txTournament).Maybe()
	rig.uow.EXPECT().GetRegistrationRepository(mock.Anything).Return(rig.txRegs).Maybe()
}

func openTournament(t *testing.T, fee int64) *entity.Tournament {
	t.Helper()
	tournament, err := entity.NewTournament("t-1", entity.Tournament{
		Name:       "Night Cup",
		Type:       entity.TypeSolo,
		EntryFee:   fee,
		Joined:     3,
		TotalSlots: 25,
	}, fixedTimeProvider(t))
	if err != nil {
		t.Fatal(err)
	}
	return tournament
}

func fundedUser(t *testing.T, wallet int64) *entity.User {
	t.Helper()
	user := storedUser(t, "hunter2", wallet)
	return user
}

func TestRegisterEndpoint(t *testing.T) {
	t.Run("successful registration is 201 with the new wallet", func(t *testing.T) {
		rig := newRegistrationRig(t)
		rig.expectTx()

		rig.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil).Once()
		rig.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").
			Return(openTournament(t, 5000), nil).Once()
		rig.txUsers.EXPECT().GetByID(mock.Anything, "u-1").
			Return(fundedUser(t, 8000), nil).Once()
		rig.txRegs.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Registration")).
			Return(nil).Once()
		rig.txTournament.EXPECT().ReserveSlot(mock.Anything, "t-1").Return(nil).Once()
		rig.txUsers.EXPECT().Debit(mock.Anything, "u-1", int64(5000)).
			Return(fundedUser(t, 3000), nil).Once()
		rig.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()

		w := postJSON(rig.router, "/api/tournaments/t-1/register", gin.H{"userId": "u-1"})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"wallet":3000`)
		assert.Contains(t, w.Body.String(), `"amountPaid":5000`)
	})

	t.Run("duplicate registration is 409", func(t *testing.T) {
		rig := newRegistrationRig(t)
		rig.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(true, nil).Once()

		w := postJSON(rig.router, "/api/tournaments/t-1/register", gin.H{"userId": "u-1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), `"success":false`)
	})

	t.Run("full tournament is 409", func(t *testing.T) {
		rig := newRegistrationRig(t)
		rig.expectTx()

		full := openTournament(t, 5000)
		full.Joined = full.TotalSlots

		rig.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil).Once()
		rig.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").Return(full, nil).Once()
		rig.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		w := postJSON(rig.router, "/api/tournaments/t-1/register", gin.H{"userId": "u-1"})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("insufficient balance is 409 without leaking amounts", func(t *testing.T) {
		rig := newRegistrationRig(t)
		rig.expectTx()

		rig.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-1").Return(false, nil).Once()
		rig.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-1").
			Return(openTournament(t, 5000), nil).Once()
		rig.txUsers.EXPECT().GetByID(mock.Anything, "u-1").
			Return(fundedUser(t, 4999), nil).Once()
		rig.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		w := postJSON(rig.router, "/api/tournaments/t-1/register", gin.H{"userId": "u-1"})

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), errs.ErrInsufficientBalance.Error())
		assert.NotContains(t, w.Body.String(), "4999")
	})

	t.Run("missing userId is 400", func(t *testing.T) {
		rig := newRegistrationRig(t)

		w := postJSON(rig.router, "/api/tournaments/t-1/register", gin.H{})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown tournament is 404", func(t *testing.T) {
		rig := newRegistrationRig(t)
		rig.expectTx()

		rig.fastPathRepo.EXPECT().Exists(mock.Anything, "u-1", "t-404").Return(false, nil).Once()
		rig.txTournament.EXPECT().GetByIDForUpdate(mock.Anything, "t-404").
			Return(nil, errs.ErrTournamentNotFound).Once()
		rig.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

		w := postJSON(rig.router, "/api/tournaments/t-404/register", gin.H{"userId": "u-1"})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
