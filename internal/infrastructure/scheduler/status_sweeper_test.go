package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
	coremocks "github.com/menix-gg/arena-backend/mocks/port/core"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestStatusSweeperRunsPeriodically(t *testing.T) {
	swept := make(chan struct{}, 16)

	repo := persistencemocks.NewMockTournamentRepository(t)
	repo.EXPECT().ActivateStarted(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, now time.Time) (int64, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 1, nil
		}).Maybe()

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Maybe()

	tournaments := tournamentUseCase.NewTournamentUseCase(repo, tp, relaxedLogger(t))

	sweeper, err := NewStatusSweeper(tournaments, 10*time.Millisecond, relaxedLogger(t))
	require.NoError(t, err)
	require.NoError(t, sweeper.Start())
	defer func() { _ = sweeper.Stop() }()

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep never ran")
	}
}

func TestStatusSweeperStop(t *testing.T) {
	repo := persistencemocks.NewMockTournamentRepository(t)
	repo.EXPECT().ActivateStarted(mock.Anything, mock.Anything).Return(0, nil).Maybe()

	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(time.Now()).Maybe()

	tournaments := tournamentUseCase.NewTournamentUseCase(repo, tp, relaxedLogger(t))

	sweeper, err := NewStatusSweeper(tournaments, time.Hour, relaxedLogger(t))
	require.NoError(t, err)
	require.NoError(t, sweeper.Start())

	assert.NoError(t, sweeper.Stop())
}
