package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
)

// StatusSweeper periodically promotes Upcoming tournaments whose start
// time has passed to Active, so listings stay current without writes on
// the read path.
type StatusSweeper struct {
	tournaments *tournamentUseCase.TournamentUseCase
	logger      coreport.Logger
	scheduler   gocron.Scheduler
	interval    time.Duration
}

// NewStatusSweeper creates a sweeper running at the given interval
func NewStatusSweeper(
	tournaments *tournamentUseCase.TournamentUseCase,
	interval time.Duration,
	logger coreport.Logger,
) (*StatusSweeper, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	return &StatusSweeper{
		tournaments: tournaments,
		logger:      logger,
		scheduler:   sched,
		interval:    interval,
	}, nil
}

// Start registers the sweep job and begins running it
func (s *StatusSweeper) Start() error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sweep),
	)
	if err != nil {
		return err
	}

	s.scheduler.Start()
	s.logger.Info("Tournament status sweeper started", map[string]any{
		"interval": s.interval.String(),
	})
	return nil
}

// Stop shuts the scheduler down, waiting for a running sweep to finish
func (s *StatusSweeper) Stop() error {
	return s.scheduler.Shutdown()
}

func (s *StatusSweeper) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := s.tournaments.ActivateStarted(ctx); err != nil {
		s.logger.Error("Tournament status sweep failed", map[string]any{
			"error": err.Error(),
		})
	}
}
