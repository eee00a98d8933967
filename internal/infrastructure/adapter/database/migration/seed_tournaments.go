package migration

import (
	"context"
	"time"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
)

// sampleTournaments mirrors the launch lineup used in early environments
var sampleTournaments = []entity.Tournament{
	{
		Name:        "BGMI Solo Showdown",
		Type:        entity.TypeSolo,
		MatchType:   "Solo",
		Map:         "Erangel",
		GameMode:    "Classic",
		Perspective: "TPP",
		Status:      entity.StatusActive,
		EntryFee:    50,
		Prize:       1000,
		TotalSlots:  25,
		StartTime:   time.Date(2024, 6, 10, 18, 0, 0, 0, time.UTC),
		Duration:    "30 minutes",
		Rounds:      4,
		RoomID:      "SOLO001",
	},
	{
		Name:        "BGMI Squad Battle",
		Type:        entity.TypeSquad,
		MatchType:   "Squad (4 Players)",
		Map:         "Miramar",
		GameMode:    "Classic",
		Perspective: "TPP",
		Status:      entity.StatusUpcoming,
		EntryFee:    200,
		Prize:       5000,
		TotalSlots:  25,
		StartTime:   time.Date(2024, 6, 8, 15, 30, 0, 0, time.UTC),
		Duration:    "35 minutes",
		Rounds:      3,
		RoomID:      "SQUAD001",
	},
	{
		Name:        "BGMI Pro League",
		Type:        entity.TypeSquad,
		MatchType:   "Squad (4 Players)",
		Map:         "Sanhok",
		GameMode:    "Classic",
		Perspective: "FPP",
		Status:      entity.StatusActive,
		EntryFee:    100,
		Prize:       2000,
		TotalSlots:  25,
		StartTime:   time.Date(2024, 6, 12, 20, 0, 0, 0, time.UTC),
		Duration:    "25 minutes",
		Rounds:      5,
		RoomID:      "PRO001",
	},
}

// SeedTournaments inserts the sample tournaments when the table is empty.
// Non-empty stores are left untouched so restarts never duplicate data.
func SeedTournaments(
	ctx context.Context,
	tournamentRepo persistence.TournamentRepository,
	tournaments *tournamentUseCase.TournamentUseCase,
	logger coreport.Logger,
) error {
	count, err := tournamentRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Tournaments already present, skipping seed", map[string]any{
			"count": count,
		})
		return nil
	}

	for _, draft := range sampleTournaments {
		if _, err := tournaments.CreateTournament(ctx, draft); err != nil {
			return err
		}
	}

	logger.Info("Seeded sample tournaments", map[string]any{
		"count": len(sampleTournaments),
	})
	return nil
}
