package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

func tournamentRouter(t *testing.T, repo *persistencemocks.MockTournamentRepository) *gin.Engine {
	tournaments := tournamentUseCase.NewTournamentUseCase(repo, fixedTimeProvider(t), relaxedLogger(t))
	h := NewTournamentHandler(tournaments, relaxedLogger(t))

	router := gin.New()
	router.GET("/api/tournaments", h.ListTournaments)
	router.GET("/api/tournaments/:tournamentId", h.GetTournament)
	router.POST("/api/tournaments", h.CreateTournament)
	router.PATCH("/api/tournaments/:tournamentId/status", h.UpdateStatus)
	return router
}

func sampleTournament() *entity.Tournament {
	return &entity.Tournament{
		ID:           "t-1",
		Name:         "Night Cup",
		Type:         entity.TypeSolo,
		Status:       entity.StatusUpcoming,
		EntryFee:     5000,
		Prize:        100000,
		Joined:       3,
		TotalSlots:   25,
		StartTime:    time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC),
		RoomPassword: "secret-room-pass",
	}
}

func TestListTournamentsEndpoint(t *testing.T) {
	t.Run("passes query filters through", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().List(mock.Anything, persistence.TournamentFilter{
			Status: entity.StatusUpcoming,
			Type:   entity.TypeSolo,
		}).Return([]*entity.Tournament{sampleTournament()}, nil).Once()

		w := httptest.NewRecorder()
		tournamentRouter(t, repo).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/tournaments?status=Upcoming&type=Solo", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"name":"Night Cup"`)
	})

	t.Run("room password never appears in listings", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().List(mock.Anything, persistence.TournamentFilter{}).
			Return([]*entity.Tournament{sampleTournament()}, nil).Once()

		w := httptest.NewRecorder()
		tournamentRouter(t, repo).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/tournaments", nil))

		assert.NotContains(t, w.Body.String(), "secret-room-pass")
		assert.NotContains(t, w.Body.String(), "roomPassword")
	})

	t.Run("unknown status filter is 400", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)

		w := httptest.NewRecorder()
		tournamentRouter(t, repo).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/tournaments?status=Cancelled", nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetTournamentEndpoint(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "t-1").Return(sampleTournament(), nil).Once()

		w := httptest.NewRecorder()
		tournamentRouter(t, repo).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/tournaments/t-1", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"joined":3`)
	})

	t.Run("missing tournament is 404", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "t-404").
			Return(nil, errs.ErrTournamentNotFound).Once()

		w := httptest.NewRecorder()
		tournamentRouter(t, repo).ServeHTTP(w,
			httptest.NewRequest(http.MethodGet, "/api/tournaments/t-404", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCreateTournamentEndpoint(t *testing.T) {
	t.Run("valid payload is 201", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.Tournament")).
			Return(nil).Once()

		w := postJSON(tournamentRouter(t, repo), "/api/tournaments", gin.H{
			"name":       "Erangel Classic",
			"type":       "Squad",
			"entryFee":   2500,
			"prize":      50000,
			"totalSlots": 16,
			"startTime":  "2025-06-10T18:00:00Z",
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Upcoming"`)
	})

	t.Run("binding rejects an unknown type", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)

		w := postJSON(tournamentRouter(t, repo), "/api/tournaments", gin.H{
			"name":       "Erangel Classic",
			"type":       "Duo",
			"totalSlots": 16,
			"startTime":  "2025-06-10T18:00:00Z",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("binding rejects zero slots", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)

		w := postJSON(tournamentRouter(t, repo), "/api/tournaments", gin.H{
			"name":      "Erangel Classic",
			"type":      "Squad",
			"startTime": "2025-06-10T18:00:00Z",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUpdateStatusEndpoint(t *testing.T) {
	t.Run("promotes to active", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "t-1").Return(sampleTournament(), nil).Once()
		repo.EXPECT().UpdateStatus(mock.Anything, "t-1", entity.StatusActive).Return(nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/tournaments/t-1/status",
			jsonBody(gin.H{"status": "Active"}))
		req.Header.Set("Content-Type", "application/json")
		tournamentRouter(t, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"status":"Active"`)
	})

	t.Run("completed tournament rejects the transition with 409", func(t *testing.T) {
		done := sampleTournament()
		done.Status = entity.StatusCompleted

		repo := persistencemocks.NewMockTournamentRepository(t)
		repo.EXPECT().GetByID(mock.Anything, "t-1").Return(done, nil).Once()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/tournaments/t-1/status",
			jsonBody(gin.H{"status": "Active"}))
		req.Header.Set("Content-Type", "application/json")
		tournamentRouter(t, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("binding rejects an unknown status", func(t *testing.T) {
		repo := persistencemocks.NewMockTournamentRepository(t)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPatch, "/api/tournaments/t-1/status",
			jsonBody(gin.H{"status": "Paused"}))
		req.Header.Set("Content-Type", "application/json")
		tournamentRouter(t, repo).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
