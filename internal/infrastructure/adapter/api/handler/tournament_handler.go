package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/menix-gg/arena-backend/internal/domain/entity"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	"github.com/menix-gg/arena-backend/internal/domain/port/persistence"
	tournamentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/tournament"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/dto"
)

// TournamentHandler handles tournament-related HTTP requests
type TournamentHandler struct {
	tournamentService *tournamentUseCase.TournamentUseCase
	logger            coreport.Logger
}

// NewTournamentHandler creates a new tournament handler instance
func NewTournamentHandler(tournamentService *tournamentUseCase.TournamentUseCase, logger coreport.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: tournamentService,
		logger:            logger,
	}
}

// ListTournaments handles GET /api/tournaments with optional status/type filters
func (h *TournamentHandler) ListTournaments(c *gin.Context) {
	filter := persistence.TournamentFilter{
		Status: entity.TournamentStatus(c.Query("status")),
		Type:   entity.TournamentType(c.Query("type")),
	}

	tournaments, err := h.tournamentService.ListTournaments(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTournamentListResponse(tournaments))
}

// GetTournament handles GET /api/tournaments/:tournamentId
func (h *TournamentHandler) GetTournament(c *gin.Context) {
	tournament, err := h.tournamentService.GetTournament(c.Request.Context(), c.Param("tournamentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTournamentResponse(tournament))
}

// CreateTournament handles POST /api/tournaments (administrative)
func (h *TournamentHandler) CreateTournament(c *gin.Context) {
	var req dto.CreateTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid tournament payload: "+err.Error())
		return
	}

	created, err := h.tournamentService.CreateTournament(c.Request.Context(), req.ToEntity())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTournamentResponse(created))
}

// UpdateStatus handles PATCH /api/tournaments/:tournamentId/status (administrative)
func (h *TournamentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid status payload: "+err.Error())
		return
	}

	updated, err := h.tournamentService.TransitionStatus(
		c.Request.Context(),
		c.Param("tournamentId"),
		entity.TournamentStatus(req.Status),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTournamentResponse(updated))
}
