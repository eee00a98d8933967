package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	registrationUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/registration"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/dto"
)

// RegistrationHandler handles tournament registration HTTP requests
type RegistrationHandler struct {
	registrationService *registrationUseCase.Service
	logger              coreport.Logger
}

// NewRegistrationHandler creates a new registration handler instance
func NewRegistrationHandler(registrationService *registrationUseCase.Service, logger coreport.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		logger:              logger,
	}
}

// Register handles POST /api/tournaments/:tournamentId/register
func (h *RegistrationHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid registration payload: "+err.Error())
		return
	}

	result, err := h.registrationService.Register(c.Request.Context(), req.UserID, c.Param("tournamentId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewRegisterResponse(result))
}
