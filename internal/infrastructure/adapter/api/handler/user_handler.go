package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	userUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/user"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *userUseCase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Authenticate handles POST /api/users with login-or-create semantics
func (h *UserHandler) Authenticate(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "email/identifier and password are required")
		return
	}
	if req.LoginKey() == "" {
		respondBadRequest(c, "email/identifier and password are required")
		return
	}

	result, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.LoginKey(), req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.AuthResponse{
		Success: true,
		User:    dto.NewUserResponse(result.User),
	})
}

// ListUsers handles GET /api/users, returning sanitized users only
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		views = append(views, dto.NewUserResponse(u))
	}
	c.JSON(http.StatusOK, dto.UsersResponse{
		Success: true,
		Users:   views,
	})
}

// GetUser handles GET /api/users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    dto.NewUserResponse(user),
	})
}
