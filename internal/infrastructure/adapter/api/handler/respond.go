package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	domainerr "github.com/menix-gg/arena-backend/internal/domain/error"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error onto the standard failure envelope.
// Internal errors are masked; the detail stays in the logs.
func respondError(c *gin.Context, err error) {
	status := domainerr.HTTPStatus(err)
	message := err.Error()
	if status >= 500 {
		message = domainerr.ErrInternalServer.Error()
	}

	// Wrapped conflict errors carry context meant for logs, not clients
	var regErr *domainerr.RegistrationError
	if errors.As(err, &regErr) {
		message = regErr.Unwrap().Error()
	}

	c.JSON(status, dto.NewErrorResponse(domainerr.ErrorCode(err), message))
}

// respondBadRequest reports a binding/validation failure
func respondBadRequest(c *gin.Context, detail string) {
	c.JSON(400, dto.NewErrorResponse(domainerr.CodeValidation, detail))
}
