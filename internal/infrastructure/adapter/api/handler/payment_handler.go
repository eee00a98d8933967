package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	paymentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/payment"
	"github.com/menix-gg/arena-backend/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler handles Razorpay checkout HTTP requests
type PaymentHandler struct {
	paymentService *paymentUseCase.Service
	logger         coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(paymentService *paymentUseCase.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// GetKey handles GET /api/razorpay/key
func (h *PaymentHandler) GetKey(c *gin.Context) {
	c.JSON(http.StatusOK, dto.KeyResponse{Success: true, Key: h.paymentService.KeyID()})
}

// CreateOrder handles POST /api/razorpay/order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid order payload: "+err.Error())
		return
	}

	order, err := h.paymentService.CreateOrder(c.Request.Context(), req.Amount, req.Currency, req.Receipt)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderResponse{Success: true, Order: order})
}

// VerifyPayment handles POST /api/razorpay/verify
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req dto.VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid verify payload: "+err.Error())
		return
	}

	err := h.paymentService.VerifyAndCredit(
		c.Request.Context(),
		req.OrderID,
		req.PaymentID,
		req.Signature,
		req.UserID,
		req.Amount,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Success: true})
}
