package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	paymentport "github.com/menix-gg/arena-backend/internal/domain/port/payment"
	paymentUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/payment"
	userUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/user"
	paymentmocks "github.com/menix-gg/arena-backend/mocks/port/payment"
	persistencemocks "github.com/menix-gg/arena-backend/mocks/port/persistence"
)

const checkoutSecret = "test_secret"

type paymentRig struct {
	gateway  *paymentmocks.MockGateway
	userRepo *persistencemocks.MockUserRepository
	router   *gin.Engine
}

func newPaymentRig(t *testing.T) *paymentRig {
	rig := &paymentRig{
		gateway:  paymentmocks.NewMockGateway(t),
		userRepo: persistencemocks.NewMockUserRepository(t),
	}

	users := userUseCase.NewUserUseCase(rig.userRepo, fixedTimeProvider(t), relaxedLogger(t))
	service := paymentUseCase.NewService(rig.gateway, users, checkoutSecret, relaxedLogger(t))
	h := NewPaymentHandler(service, relaxedLogger(t))

	rig.router = gin.New()
	rig.router.GET("/api/razorpay/key", h.GetKey)
	rig.router.POST("/api/razorpay/order", h.CreateOrder)
	rig.router.POST("/api/razorpay/verify", h.VerifyPayment)
	return rig
}

func TestGetKeyEndpoint(t *testing.T) {
	rig := newPaymentRig(t)
	rig.gateway.EXPECT().KeyID().Return("rzp_test_abc123").Once()

	w := httptest.NewRecorder()
	rig.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/razorpay/key", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"key":"rzp_test_abc123"`)
}

func TestCreateOrderEndpoint(t *testing.T) {
	t.Run("creates an order", func(t *testing.T) {
		rig := newPaymentRig(t)
		rig.gateway.EXPECT().CreateOrder(mock.Anything, int64(50000), "INR", mock.Anything).
			Return(&paymentport.Order{
				ID: "order_1", Amount: 50000, Currency: "INR", Status: "created",
			}, nil).Once()

		w := postJSON(rig.router, "/api/razorpay/order", gin.H{"amount": 50000})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"order_1"`)
	})

	t.Run("zero amount is 400", func(t *testing.T) {
		rig := newPaymentRig(t)

		w := postJSON(rig.router, "/api/razorpay/order", gin.H{"amount": 0})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("gateway failure is masked as an internal error", func(t *testing.T) {
		rig := newPaymentRig(t)
		rig.gateway.EXPECT().CreateOrder(mock.Anything, int64(50000), "INR", mock.Anything).
			Return(nil, errs.ErrPaymentGateway).Once()

		w := postJSON(rig.router, "/api/razorpay/order", gin.H{"amount": 50000})

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "gateway")
	})
}

func TestVerifyPaymentEndpoint(t *testing.T) {
	signer := paymentUseCase.NewSignatureVerifier(checkoutSecret)
	sig := signer.Sign("order_1", "pay_1")

	t.Run("valid signature credits the wallet", func(t *testing.T) {
		rig := newPaymentRig(t)
		rig.userRepo.EXPECT().Credit(mock.Anything, "u-1", int64(50000)).
			Return(storedUser(t, "hunter2", 50000), nil).Once()

		w := postJSON(rig.router, "/api/razorpay/verify", gin.H{
			"razorpay_order_id":   "order_1",
			"razorpay_payment_id": "pay_1",
			"razorpay_signature":  sig,
			"userId":              "u-1",
			"amount":              50000,
		})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("forged signature is rejected and never credits", func(t *testing.T) {
		rig := newPaymentRig(t)

		w := postJSON(rig.router, "/api/razorpay/verify", gin.H{
			"razorpay_order_id":   "order_1",
			"razorpay_payment_id": "pay_1",
			"razorpay_signature":  "forged",
			"userId":              "u-1",
			"amount":              50000,
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "invalid payment signature")
	})

	t.Run("missing fields are 400", func(t *testing.T) {
		rig := newPaymentRig(t)

		w := postJSON(rig.router, "/api/razorpay/verify", gin.H{
			"razorpay_order_id": "order_1",
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
