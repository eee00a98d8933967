package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coremocks "github.com/menix-gg/arena-backend/mocks/port/core"
)

func relaxedLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestRazorpayCreateOrder(t *testing.T) {
	t.Run("posts the order with basic auth", func(t *testing.T) {
		var gotPath, gotUser, gotPass string
		var gotBody map[string]any

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			_ = json.NewDecoder(r.Body).Decode(&gotBody)

			_ = json.NewEncoder(w).Encode(map[string]any{
				"id":       "order_abc",
				"amount":   50000,
				"currency": "INR",
				"receipt":  "rcpt_1",
				"status":   "created",
			})
		}))
		defer server.Close()

		gateway := NewRazorpayGateway("rzp_test_key", "rzp_test_secret", server.URL, relaxedLogger(t))

		order, err := gateway.CreateOrder(context.Background(), 50000, "INR", "rcpt_1")

		require.NoError(t, err)
		assert.Equal(t, "order_abc", order.ID)
		assert.Equal(t, int64(50000), order.Amount)
		assert.Equal(t, "created", order.Status)

		assert.Equal(t, "/orders", gotPath)
		assert.Equal(t, "rzp_test_key", gotUser)
		assert.Equal(t, "rzp_test_secret", gotPass)
		assert.Equal(t, float64(50000), gotBody["amount"])
		assert.Equal(t, "INR", gotBody["currency"])
	})

	t.Run("rejects non-positive amounts before any request", func(t *testing.T) {
		gateway := NewRazorpayGateway("k", "s", "http://127.0.0.1:0", relaxedLogger(t))

		_, err := gateway.CreateOrder(context.Background(), 0, "INR", "")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("provider rejection surfaces as a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
		}))
		defer server.Close()

		gateway := NewRazorpayGateway("bad", "creds", server.URL, relaxedLogger(t))

		_, err := gateway.CreateOrder(context.Background(), 50000, "INR", "")

		assert.ErrorIs(t, err, errs.ErrPaymentGateway)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("malformed provider response surfaces as a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		gateway := NewRazorpayGateway("k", "s", server.URL, relaxedLogger(t))

		_, err := gateway.CreateOrder(context.Background(), 50000, "INR", "")

		assert.ErrorIs(t, err, errs.ErrPaymentGateway)
	})

	t.Run("unreachable provider surfaces as a gateway error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		gateway := NewRazorpayGateway("k", "s", server.URL, relaxedLogger(t))

		_, err := gateway.CreateOrder(context.Background(), 50000, "INR", "")

		assert.ErrorIs(t, err, errs.ErrPaymentGateway)
	})
}

func TestKeyIDAccessor(t *testing.T) {
	gateway := NewRazorpayGateway("rzp_test_key", "secret", "", relaxedLogger(t))
	assert.Equal(t, "rzp_test_key", gateway.KeyID())
}
