package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	paymentport "github.com/menix-gg/arena-backend/internal/domain/port/payment"
)

const defaultBaseURL = "https://api.razorpay.com/v1"

// RazorpayGateway implements the payment Gateway port against the
// Razorpay Orders API using key-id/key-secret basic auth.
type RazorpayGateway struct {
	keyID      string
	keySecret  string
	baseURL    string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewRazorpayGateway creates a gateway client. An empty baseURL uses the
// production API endpoint.
func NewRazorpayGateway(keyID, keySecret, baseURL string, logger coreport.Logger) *RazorpayGateway {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &RazorpayGateway{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   baseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		logger: logger,
	}
}

// KeyID returns the public key identifier the client needs to open checkout
func (g *RazorpayGateway) KeyID() string {
	return g.keyID
}

type orderRequest struct {
	Amount   int64  `json:"amount"` // Minor units, as the provider expects
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// CreateOrder creates a hosted-checkout order with the provider
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*paymentport.Order, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	body, err := json.Marshal(orderRequest{
		Amount:   amount,
		Currency: currency,
		Receipt:  receipt,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentGateway, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentGateway, err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Error("Payment provider request failed", map[string]any{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentGateway, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentGateway, err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		g.logger.Error("Payment provider rejected order", map[string]any{
			"status": resp.StatusCode,
			"body":   string(respBody),
		})
		return nil, fmt.Errorf("%w: provider returned status %d", errs.ErrPaymentGateway, resp.StatusCode)
	}

	var order paymentport.Order
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrPaymentGateway, err.Error())
	}
	return &order, nil
}
