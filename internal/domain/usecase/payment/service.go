package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	errs "github.com/menix-gg/arena-backend/internal/domain/error"
	coreport "github.com/menix-gg/arena-backend/internal/domain/port/core"
	paymentport "github.com/menix-gg/arena-backend/internal/domain/port/payment"
	userUseCase "github.com/menix-gg/arena-backend/internal/domain/usecase/user"
)

// Service ties the payment gateway to wallet credits. An order is created
// ahead of checkout; the completed payment is only trusted after its
// signature verifies against the shared secret.
type Service struct {
	gateway  paymentport.Gateway
	users    *userUseCase.UserUseCase
	verifier *SignatureVerifier
	logger   coreport.Logger
}

// NewService creates a payment Service
func NewService(
	gateway paymentport.Gateway,
	users *userUseCase.UserUseCase,
	secret string,
	logger coreport.Logger,
) *Service {
	return &Service{
		gateway:  gateway,
		users:    users,
		verifier: NewSignatureVerifier(secret),
		logger:   logger,
	}
}

// KeyID returns the gateway's public key identifier
func (s *Service) KeyID() string {
	return s.gateway.KeyID()
}

// CreateOrder creates a checkout order for the given amount in minor units.
// An empty receipt gets a generated one.
func (s *Service) CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*paymentport.Order, error) {
	if amount <= 0 {
		return nil, errs.ErrInvalidAmount
	}
	if currency == "" {
		currency = "INR"
	}
	if receipt == "" {
		receipt = fmt.Sprintf("rcpt_%s", uuid.NewString())
	}

	order, err := s.gateway.CreateOrder(ctx, amount, currency, receipt)
	if err != nil {
		s.logger.Error("Failed to create payment order", map[string]any{
			"amount":   amount,
			"currency": currency,
			"error":    err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Payment order created", map[string]any{
		"orderId":  order.ID,
		"amount":   order.Amount,
		"currency": order.Currency,
	})
	return order, nil
}

// VerifyAndCredit verifies the provider's signature over the completed
// payment and, when valid, credits the user's wallet. The client-supplied
// amount is only trusted after the signature checks out.
func (s *Service) VerifyAndCredit(ctx context.Context, orderID, paymentID, signature, userID string, amount int64) error {
	if orderID == "" || paymentID == "" || signature == "" {
		return errs.ErrInvalidRequest
	}

	if !s.verifier.Verify(orderID, paymentID, signature) {
		s.logger.Warn("Payment signature rejected", map[string]any{
			"orderId":   orderID,
			"paymentId": paymentID,
		})
		return errs.ErrInvalidSignature
	}

	// Credit is optional: a verify call without a user just confirms the
	// signature, matching the checkout flow where the client polls first.
	if userID == "" {
		return nil
	}

	if _, err := s.users.CreditWallet(ctx, userID, amount); err != nil {
		return err
	}

	s.logger.Info("Payment verified and wallet credited", map[string]any{
		"orderId":   orderID,
		"paymentId": paymentID,
		"userId":    userID,
		"amount":    amount,
	})
	return nil
}
