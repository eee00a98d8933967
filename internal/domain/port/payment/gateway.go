package payment

import "context"

// Order is a payment order created with the provider ahead of checkout
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"` // Currency minor units
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// Gateway abstracts the payment provider's order API
type Gateway interface {
	// CreateOrder creates a hosted-checkout order for the given amount in
	// currency minor units.
	//
	// Possible errors:
	// - ErrInvalidAmount: If amount is zero or negative
	// - ErrPaymentGateway: If the provider call fails
	CreateOrder(ctx context.Context, amount int64, currency, receipt string) (*Order, error)

	// KeyID returns the public key identifier the client needs to open checkout
	KeyID() string
}
