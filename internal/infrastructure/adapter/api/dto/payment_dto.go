package dto

import (
	paymentport "github.com/menix-gg/arena-backend/internal/domain/port/payment"
)

// OrderRequest is the checkout order creation payload. Amount is in
// currency minor units.
type OrderRequest struct {
	Amount   int64  `json:"amount" binding:"required"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

// OrderResponse wraps a created checkout order
type OrderResponse struct {
	Success bool               `json:"success"`
	Order   *paymentport.Order `json:"order"`
}

// KeyResponse exposes the provider's public key id
type KeyResponse struct {
	Success bool   `json:"success"`
	Key     string `json:"key"`
}

// VerifyRequest carries the provider's completion callback fields. The
// field names match what the provider's checkout script posts.
type VerifyRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required"`
	PaymentID string `json:"razorpay_payment_id" binding:"required"`
	Signature string `json:"razorpay_signature" binding:"required"`
	UserID    string `json:"userId"`
	Amount    int64  `json:"amount"`
}

// VerifyResponse reports the signature check outcome
type VerifyResponse struct {
	Success bool `json:"success"`
}
