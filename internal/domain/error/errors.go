package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeTournamentFull      = 4003
	CodeAlreadyRegistered   = 4004
	CodeTournamentClosed    = 4005
	CodeConstraintViolation = 4006
	CodeInvalidCredentials  = 4010
	CodeInvalidSignature    = 4011
	CodeUserNotFound        = 4040
	CodeTournamentNotFound  = 4041

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInsufficientBalance is returned when a user's wallet cannot cover an entry fee
	ErrInsufficientBalance = errors.New("insufficient wallet balance")

	// ErrTournamentFull is returned when every registration slot is taken
	ErrTournamentFull = errors.New("tournament is full")

	// ErrAlreadyRegistered is returned on a duplicate registration for the same user and tournament
	ErrAlreadyRegistered = errors.New("user is already registered for this tournament")

	// ErrTournamentClosed is returned when the tournament status does not accept registrations
	ErrTournamentClosed = errors.New("tournament is not open for registration")

	// ErrInvalidAmount is returned when a monetary amount is zero, negative or malformed
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user identifier is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidTournamentID is returned when the tournament identifier is empty or malformed
	ErrInvalidTournamentID = errors.New("invalid tournament ID")

	// ErrInvalidRegistrationID is returned when the registration identifier is empty
	ErrInvalidRegistrationID = errors.New("invalid registration ID")

	// ErrInvalidEmail is returned when the login identifier is empty
	ErrInvalidEmail = errors.New("email or identifier is required")

	// ErrInvalidCredentials is returned when password verification fails
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidSignature is returned when a payment signature does not verify
	ErrInvalidSignature = errors.New("invalid payment signature")

	// ErrInvalidTournamentData is returned when tournament fields fail validation
	ErrInvalidTournamentData = errors.New("invalid tournament data")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTournamentNotFound is returned when the requested tournament doesn't exist
	ErrTournamentNotFound = errors.New("tournament not found")

	// ErrRegistrationNotFound is returned when the requested registration doesn't exist
	ErrRegistrationNotFound = errors.New("registration not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem reaching the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrPaymentGateway is returned when the payment provider call fails
	ErrPaymentGateway = errors.New("payment gateway error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrTournamentFull):
		return CodeTournamentFull
	case errors.Is(err, ErrAlreadyRegistered):
		return CodeAlreadyRegistered
	case errors.Is(err, ErrTournamentClosed):
		return CodeTournamentClosed
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidSignature):
		return CodeInvalidSignature
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrTournamentNotFound):
		return CodeTournamentNotFound
	case errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidTournamentID),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidTournamentData),
		errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps domain errors to the status code surfaced by the API.
// Conflicts on the registration path (full, duplicate, insufficient funds)
// are reported as 409 so clients can distinguish them from malformed input.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrTournamentNotFound),
		errors.Is(err, ErrRegistrationNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTournamentFull),
		errors.Is(err, ErrAlreadyRegistered),
		errors.Is(err, ErrInsufficientBalance),
		errors.Is(err, ErrTournamentClosed),
		errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrInvalidUserID),
		errors.Is(err, ErrInvalidTournamentID),
		errors.Is(err, ErrInvalidEmail),
		errors.Is(err, ErrInvalidSignature),
		errors.Is(err, ErrInvalidTournamentData),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// RegistrationError carries the context of a failed registration attempt
type RegistrationError struct {
	UserID       string
	TournamentID string
	EntryFee     int64
	Wallet       int64
	Err          error
}

// Error implements the error interface for RegistrationError
func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed for user %s in tournament %s (fee: %d, wallet: %d): %v",
		e.UserID, e.TournamentID, e.EntryFee, e.Wallet, e.Err)
}

// Unwrap returns the underlying error
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RegistrationError) LogFields() map[string]any {
	return map[string]any{
		"error_type":    "registration_error",
		"user_id":       e.UserID,
		"tournament_id": e.TournamentID,
		"entry_fee":     e.EntryFee,
		"wallet":        e.Wallet,
		"error":         e.Err.Error(),
		"error_code":    ErrorCode(e.Err),
	}
}

// NewRegistrationError creates a detailed registration error
func NewRegistrationError(userID, tournamentID string, entryFee, wallet int64, err error) error {
	return &RegistrationError{
		UserID:       userID,
		TournamentID: tournamentID,
		EntryFee:     entryFee,
		Wallet:       wallet,
		Err:          err,
	}
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTournamentNotFound) ||
		errors.Is(err, ErrRegistrationNotFound)
}

// IsConflictError checks if the error is a registration-path conflict
func IsConflictError(err error) bool {
	return errors.Is(err, ErrTournamentFull) ||
		errors.Is(err, ErrAlreadyRegistered) ||
		errors.Is(err, ErrInsufficientBalance) ||
		errors.Is(err, ErrTournamentClosed)
}
