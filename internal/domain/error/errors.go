package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientCredits = 4001
	CodeInvalidPlan         = 4002
	CodeDuplicateEmail      = 4003
	CodeInvalidCredentials  = 4004
	CodeInvalidCallback     = 4005
	CodePaymentNotCompleted = 4006
	CodeSignatureMismatch   = 4007
	CodeAlreadyProcessed    = 4008
	CodeUnauthorized        = 4010
	CodeInvalidToken        = 4011
	CodeUserNotFound        = 4040
	CodeTransactionNotFound = 4041

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeGatewayUnavailable = 5001
	CodeGenerationFailed   = 5002
)

// Base error types
var (
	// ErrUnauthorized is returned when no session token accompanies the request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidToken is returned when the session token fails verification
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrDuplicateEmail is returned when registering with an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials is returned when the password does not match the stored hash
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidPlan is returned when the plan id is not part of the catalog
	ErrInvalidPlan = errors.New("invalid plan id")

	// ErrInvalidCallback is returned when the payment callback is missing required fields
	ErrInvalidCallback = errors.New("invalid payment callback")

	// ErrPaymentNotCompleted is returned when the gateway does not report the order as paid
	ErrPaymentNotCompleted = errors.New("payment not completed")

	// ErrTransactionNotFound is returned when no ledger row matches the order's receipt
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrSignatureMismatch is returned when the callback signature fails the HMAC check
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// ErrAlreadyProcessed is returned when a transaction has already been marked paid
	ErrAlreadyProcessed = errors.New("transaction already processed")

	// ErrInsufficientCredits is returned when the user's balance cannot cover a debit
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrGenerationFailed is returned when the external image API call fails
	ErrGenerationFailed = errors.New("image generation failed")

	// ErrGatewayUnavailable is returned when the payment gateway cannot be reached
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidToken):
		return CodeInvalidToken
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrInvalidPlan):
		return CodeInvalidPlan
	case errors.Is(err, ErrInvalidCallback):
		return CodeInvalidCallback
	case errors.Is(err, ErrPaymentNotCompleted):
		return CodePaymentNotCompleted
	case errors.Is(err, ErrTransactionNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrSignatureMismatch):
		return CodeSignatureMismatch
	case errors.Is(err, ErrAlreadyProcessed):
		return CodeAlreadyProcessed
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrGatewayUnavailable):
		return CodeGatewayUnavailable
	case errors.Is(err, ErrGenerationFailed):
		return CodeGenerationFailed
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps domain errors to the status classes the API exposes:
// 400 for client errors, 401 for auth, 404 for missing resources, 500 for
// unexpected or gateway failures.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateEmail),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrInvalidPlan),
		errors.Is(err, ErrInvalidCallback),
		errors.Is(err, ErrPaymentNotCompleted),
		errors.Is(err, ErrSignatureMismatch),
		errors.Is(err, ErrAlreadyProcessed),
		errors.Is(err, ErrInsufficientCredits),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// SettlementError carries the full context of a rejected payment verification
// so each rejection reason stays distinguishable in logs even when the
// client-facing message is generic.
type SettlementError struct {
	OrderID       string
	PaymentID     string
	TransactionID string
	UserID        uint64
	Reason        string
	Err           error
}

// Error implements the error interface for SettlementError
func (e *SettlementError) Error() string {
	return fmt.Sprintf("settlement rejected for order %s (transaction: %s, user: %d): %s - %v",
		e.OrderID, e.TransactionID, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *SettlementError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *SettlementError) LogFields() map[string]any {
	return map[string]any{
		"error_type":     "settlement_error",
		"order_id":       e.OrderID,
		"payment_id":     e.PaymentID,
		"transaction_id": e.TransactionID,
		"user_id":        e.UserID,
		"reason":         e.Reason,
		"error":          e.Err.Error(),
		"error_code":     ErrorCode(e.Err),
	}
}

// NewSettlementError creates a detailed settlement rejection error
func NewSettlementError(orderID, paymentID, transactionID string, userID uint64, reason string, err error) error {
	return &SettlementError{
		OrderID:       orderID,
		PaymentID:     paymentID,
		TransactionID: transactionID,
		UserID:        userID,
		Reason:        reason,
		Err:           err,
	}
}

// InsufficientCreditsError reports a refused debit along with the balance the
// caller should surface so the client can redirect to the purchase flow.
type InsufficientCreditsError struct {
	UserID  uint64
	Balance int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for user %d: balance %d", e.UserID, e.Balance)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"user_id":    e.UserID,
		"balance":    e.Balance,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(userID uint64, balance int64) error {
	return &InsufficientCreditsError{UserID: userID, Balance: balance}
}

// IsInsufficientCreditsError checks if the error is related to an exhausted balance
func IsInsufficientCreditsError(err error) bool {
	return errors.Is(err, ErrInsufficientCredits)
}

// IsAlreadyProcessedError checks if the error is a settlement replay
func IsAlreadyProcessedError(err error) bool {
	return errors.Is(err, ErrAlreadyProcessed)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) || errors.Is(err, ErrTransactionNotFound)
}

// IsAuthError checks if the error belongs to the authentication class
func IsAuthError(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInvalidToken)
}
