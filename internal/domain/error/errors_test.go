package error

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthorized", ErrUnauthorized, CodeUnauthorized},
		{"invalid token", ErrInvalidToken, CodeInvalidToken},
		{"duplicate email", ErrDuplicateEmail, CodeDuplicateEmail},
		{"invalid credentials", ErrInvalidCredentials, CodeInvalidCredentials},
		{"user not found", ErrUserNotFound, CodeUserNotFound},
		{"invalid plan", ErrInvalidPlan, CodeInvalidPlan},
		{"invalid callback", ErrInvalidCallback, CodeInvalidCallback},
		{"payment not completed", ErrPaymentNotCompleted, CodePaymentNotCompleted},
		{"transaction not found", ErrTransactionNotFound, CodeTransactionNotFound},
		{"signature mismatch", ErrSignatureMismatch, CodeSignatureMismatch},
		{"already processed", ErrAlreadyProcessed, CodeAlreadyProcessed},
		{"insufficient credits", ErrInsufficientCredits, CodeInsufficientCredits},
		{"gateway unavailable", ErrGatewayUnavailable, CodeGatewayUnavailable},
		{"generation failed", ErrGenerationFailed, CodeGenerationFailed},
		{"unknown error", errors.New("boom"), CodeInternalServer},
		{"wrapped error", fmt.Errorf("context: %w", ErrAlreadyProcessed), CodeAlreadyProcessed},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorCode(tc.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"unauthorized", ErrUnauthorized, http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken, http.StatusUnauthorized},
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"transaction not found", ErrTransactionNotFound, http.StatusNotFound},
		{"already processed", ErrAlreadyProcessed, http.StatusBadRequest},
		{"signature mismatch", ErrSignatureMismatch, http.StatusBadRequest},
		{"insufficient credits", ErrInsufficientCredits, http.StatusBadRequest},
		{"gateway unavailable", ErrGatewayUnavailable, http.StatusInternalServerError},
		{"generation failed", ErrGenerationFailed, http.StatusInternalServerError},
		{"internal", ErrInternalServer, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, HTTPStatus(tc.err))
		})
	}
}

func TestSettlementError(t *testing.T) {
	err := NewSettlementError("order_1", "pay_1", "txn-1", 42, "signature check failed", ErrSignatureMismatch)

	assert.ErrorIs(t, err, ErrSignatureMismatch)
	assert.Contains(t, err.Error(), "order_1")
	assert.Contains(t, err.Error(), "txn-1")

	var settlementErr *SettlementError
	assert.True(t, errors.As(err, &settlementErr))

	fields := settlementErr.LogFields()
	assert.Equal(t, "settlement_error", fields["error_type"])
	assert.Equal(t, "order_1", fields["order_id"])
	assert.Equal(t, uint64(42), fields["user_id"])
	assert.Equal(t, CodeSignatureMismatch, fields["error_code"])
}

func TestInsufficientCreditsError(t *testing.T) {
	err := NewInsufficientCreditsError(7, 0)

	assert.ErrorIs(t, err, ErrInsufficientCredits)
	assert.True(t, IsInsufficientCreditsError(err))
	assert.Contains(t, err.Error(), "user 7")

	var creditsErr *InsufficientCreditsError
	assert.True(t, errors.As(err, &creditsErr))
	assert.Equal(t, int64(0), creditsErr.Balance)
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsAlreadyProcessedError(fmt.Errorf("wrapped: %w", ErrAlreadyProcessed)))
	assert.False(t, IsAlreadyProcessedError(ErrSignatureMismatch))

	assert.True(t, IsUserNotFoundError(ErrUserNotFound))
	assert.True(t, IsNotFoundError(ErrTransactionNotFound))
	assert.False(t, IsNotFoundError(ErrInvalidPlan))

	assert.True(t, IsAuthError(ErrUnauthorized))
	assert.True(t, IsAuthError(ErrInvalidToken))
	assert.False(t, IsAuthError(ErrUserNotFound))
}
