package entity

import (
	"time"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"

	"github.com/google/uuid"
)

// Transaction represents a single credit purchase attempt in the ledger.
// Its id doubles as the payment gateway's receipt, which is how a gateway
// callback is correlated back to the ledger row.
//
// Lifecycle: created unpaid at purchase initiation, flipped to paid exactly
// once by a verified callback, never deleted.
type Transaction struct {
	ID      string    // Opaque unique identifier, used as the gateway receipt
	UserID  uint64    // User this purchase belongs to
	Plan    PlanID    // Purchased plan
	Amount  int64     // Price in minor currency units
	Credits int64     // Credits granted once the transaction is paid
	Payment bool      // False until the payment is verified
	Date    time.Time // When the purchase was initiated
}

// NewTransaction creates a new unpaid ledger row for a plan purchase
func NewTransaction(userID uint64, plan Plan, timeProvider coreport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidRequest
	}

	return &Transaction{
		ID:      uuid.NewString(),
		UserID:  userID,
		Plan:    plan.ID,
		Amount:  plan.Amount,
		Credits: plan.Credits,
		Payment: false,
		Date:    timeProvider.Now(),
	}, nil
}

// IsPaid reports whether this transaction has already been settled
func (t *Transaction) IsPaid() bool {
	return t.Payment
}
