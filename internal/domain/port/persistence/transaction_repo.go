package persistence

import (
	"context"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
)

// TransactionRepository defines the persistence operations for the
// transaction ledger
type TransactionRepository interface {
	// Create persists a new unpaid ledger row
	Create(ctx context.Context, transaction *entity.Transaction) error

	// GetByID retrieves a ledger row by its id (the gateway receipt),
	// failing with ErrTransactionNotFound
	GetByID(ctx context.Context, id string) (*entity.Transaction, error)

	// MarkPaid flips the payment flag to true only when it is currently
	// false, reporting whether the update took effect. A false return with
	// a nil error means the transaction was already settled; this is the
	// replay guard for the false-to-true-exactly-once invariant.
	MarkPaid(ctx context.Context, id string) (bool, error)
}
