package persistence

import (
	"context"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
)

// UserRepository defines the persistence operations for users.
//
// Balance mutations are expressed as single conditional updates at the
// storage layer so that concurrent requests can never interleave a
// read-then-write on the same balance.
type UserRepository interface {
	// Create persists a new user, failing with ErrDuplicateEmail when the
	// email is already registered
	Create(ctx context.Context, user *entity.User) error

	// GetByID retrieves a user by id, failing with ErrUserNotFound
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by email, failing with ErrUserNotFound
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// AddCredits atomically increments the user's balance by the given
	// credit count
	AddCredits(ctx context.Context, id uint64, credits int64) error

	// DebitCredit atomically decrements the balance by one, only when the
	// balance is positive, and returns the new balance. A refused debit
	// fails with ErrInsufficientCredits carrying the current balance.
	DebitCredit(ctx context.Context, id uint64) (int64, error)
}
