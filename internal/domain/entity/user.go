package entity

import (
	"time"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"golang.org/x/crypto/bcrypt"
)

// User represents a registered account with a spendable credit balance
type User struct {
	ID            uint64    // Unique identifier for the user
	Name          string    // Display name returned to the client
	Email         string    // Login identifier, unique across users
	PasswordHash  string    // bcrypt hash, never exposed through the API
	CreditBalance int64     // Spendable credits, never negative
	CreatedAt     time.Time // When the user registered
	UpdatedAt     time.Time // When the user was last updated
}

// NewUser creates a new user with a hashed password and the signup credit
// grant. bcrypt embeds a randomized per-user salt in the hash.
func NewUser(name, email, password string, signupCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	if name == "" || email == "" || password == "" {
		return nil, errs.ErrInvalidRequest
	}
	if signupCredits < 0 {
		signupCredits = 0
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Name:          name,
		Email:         email,
		PasswordHash:  string(hash),
		CreditBalance: signupCredits,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

// CheckPassword compares a candidate password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// HasCredits reports whether the user can afford a generation debit
func (u *User) HasCredits() bool {
	return u.CreditBalance > 0
}
