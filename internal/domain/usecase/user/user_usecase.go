package user

import (
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"github.com/mayankmishra1802/imagify/internal/domain/port/persistence"
)

// UserUseCase implements credential operations: registration, login and
// credit balance lookup
type UserUseCase struct {
	userRepo      persistence.UserRepository
	tokenIssuer   coreport.TokenIssuer
	timeProvider  coreport.TimeProvider
	logger        coreport.Logger
	signupCredits int64
}

// NewUserUseCase creates a new UserUseCase instance. signupCredits is the
// configurable credit grant for new registrations.
func NewUserUseCase(
	userRepo persistence.UserRepository,
	tokenIssuer coreport.TokenIssuer,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	signupCredits int64,
) *UserUseCase {
	return &UserUseCase{
		userRepo:      userRepo,
		tokenIssuer:   tokenIssuer,
		timeProvider:  timeProvider,
		logger:        logger,
		signupCredits: signupCredits,
	}
}

// AuthResult is the outcome of a successful register or login. Only the
// public profile is echoed; the hash and id stay internal.
type AuthResult struct {
	Token         string
	Name          string
	CreditBalance int64
}

// CreditsResult is the outcome of a balance lookup
type CreditsResult struct {
	Name    string
	Credits int64
}
