package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
)

// Register creates a new account, grants the signup credits and issues a
// session token. The email must not already be registered.
func (uc *UserUseCase) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	user, err := entity.NewUser(name, email, password, uc.signupCredits, uc.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, errs.ErrDuplicateEmail) {
			uc.logger.Warn("Registration rejected: email already exists", map[string]any{
				"email": email,
			})
			return nil, err
		}
		uc.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	token, err := uc.tokenIssuer.Issue(user.ID)
	if err != nil {
		uc.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	uc.logger.Info("User registered", map[string]any{
		"user_id":        user.ID,
		"signup_credits": user.CreditBalance,
	})

	return &AuthResult{
		Token:         token,
		Name:          user.Name,
		CreditBalance: user.CreditBalance,
	}, nil
}
