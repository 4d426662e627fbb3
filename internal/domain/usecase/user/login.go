package user

import (
	"context"
	"fmt"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
)

// Login verifies credentials and issues a session token
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, errs.ErrInvalidRequest
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			uc.logger.Warn("Login rejected: unknown email", map[string]any{
				"email": email,
			})
		} else {
			uc.logger.Error("Failed to look up user for login", map[string]any{
				"email": email,
				"error": err.Error(),
			})
		}
		return nil, err
	}

	if !user.CheckPassword(password) {
		uc.logger.Warn("Login rejected: password mismatch", map[string]any{
			"user_id": user.ID,
		})
		return nil, errs.ErrInvalidCredentials
	}

	token, err := uc.tokenIssuer.Issue(user.ID)
	if err != nil {
		uc.logger.Error("Failed to issue session token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	uc.logger.Info("User logged in", map[string]any{
		"user_id": user.ID,
	})

	return &AuthResult{
		Token:         token,
		Name:          user.Name,
		CreditBalance: user.CreditBalance,
	}, nil
}
