package user

import (
	"context"
)

// Credits returns the user's current credit balance and name. Fails with
// ErrUserNotFound if the user vanished between authentication and lookup.
func (uc *UserUseCase) Credits(ctx context.Context, userID uint64) (*CreditsResult, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Error("Failed to get user credits", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, err
	}

	return &CreditsResult{
		Name:    user.Name,
		Credits: user.CreditBalance,
	}, nil
}
