package image

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	errs "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	gatewayport "github.com/mayankmishra1802/imagify/internal/domain/port/gateway"
	"github.com/mayankmishra1802/imagify/internal/domain/port/persistence"
)

// UseCase implements credit-gated image generation. Generation runs first
// and the debit is a conditional decrement afterwards, so a failed
// generation never charges the user; the debit loser of two concurrent
// requests is reported as out of credits.
type UseCase struct {
	userRepo          persistence.UserRepository
	generator         gatewayport.ImageGenerator
	timeProvider      coreport.TimeProvider
	logger            coreport.Logger
	generationTimeout time.Duration
}

// NewUseCase creates a new image generation use case
func NewUseCase(
	userRepo persistence.UserRepository,
	generator gatewayport.ImageGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	generationTimeout time.Duration,
) *UseCase {
	return &UseCase{
		userRepo:          userRepo,
		generator:         generator,
		timeProvider:      timeProvider,
		logger:            logger,
		generationTimeout: generationTimeout,
	}
}

// Result carries the generated image and the balance after the debit
type Result struct {
	ImageData     string // data URI with base64-encoded PNG payload
	CreditBalance int64
}

// Generate produces an image for the prompt, charging exactly one credit on
// success and none on failure.
func (uc *UseCase) Generate(ctx context.Context, userID uint64, prompt string) (*Result, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, fmt.Errorf("%w: prompt is required", errs.ErrInvalidRequest)
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, fmt.Errorf("%w: user not found", errs.ErrInvalidRequest)
		}
		return nil, err
	}

	// Balance gate before any external call
	if !user.HasCredits() {
		uc.logger.Warn("Generation refused: no credits", map[string]any{
			"user_id": userID,
			"balance": user.CreditBalance,
		})
		return nil, errs.NewInsufficientCreditsError(userID, user.CreditBalance)
	}

	genCtx, cancel := uc.timeProvider.WithTimeout(ctx, uc.generationTimeout)
	defer cancel()

	imageBytes, err := uc.generator.Generate(genCtx, prompt)
	if err != nil {
		uc.logger.Error("Image API call failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrGenerationFailed, err.Error())
	}

	newBalance, err := uc.userRepo.DebitCredit(ctx, userID)
	if err != nil {
		if errs.IsInsufficientCreditsError(err) {
			// A concurrent request won the conditional decrement
			uc.logger.Warn("Generation debit lost to a concurrent request", map[string]any{
				"user_id": userID,
			})
		}
		return nil, err
	}

	uc.logger.Info("Image generated", map[string]any{
		"user_id":     userID,
		"new_balance": newBalance,
		"image_bytes": len(imageBytes),
	})

	return &Result{
		ImageData:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageBytes),
		CreditBalance: newBalance,
	}, nil
}
