package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	imageusecase "github.com/mayankmishra1802/imagify/internal/domain/usecase/image"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/dto"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ImageHandler handles credit-gated image generation requests
type ImageHandler struct {
	imageUseCase *imageusecase.UseCase
	logger       coreport.Logger
}

// NewImageHandler creates a new image handler instance
func NewImageHandler(imageUseCase *imageusecase.UseCase, logger coreport.Logger) *ImageHandler {
	return &ImageHandler{
		imageUseCase: imageUseCase,
		logger:       logger,
	}
}

// GenerateImage handles the POST /generate-image endpoint
func (h *ImageHandler) GenerateImage(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrUnauthorized),
			"Not authorized, login again",
		))
		return
	}

	var req dto.GenerateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			"Prompt is required",
		))
		return
	}

	result, err := h.imageUseCase.Generate(c.Request.Context(), userID, req.Prompt)
	if err != nil {
		// A refused debit echoes the remaining balance so the client can
		// route the user to the purchase flow
		var creditsErr *domainerr.InsufficientCreditsError
		if errors.As(err, &creditsErr) {
			c.JSON(domainerr.HTTPStatus(err), dto.OutOfCreditsResponse{
				Success:       false,
				Code:          domainerr.ErrorCode(err),
				Message:       "No credit balance",
				CreditBalance: creditsErr.Balance,
			})
			return
		}

		message := "Internal server error"
		switch {
		case errors.Is(err, domainerr.ErrInvalidRequest):
			message = "Prompt is required"
		case errors.Is(err, domainerr.ErrGenerationFailed):
			message = "Image generation failed"
		default:
			h.logger.Error("Image generation failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}

		c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
		return
	}

	c.JSON(http.StatusOK, dto.GenerateImageResponse{
		Success:       true,
		ResultImage:   result.ImageData,
		CreditBalance: result.CreditBalance,
	})
}
