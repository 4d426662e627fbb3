package handler

import (
	"errors"
	"net/http"

	domainerr "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	userusecase "github.com/mayankmishra1802/imagify/internal/domain/usecase/user"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/dto"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// UserHandler handles registration, login and credit balance requests
type UserHandler struct {
	userUseCase *userusecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userUseCase *userusecase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// Register handles the POST /register endpoint
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			"Missing or invalid registration details",
		))
		return
	}

	result, err := h.userUseCase.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		message := "Internal server error"
		if errors.Is(err, domainerr.ErrDuplicateEmail) {
			message = "Email already registered"
		} else if errors.Is(err, domainerr.ErrInvalidRequest) {
			message = "Missing or invalid registration details"
		} else {
			h.logger.Error("Registration failed", map[string]any{
				"email": req.Email,
				"error": err.Error(),
			})
		}

		c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
		return
	}

	c.JSON(http.StatusOK, dto.RegisterResponse{
		Success: true,
		Token:   result.Token,
		User: dto.UserInfo{
			Name: result.Name,
		},
	})
}

// Login handles the POST /login endpoint
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			"Missing or invalid login details",
		))
		return
	}

	result, err := h.userUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// A missing account and a wrong password answer identically so the
		// endpoint cannot be used to probe registered emails
		message := "Invalid credentials"
		code := domainerr.ErrorCode(domainerr.ErrInvalidCredentials)
		status := http.StatusBadRequest

		if !errors.Is(err, domainerr.ErrInvalidCredentials) && !domainerr.IsUserNotFoundError(err) {
			if errors.Is(err, domainerr.ErrInvalidRequest) {
				message = "Missing or invalid login details"
				code = domainerr.ErrorCode(err)
			} else {
				h.logger.Error("Login failed", map[string]any{
					"email": req.Email,
					"error": err.Error(),
				})
				message = "Internal server error"
				code = domainerr.ErrorCode(err)
				status = domainerr.HTTPStatus(err)
			}
		}

		c.JSON(status, dto.NewErrorResponse(code, message))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Token:   result.Token,
		User: dto.UserAccount{
			Name:          result.Name,
			CreditBalance: result.CreditBalance,
		},
	})
}

// Credits handles the GET /credits endpoint
func (h *UserHandler) Credits(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrUnauthorized),
			"Not authorized, login again",
		))
		return
	}

	result, err := h.userUseCase.Credits(c.Request.Context(), userID)
	if err != nil {
		message := "Internal server error"
		if domainerr.IsUserNotFoundError(err) {
			message = "User not found"
		} else {
			h.logger.Error("Credit lookup failed", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}

		c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
		return
	}

	c.JSON(http.StatusOK, dto.CreditsResponse{
		Success: true,
		Credits: result.Credits,
		User: dto.UserInfo{
			Name: result.Name,
		},
	})
}
