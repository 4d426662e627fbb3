package handler

import (
	"errors"
	"net/http"

	"github.com/mayankmishra1802/imagify/internal/domain/entity"
	domainerr "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"github.com/mayankmishra1802/imagify/internal/domain/usecase/settlement"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/dto"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// PaymentHandler handles credit purchase and payment verification requests
type PaymentHandler struct {
	settlementService *settlement.Service
	logger            coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(settlementService *settlement.Service, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		settlementService: settlementService,
		logger:            logger,
	}
}

// PayOrder handles the POST /pay-order endpoint
func (h *PaymentHandler) PayOrder(c *gin.Context) {
	userID, ok := middleware.AuthenticatedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrUnauthorized),
			"Not authorized, login again",
		))
		return
	}

	var req dto.PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			"Plan id is required",
		))
		return
	}

	order, err := h.settlementService.CreateOrder(c.Request.Context(), userID, entity.PlanID(req.PlanID))
	if err != nil {
		message := "Internal server error"
		switch {
		case errors.Is(err, domainerr.ErrInvalidPlan):
			message = "Plan not found"
		case errors.Is(err, domainerr.ErrGatewayUnavailable):
			message = "Payment gateway unavailable"
		default:
			h.logger.Error("Order creation failed", map[string]any{
				"user_id": userID,
				"plan":    req.PlanID,
				"error":   err.Error(),
			})
		}

		c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
		return
	}

	c.JSON(http.StatusOK, dto.PayOrderResponse{
		Success: true,
		Order: dto.OrderInfo{
			ID:       order.ID,
			Amount:   order.Amount,
			Currency: order.Currency,
		},
	})
}

// VerifyPayment handles the POST /verify-payment endpoint
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	if _, ok := middleware.AuthenticatedUserID(c); !ok {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrUnauthorized),
			"Not authorized, login again",
		))
		return
	}

	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(
			domainerr.ErrorCode(domainerr.ErrInvalidCallback),
			"Missing payment callback fields",
		))
		return
	}

	err := h.settlementService.VerifyPayment(c.Request.Context(), settlement.Callback{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
	})
	if err != nil {
		message := "Payment verification failed"
		switch {
		case errors.Is(err, domainerr.ErrPaymentNotCompleted):
			message = "Payment not completed"
		case errors.Is(err, domainerr.ErrSignatureMismatch):
			message = "Payment signature mismatch"
		case domainerr.IsAlreadyProcessedError(err):
			message = "Payment already processed"
		case errors.Is(err, domainerr.ErrTransactionNotFound):
			message = "Transaction not found"
		case errors.Is(err, domainerr.ErrGatewayUnavailable):
			message = "Payment gateway unavailable"
		default:
			h.logger.Error("Payment verification failed", map[string]any{
				"order_id": req.OrderID,
				"error":    err.Error(),
			})
			message = "Internal server error"
		}

		c.JSON(domainerr.HTTPStatus(err), dto.NewErrorResponse(domainerr.ErrorCode(err), message))
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Success: true,
		Message: "Credits added",
	})
}
