package routes

import (
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/handler"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	paymentHandler *handler.PaymentHandler,
	imageHandler *handler.ImageHandler,
	healthHandler *handler.HealthHandler,
	tokenIssuer coreport.TokenIssuer,
	logger coreport.Logger,
) {
	router.GET("/health", healthHandler.Health)

	// Public credential endpoints
	router.POST("/register", userHandler.Register)
	router.POST("/login", userHandler.Login)

	// Everything else requires a valid token
	auth := router.Group("/")
	auth.Use(middleware.Auth(tokenIssuer, logger))
	{
		auth.GET("/credits", userHandler.Credits)
		auth.POST("/pay-order", paymentHandler.PayOrder)
		auth.POST("/verify-payment", paymentHandler.VerifyPayment)
		auth.POST("/generate-image", imageHandler.GenerateImage)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
