package middleware

import (
	"net/http"

	domainerr "github.com/mayankmishra1802/imagify/internal/domain/error"
	coreport "github.com/mayankmishra1802/imagify/internal/domain/port/core"
	"github.com/mayankmishra1802/imagify/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserIDKey is the gin context key under which the authenticated user id is
// stored for downstream handlers
const UserIDKey = "userID"

// Auth validates the token header and attaches the authenticated user id to
// the request context. Requests without a valid token are rejected with 401
// before reaching any handler.
func Auth(tokenIssuer coreport.TokenIssuer, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.GetHeader("token")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				domainerr.ErrorCode(domainerr.ErrUnauthorized),
				"Not authorized, login again",
			))
			return
		}

		userID, err := tokenIssuer.Verify(tokenString)
		if err != nil {
			logger.Warn("Rejected request with invalid token", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(
				domainerr.ErrorCode(domainerr.ErrInvalidToken),
				"Not authorized, login again",
			))
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// AuthenticatedUserID retrieves the user id the Auth middleware stored
func AuthenticatedUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
