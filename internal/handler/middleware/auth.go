package middleware

import (
	"log/slog"
	"net/http"

	"station-booking/internal/handler/httperr"
	"station-booking/internal/pkg/cookie"
	"station-booking/internal/pkg/errs"
	"station-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxUserIDKey    = "user_id"
	ctxUserEmailKey = "user_email"
)

var errUnauthenticated = errs.New("unauthenticated")

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.TokenFromRequest(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Access token required", nil)
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.Mark(err, errUnauthenticated), "Invalid or expired token", nil)
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

// OptionalAuth authenticates the request if a token is present, but does not abort on failure.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.TokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			c.Next()
			return
		}

		setIdentity(c, identity)
		c.Next()
	}
}

func setIdentity(c *gin.Context, identity usecase.Identity) {
	c.Set(ctxUserIDKey, identity.UserID)
	c.Set(ctxUserEmailKey, identity.Email)
}

// GetUserID returns the identity provider's subject for the authenticated request.
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	return id, ok && id != ""
}

func GetUserEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(ctxUserEmailKey)
	if !exists {
		return "", false
	}

	s, ok := email.(string)
	return s, ok
}
