package cookie

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Session cookie set by the identity provider's web client
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

// TokenFromRequest prefers the session cookie and falls back to a Bearer header.
func TokenFromRequest(c *gin.Context) string {
	if token := GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}
