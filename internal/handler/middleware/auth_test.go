//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"station-booking/internal/handler/middleware"
	"station-booking/internal/pkg/config"
	"station-booking/internal/pkg/cookie"
	"station-booking/internal/pkg/jwt"
	"station-booking/internal/usecase"
	"station-booking/tests/common/authtest"
	"station-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	validator := usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, cfg.JWT.Issuer, time.Hour))
	auth := middleware.NewAuthMiddleware(validator)

	whoami := func(c *gin.Context) {
		userID, ok := middleware.GetUserID(c)
		email, _ := middleware.GetUserEmail(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "ok": ok, "email": email})
	}

	r := gin.New()
	r.GET("/private", auth.RequireAuth(), whoami)
	r.GET("/public", auth.OptionalAuth(), whoami)
	return r
}

func TestAuthMiddleware(t *testing.T) {
	cfg := config.NewTestConfig()
	router := newRouter(cfg)
	helper := authtest.NewJWTHelper(cfg.JWT)
	valid := helper.GenerateToken(t, "uid-42", "ana@example.com")

	testCases := []struct {
		name       string
		path       string
		setup      httptest.RequestOption
		expectCode int
		expectBody string
	}{
		{
			name:       "bearer token",
			path:       "/private",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			expectCode: http.StatusOK,
			expectBody: `"user_id":"uid-42"`,
		},
		{
			name:       "session cookie",
			path:       "/private",
			setup:      httptest.WithCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: valid}),
			expectCode: http.StatusOK,
			expectBody: `"email":"ana@example.com"`,
		},
		{
			name:       "no token",
			path:       "/private",
			setup:      func(r *http.Request) {},
			expectCode: http.StatusUnauthorized,
			expectBody: "Access token required",
		},
		{
			name: "expired token",
			path: "/private",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+helper.CreateExpiredToken(t, "uid-42", ""))
			},
			expectCode: http.StatusUnauthorized,
			expectBody: "Invalid or expired token",
		},
		{
			name: "token signed by someone else",
			path: "/private",
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+helper.CreateForeignToken(t, "uid-42", ""))
			},
			expectCode: http.StatusUnauthorized,
			expectBody: "Invalid or expired token",
		},
		{
			name:       "optional auth without token",
			path:       "/public",
			setup:      func(r *http.Request) {},
			expectCode: http.StatusOK,
			expectBody: `"ok":false`,
		},
		{
			name:       "optional auth ignores a broken token",
			path:       "/public",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer garbage") },
			expectCode: http.StatusOK,
			expectBody: `"ok":false`,
		},
		{
			name:       "optional auth with token",
			path:       "/public",
			setup:      func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+valid) },
			expectCode: http.StatusOK,
			expectBody: `"ok":true`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.Serve(t, router, http.MethodGet, tc.path, nil, tc.setup)

			assert.Equal(t, tc.expectCode, w.Code)
			assert.Contains(t, w.Body.String(), tc.expectBody)
		})
	}
}
