package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	mock_authservice "github.com/tuncanbit/bss/internal/application/auth/mocks"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

func newRouter(t *testing.T, server config.ServerConfig) (*gin.Engine, *mock_authservice.MockIAuthService) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	auth := mock_authservice.NewMockIAuthService(ctrl)
	m := NewMiddleware(auth, server, logger.Nop())

	router := gin.New()
	m.SetupMiddleware(router)
	router.GET("/me", m.AuthMiddleware(), func(c *gin.Context) {
		c.String(http.StatusOK, UserID(c))
	})
	router.GET("/trace", func(c *gin.Context) {
		c.String(http.StatusOK, logger.RequestID(c.Request.Context()))
	})
	router.GET("/ops", m.APIKeyMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return router, auth
}

func TestAuthMiddleware(t *testing.T) {
	router, auth := newRouter(t, config.ServerConfig{})
	auth.EXPECT().VerifyToken(gomock.Any(), "good").Return(&domain.Claim{UserID: "guest-1"}, nil).Times(2)
	auth.EXPECT().VerifyToken(gomock.Any(), "bad").Return(nil, errors.New("invalid token"))

	tests := []struct {
		name   string
		header string
		query  string
		status int
		body   string
	}{
		{name: "bearer header", header: "Bearer good", status: http.StatusOK, body: "guest-1"},
		{name: "query token", query: "?token=good", status: http.StatusOK, body: "guest-1"},
		{name: "bad token", header: "Bearer bad", status: http.StatusUnauthorized},
		{name: "malformed header", header: "Token good", status: http.StatusUnauthorized},
		{name: "missing", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, rec.Body.String())
			}
		})
	}
}

func TestAPIKeyMiddleware(t *testing.T) {
	router, auth := newRouter(t, config.ServerConfig{})
	auth.EXPECT().VerifyAPIKey(gomock.Any(), "ops-key").Return(nil)
	auth.EXPECT().VerifyAPIKey(gomock.Any(), "").Return(errors.New("invalid API key"))

	req := httptest.NewRequest(http.MethodGet, "/ops", nil)
	req.Header.Set("X-API-Key", "ops-key")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ops", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORS(t *testing.T) {
	router, _ := newRouter(t, config.ServerConfig{AllowedOrigins: []string{"https://app.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/me", nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestID(t *testing.T) {
	router, _ := newRouter(t, config.ServerConfig{})

	req := httptest.NewRequest(http.MethodGet, "/trace", nil)
	req.Header.Set(HeaderRequestID, "req-from-caller")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "req-from-caller", rec.Body.String())
	assert.Equal(t, "req-from-caller", rec.Header().Get(HeaderRequestID))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/trace", nil))
	generated := rec.Header().Get(HeaderRequestID)
	assert.NotEmpty(t, generated)
	assert.Equal(t, generated, rec.Body.String())
}
