package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	authservice "github.com/tuncanbit/bss/internal/application/auth"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"

	HeaderRequestID = "X-Request-ID"
)

type Middleware struct {
	AuthSvc authservice.IAuthService
	server  config.ServerConfig
	logger  zerolog.Logger
}

func NewMiddleware(authSvc authservice.IAuthService, server config.ServerConfig, logger zerolog.Logger) *Middleware {
	return &Middleware{
		AuthSvc: authSvc,
		server:  server,
		logger:  logger.With().Str("component", "http").Logger(),
	}
}

func (m *Middleware) SetupMiddleware(router *gin.Engine) {
	if handler := m.cors(); handler != nil {
		router.Use(handler)
	}

	router.Use(RequestID())

	router.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		event := m.logger.Info()
		if param.StatusCode >= http.StatusInternalServerError {
			event = m.logger.Error()
		}
		event.Ctx(param.Request.Context()).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status", param.StatusCode).
			Dur("latency", param.Latency).
			Str("client_ip", param.ClientIP).
			Str("user_agent", param.Request.UserAgent()).
			Msg("HTTP Request")
		return ""
	}))

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		c.Next()
	})
}

// RequestID tags each request with the caller's X-Request-ID, or a fresh
// one, and echoes it back.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.New().String()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// cors allows any origin outside production. In production only the
// configured origins are allowed, and none when the list is empty.
func (m *Middleware) cors() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	switch {
	case len(m.server.AllowedOrigins) > 0:
		corsConfig.AllowOrigins = m.server.AllowedOrigins
		corsConfig.AllowCredentials = true
	case strings.EqualFold(m.server.Environment, "production"):
		return nil
	default:
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	corsConfig.AddAllowHeaders("Origin", "Content-Type", "Authorization", "X-API-Key", HeaderRequestID)
	corsConfig.AddExposeHeaders("Content-Length", HeaderRequestID)
	return cors.New(corsConfig)
}

// AuthMiddleware requires a bearer token. Websocket clients that cannot set
// headers pass it as the token query parameter.
func (m *Middleware) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "Unauthorized",
					"message": "Invalid Authorization header format, expected 'Bearer <token>'",
				})
				return
			}
			tokenString = parts[1]
		} else {
			tokenString = c.Query("token")
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":   "Unauthorized",
					"message": "Authorization token required via Authorization header or token query parameter",
				})
				return
			}
		}

		claims, err := m.AuthSvc.VerifyToken(c.Request.Context(), tokenString)
		if err != nil {
			m.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Failed to verify token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, string(claims.Role))
		c.Next()
	}
}

// APIKeyMiddleware guards the ops endpoints.
func (m *Middleware) APIKeyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			apiKey = c.Query("api_key")
		}

		if err := m.AuthSvc.VerifyAPIKey(c.Request.Context(), apiKey); err != nil {
			m.logger.Warn().Err(err).Str("path", c.Request.URL.Path).Msg("Rejected ops request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Invalid or missing API key",
			})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller, or "" on routes without auth.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
