package authservice

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/rs/zerolog"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/config"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidAPIKey = errors.New("invalid API key")
)

type AuthService struct {
	jwt    config.JWTConfig
	apiKey string
	logger zerolog.Logger
}

func NewAuthService(jwtConfig config.JWTConfig, security config.SecurityConfig, logger zerolog.Logger) *AuthService {
	return &AuthService{
		jwt:    jwtConfig,
		apiKey: security.APIKey,
		logger: logger.With().Str("component", "auth_service").Logger(),
	}
}

func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*domain.Claim, error) {
	if s.jwt.Secret == "" {
		s.logger.Error().Msg("JWT secret not configured")
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &domain.Claim{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwt.Secret), nil
	})
	if err != nil {
		s.logger.Debug().Err(err).Msg("Failed to parse token")
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claim)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.ExpiresAt < time.Now().Unix() {
		return nil, fmt.Errorf("%w: token expired", ErrInvalidToken)
	}
	if claims.Issuer != s.jwt.Issuer {
		s.logger.Warn().Str("issuer", claims.Issuer).Msg("Token from unexpected issuer")
		return nil, fmt.Errorf("%w: invalid issuer", ErrInvalidToken)
	}
	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return claims, nil
}

func (s *AuthService) GenerateToken(ctx context.Context, userID string, role domain.Role, ttl time.Duration) (string, error) {
	if s.jwt.Secret == "" {
		s.logger.Error().Msg("JWT secret not configured")
		return "", fmt.Errorf("JWT secret not configured")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	now := time.Now()
	claim := &domain.Claim{
		UserID: userID,
		Role:   role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(ttl).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    s.jwt.Issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claim)
	tokenString, err := token.SignedString([]byte(s.jwt.Secret))
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("Failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// VerifyAPIKey accepts only the configured ops key. An unset key disables
// every key.
func (s *AuthService) VerifyAPIKey(ctx context.Context, apiKey string) error {
	if s.apiKey == "" || apiKey == "" {
		return ErrInvalidAPIKey
	}
	if subtle.ConstantTimeCompare([]byte(apiKey), []byte(s.apiKey)) != 1 {
		return ErrInvalidAPIKey
	}
	return nil
}
