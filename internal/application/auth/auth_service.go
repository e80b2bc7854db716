package authservice

import (
	"context"
	"time"

	"github.com/tuncanbit/bss/internal/domain"
)

//go:generate mockgen -source=auth_service.go -destination=mocks/auth_service_mock.go -package=mock_authservice

// IAuthService verifies credentials issued by the platform's identity service.
type IAuthService interface {
	VerifyToken(ctx context.Context, tokenString string) (*domain.Claim, error)
	// GenerateToken signs a token for service-to-service calls and local testing.
	GenerateToken(ctx context.Context, userID string, role domain.Role, ttl time.Duration) (string, error)
	VerifyAPIKey(ctx context.Context, apiKey string) error
}
