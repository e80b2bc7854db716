package authservice

import (
	"context"
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuncanbit/bss/internal/domain"
	"github.com/tuncanbit/bss/pkg/config"
	"github.com/tuncanbit/bss/pkg/logger"
)

func newService(secret string) *AuthService {
	return NewAuthService(
		config.JWTConfig{Secret: secret, Issuer: "tucanbit"},
		config.SecurityConfig{APIKey: "ops-key"},
		logger.Nop(),
	)
}

func TestVerifyToken_RoundTrip(t *testing.T) {
	s := newService("s3cret")
	token, err := s.GenerateToken(context.Background(), "guest-1", domain.RoleRequester, time.Hour)
	require.NoError(t, err)

	claims, err := s.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "guest-1", claims.UserID)
	assert.Equal(t, domain.RoleRequester, claims.Role)
}

func TestVerifyToken_Rejections(t *testing.T) {
	s := newService("s3cret")
	sign := func(secret string, claim *domain.Claim) string {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claim).SignedString([]byte(secret))
		require.NoError(t, err)
		return tok
	}
	valid := func() *domain.Claim {
		return &domain.Claim{UserID: "guest-1", StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(), Issuer: "tucanbit",
		}}
	}

	expired := valid()
	expired.ExpiresAt = time.Now().Add(-time.Minute).Unix()
	foreign := valid()
	foreign.Issuer = "someone-else"
	anonymous := valid()
	anonymous.UserID = ""

	tests := map[string]string{
		"garbage":        "not-a-token",
		"wrong secret":   sign("other", valid()),
		"expired":        sign("s3cret", expired),
		"foreign issuer": sign("s3cret", foreign),
		"no subject":     sign("s3cret", anonymous),
	}
	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := s.VerifyToken(context.Background(), token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	_, err := newService("").VerifyToken(context.Background(), sign("s3cret", valid()))
	assert.Error(t, err)
}

func TestVerifyAPIKey(t *testing.T) {
	s := newService("s3cret")
	assert.NoError(t, s.VerifyAPIKey(context.Background(), "ops-key"))
	assert.ErrorIs(t, s.VerifyAPIKey(context.Background(), "ops-kez"), ErrInvalidAPIKey)
	assert.ErrorIs(t, s.VerifyAPIKey(context.Background(), ""), ErrInvalidAPIKey)

	unset := NewAuthService(config.JWTConfig{}, config.SecurityConfig{}, logger.Nop())
	assert.ErrorIs(t, unset.VerifyAPIKey(context.Background(), ""), ErrInvalidAPIKey)
}
