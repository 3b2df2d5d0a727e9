package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signHS256(t *testing.T, secret string, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(JWTConfig{Secret: "test-secret", Issuer: "dealer-gateway"})
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		token := signHS256(t, "test-secret", Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "dealer-gateway",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			TenantID:  "tenant-001",
			ActorID:   "user-001",
			ActorRole: RoleSeller,
		})

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "tenant-001", claims.TenantID)
		assert.Equal(t, "user-001", claims.ActorID)
		assert.True(t, claims.HasRole(RoleSeller))
		assert.False(t, claims.HasRole(RoleFIManager))
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signHS256(t, "other-secret", Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "dealer-gateway",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
			TenantID: "tenant-001",
		})

		_, err := svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("missing tenant claim", func(t *testing.T) {
		token := signHS256(t, "test-secret", Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "dealer-gateway",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := svc.ValidateToken(token)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "tenant_id")
	})

	t.Run("expired token", func(t *testing.T) {
		token := signHS256(t, "test-secret", Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "dealer-gateway",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
			TenantID: "tenant-001",
		})

		_, err := svc.ValidateToken(token)
		assert.Error(t, err)
	})
}

func TestNewJWTService_RequiresKeyMaterial(t *testing.T) {
	_, err := NewJWTService(JWTConfig{})
	assert.Error(t, err)
}
