package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roamly/pkg/config"
)

func makerWith(secret string, expiry time.Duration) *JWTMaker {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.Expiry = expiry
	return NewJWTMaker(cfg)
}

func TestJWTRoundTrip(t *testing.T) {
	maker := makerWith("test-secret", time.Hour)
	userID := uuid.New()

	token, err := maker.CreateToken(userID, "ada@example.com", "admin")
	require.NoError(t, err)

	claims, err := maker.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
}

func TestJWTExpired(t *testing.T) {
	maker := makerWith("test-secret", -time.Minute)

	token, err := maker.CreateToken(uuid.New(), "ada@example.com", "user")
	require.NoError(t, err)

	_, err = maker.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTWrongKey(t *testing.T) {
	issuer := makerWith("secret-a", time.Hour)
	verifier := makerWith("secret-b", time.Hour)

	token, err := issuer.CreateToken(uuid.New(), "ada@example.com", "user")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTGarbage(t *testing.T) {
	maker := makerWith("test-secret", time.Hour)

	_, err := maker.ValidateToken("not.a.token")
	assert.Error(t, err)
}
