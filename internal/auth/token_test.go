package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"servicemart/internal/config"
	"servicemart/internal/domain"
)

func testJWTConfig() *config.JWTConfig {
	return &config.JWTConfig{Secret: "test-secret", TokenExpiry: time.Hour, Issuer: "servicemart"}
}

func TestTokenManager_IssueAndValidate(t *testing.T) {
	m := NewTokenManager(testJWTConfig())

	token, expiry, err := m.Issue("B1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiry, 5*time.Second)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "B1", claims.BusinessID)
	assert.Equal(t, "B1", claims.Subject)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testJWTConfig())
	m.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := m.Issue("B1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, _, err := NewTokenManager(testJWTConfig()).Issue("B1")
	require.NoError(t, err)

	other := testJWTConfig()
	other.Secret = "another-secret"
	_, err = NewTokenManager(other).Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_MissingBusinessID(t *testing.T) {
	cfg := testJWTConfig()
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    cfg.Issuer,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	_, err = NewTokenManager(cfg).Validate(token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenManager_IssueRequiresBusiness(t *testing.T) {
	_, _, err := NewTokenManager(testJWTConfig()).Issue("")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
