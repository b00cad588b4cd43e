// Package auth issues and verifies the bearer tokens businesses use to
// manage their listings.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"servicemart/internal/config"
	"servicemart/internal/domain"
)

const audience = "listings"

// Claims represents the JWT claims with business context.
type Claims struct {
	jwt.RegisteredClaims
	BusinessID string `json:"business_id"`
}

// TokenManager signs and validates HS256 business tokens.
type TokenManager struct {
	cfg *config.JWTConfig
	now func() time.Time
}

// NewTokenManager creates a TokenManager from the JWT settings.
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{cfg: cfg, now: time.Now}
}

// Issue signs a token for businessID and returns it with its expiry.
func (m *TokenManager) Issue(businessID string) (string, time.Time, error) {
	if businessID == "" {
		return "", time.Time{}, fmt.Errorf("auth.Issue: %w: empty business id", domain.ErrUnauthorized)
	}
	now := m.now()
	expiry := now.Add(m.cfg.TokenExpiry)

	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   businessID,
			Issuer:    m.cfg.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiry),
			ID:        uuid.New().String(),
			Audience:  jwt.ClaimStrings{audience},
		},
		BusinessID: businessID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return signed, expiry, nil
}

// Validate parses tokenString and returns its claims. Any failure is
// reported as domain.ErrInvalidToken.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.cfg.Secret), nil
	},
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(audience),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !token.Valid {
		return nil, errors.Join(domain.ErrInvalidToken, err)
	}
	if claims.BusinessID == "" {
		return nil, fmt.Errorf("%w: missing business_id", domain.ErrInvalidToken)
	}
	return claims, nil
}
