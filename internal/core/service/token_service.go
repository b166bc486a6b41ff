package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/assetdesk/inventory-api/internal/core/domain"
	"github.com/assetdesk/inventory-api/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and verifies HS256-signed identity tokens.
// It is a pure function pair over the shared secret and the current time;
// nothing is persisted.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a TokenService. An empty secret is a configuration
// error: the caller must fail startup rather than serve unsigned tokens.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, domain.ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue produces a signed token carrying the subject id and role.
func (s *TokenService) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify parses and validates token. Every failure mode collapses into
// domain.ErrInvalidToken so callers cannot distinguish an expired token
// from a forged one.
func (s *TokenService) Verify(token string) (*ports.TokenClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidToken
	}
	return &ports.TokenClaims{UserID: sub, Role: role}, nil
}
