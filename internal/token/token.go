// Package token issues and verifies signed session tokens carrying the
// caller's identity claim. Tokens are self-contained: there is no server-side
// session store, and logout does not invalidate previously issued tokens —
// they stay valid until natural expiry.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/atinyakov/restaurant-management/internal/apperr"
	"github.com/atinyakov/restaurant-management/internal/models"
)

// TTL is how long an issued token stays valid.
const TTL = time.Hour

// Claims is the JWT payload for a session.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies session tokens with a shared HMAC secret.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService constructs a Service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret), ttl: TTL}
}

// Issue produces a signed token embedding the identity, expiring after the
// service TTL.
func (s *Service) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Name:  identity.Name,
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string. It returns the embedded
// identity, or apperr.ErrUnauthorized when the token is absent, malformed,
// expired, or carries an invalid signature.
func (s *Service) Verify(tokenString string) (*models.Identity, error) {
	if tokenString == "" {
		return nil, apperr.ErrUnauthorized
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, apperr.ErrUnauthorized
	}

	return &models.Identity{Name: claims.Name, Email: claims.Email}, nil
}
