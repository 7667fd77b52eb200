// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"

	"github.com/atinyakov/restaurant-management/internal/models"
)

type ctxKey string

const identityKey ctxKey = "identity"

// CookieName is the transport credential carrying the session token.
const CookieName = "token"

// TokenVerifier validates a session token string and returns the identity
// it carries.
type TokenVerifier interface {
	Verify(tokenString string) (*models.Identity, error)
}

// TokenAuth is a middleware that enforces cookie-based token authentication.
//
// It extracts the session token from the request cookie and verifies it. When
// the cookie is absent or the token fails verification, the request is
// short-circuited with 401 and the wrapped handler is never invoked.
//
// On success, the decoded identity is stored in the request context, so it can
// be used downstream as the authenticated caller.
func TokenAuth(v TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			identity, err := v.Verify(cookie.Value)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), identityKey, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetIdentityFromContext extracts the verified identity from the request
// context. Returns nil if the request did not pass through TokenAuth.
func GetIdentityFromContext(ctx context.Context) *models.Identity {
	val := ctx.Value(identityKey)
	if id, ok := val.(*models.Identity); ok {
		return id
	}
	return nil
}

// WithIdentity returns a context carrying the given identity. Intended for
// handler tests that bypass the middleware.
func WithIdentity(ctx context.Context, identity *models.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}
