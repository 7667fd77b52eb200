// Package http provides HTTP handlers for session issuance, the food
// catalog, and orders.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/atinyakov/restaurant-management/internal/middleware"
	"github.com/atinyakov/restaurant-management/internal/models"
	"github.com/atinyakov/restaurant-management/internal/token"
)

// TokenIssuer defines the token operations required by the AuthHandler.
type TokenIssuer interface {
	// Issue produces a signed session token embedding the identity.
	Issue(identity models.Identity) (string, error)
}

// AuthHandler handles HTTP requests for session issuance and logout.
type AuthHandler struct {
	// Tokens signs session tokens.
	Tokens TokenIssuer
	// Production toggles the Secure and SameSite cookie attributes.
	Production bool
}

// IssueToken handles POST /jwt requests.
// It expects a JSON identity payload with a non-empty "email" field, signs a
// session token for it, and delivers the token in an http-only cookie.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var identity models.Identity
	if err := json.NewDecoder(r.Body).Decode(&identity); err != nil || identity.Email == "" {
		writeError(w, http.StatusBadRequest, "invalid identity payload")
		return
	}

	signed, err := h.Tokens.Issue(identity)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}

	http.SetCookie(w, h.sessionCookie(signed, int(token.TTL.Seconds())))
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// Logout handles POST /logout requests.
// It clears the session cookie. Tokens already issued stay cryptographically
// valid until natural expiry; there is no server-side invalidation list.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.sessionCookie("", -1))
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// sessionCookie builds the session transport credential. In production the
// cookie is Secure with SameSite=None for cross-site frontends; in
// development it stays SameSite=Strict over plain HTTP.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteStrictMode,
	}
	if h.Production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
