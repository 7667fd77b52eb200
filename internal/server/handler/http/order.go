package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/middleware"
	"github.com/atinyakov/restaurant-management/internal/service"
)

// OrderService defines the order operations required by the OrderHandler.
type OrderService interface {
	// Place inserts the order and increments the referenced food item's
	// purchase count, reporting both write outcomes.
	Place(ctx context.Context, order map[string]any) (*service.Placement, error)
	// ListByEmail returns all orders with the given email after verifying
	// it matches the identity email.
	ListByEmail(ctx context.Context, identityEmail, email string) ([]map[string]any, error)
	// Delete removes the order after an ownership check against email.
	Delete(ctx context.Context, id, email string) error
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	// OrderService performs the underlying order operations.
	OrderService OrderService
	// Log records store failures before they are converted to responses.
	Log *zap.Logger
}

// Create handles POST /orders requests.
// The payload may carry arbitrary fields but must include foodId and email.
// On success the response reports the inserted order id and whether the
// stock increment matched a food item, so callers can detect a partial write.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var order map[string]any
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid order data")
		return
	}

	placement, err := h.OrderService.Place(r.Context(), order)
	if err != nil {
		respondError(w, h.Log, err, "failed to place order")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Order placed successfully",
		"result":  placement,
	})
}

// List handles GET /orders requests.
// The email query parameter must match the authenticated identity's email.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := h.OrderService.ListByEmail(r.Context(), identity.Email, r.URL.Query().Get("email"))
	if err != nil {
		respondError(w, h.Log, err, "failed to fetch orders")
		return
	}
	if orders == nil {
		orders = []map[string]any{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// Delete handles DELETE /orders/{id} requests.
// Ownership is checked against the caller-supplied email query parameter, not
// a verified identity; the route is deliberately ungated.
func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	email := r.URL.Query().Get("email")

	if err := h.OrderService.Delete(r.Context(), id, email); err != nil {
		respondError(w, h.Log, err, "failed to delete order")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Order deleted successfully"})
}
