package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/middleware"
	"github.com/atinyakov/restaurant-management/internal/models"
	"github.com/atinyakov/restaurant-management/internal/service"
)

// FoodService defines the catalog operations required by the FoodHandler.
type FoodService interface {
	// ListByOwner returns every item owned by the given email.
	ListByOwner(ctx context.Context, email string) ([]models.Food, error)
	// ListPublic returns one page of the catalog matching the filter.
	ListPublic(ctx context.Context, filter service.ListFilter) (*service.FoodPage, error)
	// Create inserts a new item and returns the generated identifier.
	Create(ctx context.Context, food models.Food) (string, error)
	// Get fetches one item by id.
	Get(ctx context.Context, id string) (*models.Food, error)
	// Update replaces the provided fields on the matching item.
	Update(ctx context.Context, id string, patch map[string]any) error
}

// FoodHandler handles HTTP requests for the food catalog.
type FoodHandler struct {
	// FoodService performs the underlying catalog operations.
	FoodService FoodService
	// Log records store failures before they are converted to responses.
	Log *zap.Logger
}

// ListMine handles GET /all-foods requests.
// It returns every item owned by the authenticated identity. The route is
// gated, so a missing context identity means the middleware was bypassed.
func (h *FoodHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := middleware.GetIdentityFromContext(r.Context())
	if identity == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	foods, err := h.FoodService.ListByOwner(r.Context(), identity.Email)
	if err != nil {
		respondError(w, h.Log, err, "failed to fetch food items")
		return
	}
	if foods == nil {
		foods = []models.Food{}
	}

	writeJSON(w, http.StatusOK, map[string]any{"foods": foods})
}

// ListPublic handles GET /foods requests.
// Query parameters: email (exact owner match), search (case-insensitive name
// substring), page and limit (pagination, defaulting to 1 and 9). The
// response carries the page items and the pre-pagination total count.
func (h *FoodHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := service.ListFilter{
		Email:  q.Get("email"),
		Search: q.Get("search"),
		Page:   parseQueryInt(q.Get("page")),
		Limit:  parseQueryInt(q.Get("limit")),
	}

	page, err := h.FoodService.ListPublic(r.Context(), filter)
	if err != nil {
		respondError(w, h.Log, err, "failed to fetch foods")
		return
	}

	writeJSON(w, http.StatusOK, page)
}

// Create handles POST /foods requests.
// It inserts the posted item; when the payload carries no owner identity the
// anonymous owner is substituted. Responds 201 with the inserted id.
func (h *FoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		writeError(w, http.StatusBadRequest, "invalid food payload")
		return
	}

	id, err := h.FoodService.Create(r.Context(), food)
	if err != nil {
		respondError(w, h.Log, err, "failed to add food item")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message":    "Food added successfully",
		"insertedId": id,
	})
}

// GetByID handles GET /foods/{id} requests.
// Items stored without a purchase count read back with purchaseCount 0.
func (h *FoodHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	food, err := h.FoodService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, h.Log, err, "failed to fetch food by id")
		return
	}

	writeJSON(w, http.StatusOK, food)
}

// Update handles PUT /foods/{id} requests.
// The patch replaces every provided field; identifier keys are silently
// dropped so the item's id can never change.
func (h *FoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	var patch map[string]any
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid update payload")
		return
	}

	if err := h.FoodService.Update(r.Context(), chi.URLParam(r, "id"), patch); err != nil {
		respondError(w, h.Log, err, "failed to update food")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Food updated successfully"})
}

// parseQueryInt parses a pagination query value, 0 when absent or invalid so
// the service applies its defaults.
func parseQueryInt(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
