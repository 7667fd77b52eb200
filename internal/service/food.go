// Package service provides food catalog and order business logic,
// delegating persistence to repository interfaces.
package service

import (
	"context"

	"github.com/atinyakov/restaurant-management/internal/models"
)

// Default pagination applied to public catalog listings.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 9
)

// FoodRepository defines the persistence operations
// required by the food catalog service.
type FoodRepository interface {
	// FindByOwner returns every item whose addedBy.email matches email.
	FindByOwner(ctx context.Context, email string) ([]models.Food, error)
	// Find returns the page of items matching the optional search term and
	// owner email, plus the total count of matching documents before
	// pagination.
	Find(ctx context.Context, search, email string, skip, limit int64) ([]models.Food, int64, error)
	// Insert stores a new item and returns the generated identifier.
	Insert(ctx context.Context, food models.Food) (string, error)
	// FindByID fetches one item, apperr.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (*models.Food, error)
	// Update applies the patch to the matching item, apperr.ErrNotFound when absent.
	Update(ctx context.Context, id string, patch map[string]any) error
}

// ListFilter describes a public catalog query.
type ListFilter struct {
	// Email restricts results to items owned by this email, when non-empty.
	Email string
	// Search matches the item name as a case-insensitive substring, when non-empty.
	Search string
	// Page is the 1-based page number; values below 1 fall back to DefaultPage.
	Page int64
	// Limit is the page size; values below 1 fall back to DefaultLimit.
	Limit int64
}

// FoodPage is one page of a public catalog listing.
type FoodPage struct {
	// Items is the page contents, at most Limit entries.
	Items []models.Food `json:"foods"`
	// TotalCount is the number of items matching the filter before
	// pagination, for page-count computation by the caller.
	TotalCount int64 `json:"totalCount"`
}

// FoodService implements catalog business logic for food items.
type FoodService struct {
	// repo performs the data-layer operations.
	repo FoodRepository
}

// NewFoodService constructs a FoodService using the provided repository.
func NewFoodService(repo FoodRepository) *FoodService {
	return &FoodService{repo: repo}
}

// ListByOwner returns every item owned by the given email. An empty result is
// not an error.
func (s *FoodService) ListByOwner(ctx context.Context, email string) ([]models.Food, error) {
	return s.repo.FindByOwner(ctx, email)
}

// ListPublic returns one page of the catalog matching the filter, applying
// pagination defaults for out-of-range page and limit values.
func (s *FoodService) ListPublic(ctx context.Context, filter ListFilter) (*FoodPage, error) {
	page := filter.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := filter.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	items, total, err := s.repo.Find(ctx, filter.Search, filter.Email, (page-1)*limit, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Food{}
	}

	return &FoodPage{Items: items, TotalCount: total}, nil
}

// Create inserts a new catalog item, substituting the anonymous owner when
// the payload carries no addedBy email. Returns the inserted identifier.
func (s *FoodService) Create(ctx context.Context, food models.Food) (string, error) {
	if food.AddedBy.Email == "" {
		food.AddedBy = models.AddedBy{Name: models.AnonymousName, Email: models.AnonymousEmail}
	}
	return s.repo.Insert(ctx, food)
}

// Get fetches a single item by id.
func (s *FoodService) Get(ctx context.Context, id string) (*models.Food, error) {
	return s.repo.FindByID(ctx, id)
}

// Update replaces the provided fields on the matching item. The identifier is
// never accepted as mutable, even if supplied in the patch.
func (s *FoodService) Update(ctx context.Context, id string, patch map[string]any) error {
	return s.repo.Update(ctx, id, patch)
}
