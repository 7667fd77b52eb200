package service

import (
	"context"
	"fmt"

	"github.com/atinyakov/restaurant-management/internal/apperr"
	"github.com/atinyakov/restaurant-management/internal/models"
)

// OrderRepository defines the persistence operations needed by the OrderService.
type OrderRepository interface {
	// Insert stores a new order document and returns the generated identifier.
	Insert(ctx context.Context, order map[string]any) (string, error)
	// FindByEmail retrieves all orders with the given purchaser email.
	FindByEmail(ctx context.Context, email string) ([]map[string]any, error)
	// FindByID fetches a single order document, apperr.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (map[string]any, error)
	// Delete removes the order with the given id.
	Delete(ctx context.Context, id string) error
}

// StockIncrementer adds ordered quantity to a food item's purchase count.
type StockIncrementer interface {
	// IncrementPurchaseCount adds by to the item's purchase count and
	// returns the number of modified documents.
	IncrementPurchaseCount(ctx context.Context, foodID string, by int64) (int64, error)
}

// Placement reports both write outcomes of placing an order, so callers can
// detect a partial update when the stock increment matched nothing.
type Placement struct {
	// OrderID is the identifier of the inserted order.
	OrderID string `json:"orderId"`
	// StockUpdated is the number of food documents whose purchase count
	// was incremented: 1 on success, 0 when the referenced food item does
	// not exist.
	StockUpdated int64 `json:"stockUpdated"`
}

// OrderService implements order placement, listing, and deletion.
type OrderService struct {
	// repo is the underlying order persistence repository.
	repo OrderRepository
	// stock increments purchase counts on the food catalog.
	stock StockIncrementer
}

// NewOrderService constructs an OrderService with the provided repositories.
func NewOrderService(repo OrderRepository, stock StockIncrementer) *OrderService {
	return &OrderService{repo: repo, stock: stock}
}

// Place validates and inserts the order, then increments the referenced food
// item's purchase count by the ordered quantity. The two writes are
// independent and not atomic: the increment outcome is reported in the
// Placement rather than rolled into the insert.
//
// Fails with apperr.ErrInvalidInput before any write when foodId or email is
// missing from the payload.
func (s *OrderService) Place(ctx context.Context, order map[string]any) (*Placement, error) {
	foodID := stringField(order, models.OrderFieldFoodID)
	email := stringField(order, models.OrderFieldEmail)
	if foodID == "" || email == "" {
		return nil, fmt.Errorf("%w: foodId and email are required", apperr.ErrInvalidInput)
	}

	orderID, err := s.repo.Insert(ctx, order)
	if err != nil {
		return nil, err
	}

	quantity := numberField(order, models.OrderFieldQuantity)
	updated, err := s.stock.IncrementPurchaseCount(ctx, foodID, quantity)
	if err != nil {
		// The order is already stored; surface the failed second write.
		return &Placement{OrderID: orderID}, err
	}

	return &Placement{OrderID: orderID, StockUpdated: updated}, nil
}

// ListByEmail returns all orders with the given email. Fails with
// apperr.ErrForbidden, before any store access, when the requested email does
// not match the verified identity email.
func (s *OrderService) ListByEmail(ctx context.Context, identityEmail, email string) ([]map[string]any, error) {
	if identityEmail != email {
		return nil, fmt.Errorf("%w: cannot read another user's orders", apperr.ErrForbidden)
	}
	return s.repo.FindByEmail(ctx, email)
}

// Delete removes the order with the given id after verifying the supplied
// email matches the order's stored purchaser email. Fails with
// apperr.ErrNotFound when the order is absent and apperr.ErrForbidden on an
// ownership mismatch, leaving the order in place.
func (s *OrderService) Delete(ctx context.Context, id, email string) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if stringField(order, models.OrderFieldEmail) != email {
		return fmt.Errorf("%w: cannot delete another user's order", apperr.ErrForbidden)
	}

	return s.repo.Delete(ctx, id)
}

// stringField reads a string value from an order document, "" when absent or
// not a string.
func stringField(doc map[string]any, key string) string {
	if s, ok := doc[key].(string); ok {
		return s
	}
	return ""
}

// numberField reads a numeric value from an order document, coercing the
// types JSON and bson decoding produce. Returns 0 when absent.
func numberField(doc map[string]any, key string) int64 {
	switch v := doc[key].(type) {
	case float64:
		return int64(v)
	case int:
		return int64(v)
	case int32:
		return int64(v)
	case int64:
		return v
	default:
		return 0
	}
}
