package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atinyakov/restaurant-management/internal/apperr"
)

// fakeOrderRepo implements OrderRepository for testing and records calls.
type fakeOrderRepo struct {
	insertID  string
	insertErr error
	orders    []map[string]any
	findErr   error
	byID      map[string]any
	byIDErr   error
	deleteErr error

	insertCalls int
	findCalls   int
	deleteCalls int
}

func (f *fakeOrderRepo) Insert(ctx context.Context, order map[string]any) (string, error) {
	f.insertCalls++
	return f.insertID, f.insertErr
}

func (f *fakeOrderRepo) FindByEmail(ctx context.Context, email string) ([]map[string]any, error) {
	f.findCalls++
	return f.orders, f.findErr
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id string) (map[string]any, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byID, nil
}

func (f *fakeOrderRepo) Delete(ctx context.Context, id string) error {
	f.deleteCalls++
	return f.deleteErr
}

// fakeStock implements StockIncrementer for testing.
type fakeStock struct {
	modified int64
	err      error

	gotFoodID string
	gotBy     int64
	calls     int
}

func (f *fakeStock) IncrementPurchaseCount(ctx context.Context, foodID string, by int64) (int64, error) {
	f.calls++
	f.gotFoodID = foodID
	f.gotBy = by
	return f.modified, f.err
}

func TestOrderService_Place_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		order map[string]any
	}{
		{"missing email", map[string]any{"foodId": "64f000000000000000000001", "quantity": 2}},
		{"missing foodId", map[string]any{"email": "eater@example.com", "quantity": 2}},
		{"both missing", map[string]any{"quantity": 2}},
		{"wrong types", map[string]any{"foodId": 7, "email": true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeOrderRepo{}
			stock := &fakeStock{}
			svc := NewOrderService(repo, stock)

			_, err := svc.Place(context.Background(), tt.order)
			if !errors.Is(err, apperr.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			// No writes may happen on invalid input.
			if repo.insertCalls != 0 || stock.calls != 0 {
				t.Errorf("expected no writes, got insert=%d stock=%d", repo.insertCalls, stock.calls)
			}
		})
	}
}

func TestOrderService_Place_IncrementsByQuantity(t *testing.T) {
	repo := &fakeOrderRepo{insertID: "64f000000000000000000002"}
	stock := &fakeStock{modified: 1}
	svc := NewOrderService(repo, stock)

	order := map[string]any{
		"foodId":   "64f000000000000000000001",
		"email":    "eater@example.com",
		"quantity": float64(3), // JSON numbers decode as float64
		"note":     "extra chili",
	}

	placement, err := svc.Place(context.Background(), order)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placement.OrderID != "64f000000000000000000002" {
		t.Errorf("OrderID = %q", placement.OrderID)
	}
	if placement.StockUpdated != 1 {
		t.Errorf("StockUpdated = %d, want 1", placement.StockUpdated)
	}
	if stock.gotFoodID != "64f000000000000000000001" || stock.gotBy != 3 {
		t.Errorf("increment called with (%q, %d), want (food id, 3)", stock.gotFoodID, stock.gotBy)
	}
}

func TestOrderService_Place_PartialUpdateSurfaced(t *testing.T) {
	// The food id resolves to nothing: insert succeeds, increment matches 0.
	repo := &fakeOrderRepo{insertID: "64f000000000000000000002"}
	stock := &fakeStock{modified: 0}
	svc := NewOrderService(repo, stock)

	placement, err := svc.Place(context.Background(), map[string]any{
		"foodId": "64f0000000000000000000ff", "email": "eater@example.com", "quantity": 1,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placement.StockUpdated != 0 {
		t.Errorf("StockUpdated = %d, want 0 for a dangling food reference", placement.StockUpdated)
	}
	if placement.OrderID == "" {
		t.Error("expected the inserted order id even though the stock update matched nothing")
	}
}

func TestOrderService_Place_IncrementError(t *testing.T) {
	repo := &fakeOrderRepo{insertID: "64f000000000000000000002"}
	stock := &fakeStock{err: errors.New("store down")}
	svc := NewOrderService(repo, stock)

	placement, err := svc.Place(context.Background(), map[string]any{
		"foodId": "64f000000000000000000001", "email": "eater@example.com", "quantity": 1,
	})
	if err == nil {
		t.Fatal("expected the increment error to surface")
	}
	// The order was inserted before the failure; the id must still be reported.
	if placement == nil || placement.OrderID != "64f000000000000000000002" {
		t.Errorf("expected placement with order id on partial failure, got %+v", placement)
	}
}

func TestOrderService_Place_InsertError(t *testing.T) {
	repo := &fakeOrderRepo{insertErr: errors.New("store down")}
	stock := &fakeStock{}
	svc := NewOrderService(repo, stock)

	_, err := svc.Place(context.Background(), map[string]any{
		"foodId": "64f000000000000000000001", "email": "eater@example.com",
	})
	if err == nil {
		t.Fatal("expected insert error to propagate")
	}
	if stock.calls != 0 {
		t.Errorf("expected no increment after a failed insert, got %d calls", stock.calls)
	}
}

func TestOrderService_ListByEmail_Forbidden(t *testing.T) {
	repo := &fakeOrderRepo{}
	svc := NewOrderService(repo, &fakeStock{})

	_, err := svc.ListByEmail(context.Background(), "alice@example.com", "bob@example.com")
	if !errors.Is(err, apperr.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
	// The mismatch must be rejected before any store access.
	if repo.findCalls != 0 {
		t.Errorf("expected no store access, got %d calls", repo.findCalls)
	}
}

func TestOrderService_ListByEmail_Match(t *testing.T) {
	repo := &fakeOrderRepo{orders: []map[string]any{{"email": "alice@example.com"}}}
	svc := NewOrderService(repo, &fakeStock{})

	orders, err := svc.ListByEmail(context.Background(), "alice@example.com", "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 {
		t.Errorf("expected 1 order, got %d", len(orders))
	}
}

func TestOrderService_Delete(t *testing.T) {
	tests := []struct {
		name        string
		repo        *fakeOrderRepo
		email       string
		wantErr     error
		wantDeleted bool
	}{
		{
			name:    "order not found",
			repo:    &fakeOrderRepo{byIDErr: apperr.ErrNotFound},
			email:   "alice@example.com",
			wantErr: apperr.ErrNotFound,
		},
		{
			name:    "ownership mismatch",
			repo:    &fakeOrderRepo{byID: map[string]any{"email": "bob@example.com"}},
			email:   "alice@example.com",
			wantErr: apperr.ErrForbidden,
		},
		{
			name:        "owner deletes",
			repo:        &fakeOrderRepo{byID: map[string]any{"email": "alice@example.com"}},
			email:       "alice@example.com",
			wantDeleted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewOrderService(tt.repo, &fakeStock{})

			err := svc.Delete(context.Background(), "64f000000000000000000003", tt.email)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
				// The order must remain in the store.
				if tt.repo.deleteCalls != 0 {
					t.Errorf("expected no delete, got %d calls", tt.repo.deleteCalls)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantDeleted && tt.repo.deleteCalls != 1 {
				t.Errorf("expected exactly one delete, got %d", tt.repo.deleteCalls)
			}
		})
	}
}

func TestNumberField(t *testing.T) {
	doc := map[string]any{
		"f64": float64(4), "i": int(5), "i32": int32(6), "i64": int64(7), "s": "8",
	}
	cases := map[string]int64{"f64": 4, "i": 5, "i32": 6, "i64": 7, "s": 0, "absent": 0}
	for key, want := range cases {
		if got := numberField(doc, key); got != want {
			t.Errorf("numberField(%q) = %d, want %d", key, got, want)
		}
	}
}
