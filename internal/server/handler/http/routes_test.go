package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/apperr"
	"github.com/atinyakov/restaurant-management/internal/middleware"
	"github.com/atinyakov/restaurant-management/internal/models"
	"github.com/atinyakov/restaurant-management/internal/service"
)

// routeVerifier accepts the fixed token "valid" and rejects everything else.
type routeVerifier struct{}

func (routeVerifier) Verify(tokenString string) (*models.Identity, error) {
	if tokenString == "valid" {
		return &models.Identity{Email: "alice@example.com"}, nil
	}
	return nil, apperr.ErrUnauthorized
}

func testRouter() http.Handler {
	food := &fakeFoodService{
		foods: []models.Food{},
		page:  &service.FoodPage{Items: []models.Food{}},
		food:  &models.Food{Name: "Pizza"},
	}
	orders := &fakeOrderService{orders: []map[string]any{}}
	return NewRouter(
		&AuthHandler{Tokens: &fakeIssuer{token: "signed"}},
		&FoodHandler{FoodService: food, Log: zap.NewNop()},
		&OrderHandler{OrderService: orders, Log: zap.NewNop()},
		routeVerifier{},
		[]string{"http://localhost:5173"},
		zap.NewNop(),
	)
}

func TestRouter_Liveness(t *testing.T) {
	rec := httptest.NewRecorder()
	testRouter().ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "Restaurant Management API is running" {
		t.Errorf("unexpected liveness body %q", rec.Body.String())
	}
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	protected := []struct {
		method string
		path   string
	}{
		{"GET", "/all-foods"},
		{"POST", "/orders"},
		{"GET", "/orders"},
	}

	for _, tt := range protected {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			// Without a cookie.
			rec := httptest.NewRecorder()
			testRouter().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("no cookie: expected 401, got %d", rec.Code)
			}

			// With an invalid token.
			rec = httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "garbage"})
			testRouter().ServeHTTP(rec, req)
			if rec.Code != http.StatusUnauthorized {
				t.Errorf("bad token: expected 401, got %d", rec.Code)
			}
		})
	}
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	public := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/foods", http.StatusOK},
		{"GET", "/foods/64f000000000000000000001", http.StatusOK},
	}

	for _, tt := range public {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			testRouter().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRouter_ValidTokenReachesHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/orders?email=alice@example.com", nil)
	req.AddCookie(&http.Cookie{Name: middleware.CookieName, Value: "valid"})
	testRouter().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
}
