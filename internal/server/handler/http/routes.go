// Package http provides HTTP routing and middleware configuration
// for the restaurant management service.
package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/middleware"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter constructs and returns an HTTP handler that serves
// the restaurant management API. It applies CORS for credentialed frontends,
// JSON content-type enforcement, and request logging, and gates the
// protected routes behind cookie token authentication.
//
// Routes:
//
//	GET    /             → liveness string
//	POST   /jwt          → authHandler.IssueToken
//	POST   /logout       → authHandler.Logout
//	GET    /foods        → foodHandler.ListPublic
//	POST   /foods        → foodHandler.Create
//	GET    /foods/{id}   → foodHandler.GetByID
//	PUT    /foods/{id}   → foodHandler.Update
//	DELETE /orders/{id}  → orderHandler.Delete (ownership checked against query email)
//	GET    /all-foods    → foodHandler.ListMine   (protected)
//	POST   /orders       → orderHandler.Create    (protected)
//	GET    /orders       → orderHandler.List      (protected)
func NewRouter(
	authHandler *AuthHandler,
	foodHandler *FoodHandler,
	orderHandler *OrderHandler,
	verifier middleware.TokenVerifier,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Allow credentialed cross-origin requests from the frontend origins
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	// Only allow requests with Content-Type: application/json
	r.Use(chiMiddleware.AllowContentType("application/json"))

	// Log each request and its metadata
	r.Use(middleware.WithRequestLogging(logger))

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("Restaurant Management API is running"))
	})

	// Public endpoints
	r.Post("/jwt", authHandler.IssueToken)
	r.Post("/logout", authHandler.Logout)
	r.Get("/foods", foodHandler.ListPublic)
	r.Post("/foods", foodHandler.Create)
	r.Get("/foods/{id}", foodHandler.GetByID)
	r.Put("/foods/{id}", foodHandler.Update)
	r.Delete("/orders/{id}", orderHandler.Delete)

	// Protected group: requires a valid session token cookie
	r.Group(func(r chi.Router) {
		r.Use(middleware.TokenAuth(verifier))
		r.Get("/all-foods", foodHandler.ListMine)
		r.Post("/orders", orderHandler.Create)
		r.Get("/orders", orderHandler.List)
	})

	return r
}
