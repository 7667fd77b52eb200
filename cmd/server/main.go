// Package main initializes and starts the restaurant management HTTP server,
// setting up configuration, logging, the document store connection,
// repositories, services, and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"
	"time"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/atinyakov/restaurant-management/internal/config"
	"github.com/atinyakov/restaurant-management/internal/db"
	"github.com/atinyakov/restaurant-management/internal/logger"
	"github.com/atinyakov/restaurant-management/internal/repository"
	"github.com/atinyakov/restaurant-management/internal/server/handler/http"
	"github.com/atinyakov/restaurant-management/internal/service"
	"github.com/atinyakov/restaurant-management/internal/token"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init("Info"); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	if options.JWTSecret == "" {
		zapLogger.Fatal("JWT_SECRET must be set")
	}

	// Connect to the document store. A ping failure here is soft: the
	// process still starts and the monitor reports when the store comes up.
	client, err := db.InitMongo(options.MongoURI)
	if client == nil {
		zapLogger.Fatal("invalid document store URI", zap.Error(err))
	}
	if err != nil {
		zapLogger.Error("document store not reachable at startup", zap.Error(err))
	}
	db.StartPingMonitor(context.Background(), client, time.Minute, zapLogger)

	database := client.Database(options.Database)
	foodsCollection := database.Collection(db.FoodsCollection)
	ordersCollection := database.Collection(db.OrdersCollection)

	// Initialize repositories for the two collections.
	foodRepo := repository.NewMongoFoodRepository(foodsCollection)
	orderRepo := repository.NewMongoOrderRepository(ordersCollection)

	// Initialize business-logic services.
	foodService := service.NewFoodService(foodRepo)
	orderService := service.NewOrderService(orderRepo, foodRepo)

	// Token service for session issuance and verification.
	tokens := token.NewService(options.JWTSecret)

	// Create HTTP handlers.
	authHandler := &http.AuthHandler{Tokens: tokens, Production: options.Production}
	foodHandler := &http.FoodHandler{FoodService: foodService, Log: zapLogger}
	orderHandler := &http.OrderHandler{OrderService: orderService, Log: zapLogger}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, foodHandler, orderHandler, tokens, options.AllowedOrigins, zapLogger)

	server := &nethttp.Server{
		Addr:    options.Addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", options.Addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
