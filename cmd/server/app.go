package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/graceshop/shop-api/internal/config"
	"github.com/graceshop/shop-api/internal/platform/logger"
	"github.com/graceshop/shop-api/internal/platform/postgres"
	"github.com/graceshop/shop-api/internal/service"
	"github.com/graceshop/shop-api/internal/service/auth"
	"github.com/graceshop/shop-api/internal/store"
)

// application holds the shared dependencies for the server: configuration,
// logging, the database pool, stores, and services. It is assembled once at
// startup and handed to the router and HTTP server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	productStore store.ProductStore
	orderStore   store.OrderStore
	cartStore    store.CartStore
	userStore    store.UserStore

	orderService     *service.OrderService
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
}

// newApplication loads configuration, sets up logging, connects to the
// database, and wires stores and services together.
func newApplication() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"database_url", maskDatabaseURL(cfg.Database.URL))

	db, err := setupDatabase(cfg, log)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	app := &application{
		config:           cfg,
		logger:           log,
		db:               db,
		productStore:     postgres.NewPostgresProductStore(db, log),
		orderStore:       postgres.NewPostgresOrderStore(db, log),
		cartStore:        postgres.NewPostgresCartStore(db, log),
		userStore:        postgres.NewPostgresUserStore(db, cfg.Auth.BcryptCost, log),
		jwtService:       jwtService,
		passwordVerifier: auth.NewBcryptVerifier(),
	}
	app.orderService = service.NewOrderService(db, app.orderStore, app.cartStore, log)

	return app, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Failed to close database connection", "error", err)
		}
	}
}
