package main

import (
	"context"
	"encoding/hex"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/shopmart/shopmart/config"
	"github.com/shopmart/shopmart/internal/auth"
	"github.com/shopmart/shopmart/internal/cache"
	handler "github.com/shopmart/shopmart/internal/handler/http"
	"github.com/shopmart/shopmart/internal/middleware"
	"github.com/shopmart/shopmart/internal/repository"
	"github.com/shopmart/shopmart/internal/repository/postgres"
	"github.com/shopmart/shopmart/internal/service"
	"github.com/shopmart/shopmart/internal/shipping"
	"github.com/shopmart/shopmart/internal/worker"
	"go.uber.org/zap"
)

const defaultPollInterval = 30 * time.Second

// newLogger creates logger with log level
func newLogger(level string) (*zap.Logger, error) {

	loggerLvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, err
	}
	loggerCfg := zap.NewProductionConfig()
	loggerCfg.Level = loggerLvl

	return loggerCfg.Build()
}

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Sync()

	// create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Fatal("Error migrating database", zap.Error(err))
	}

	// initialize redis
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	tokenKey, err := hex.DecodeString(cfg.TokenKey)
	if err != nil {
		logger.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	pollInterval, err := time.ParseDuration(cfg.PollInterval)
	if err != nil {
		pollInterval = defaultPollInterval
	}

	// dependency injection
	// user
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService, token)

	// auth
	authService := service.NewAuthService(userRepo, token)
	authHandler := handler.NewAuthHandler(authService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	trackingClient := shipping.NewClient(cfg.ShippingAPIAddr)
	orderService := service.NewOrderService(orderRepo, trackingClient, logger)
	orderHandler := handler.NewOrderHandler(orderService)

	// checkout
	customerRepo := repository.NewCustomerRepository(db)
	settingsCache := cache.NewSettingsCache(rdb, storeRepo)
	checkoutService := service.NewCheckoutService(orderRepo, customerRepo, settingsCache)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	// customer
	loyaltyRepo := repository.NewLoyaltyRepository(db)
	customerService := service.NewCustomerService(customerRepo, loyaltyRepo)
	customerHandler := handler.NewCustomerHandler(customerService)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger))

	router.Post("/api/user/register", userHandler.RegisterUser())
	router.Post("/api/user/login", authHandler.LoginUser())

	// public storefront routes
	router.Post("/api/store/quote", checkoutHandler.Quote())
	router.Post("/api/store/checkout", checkoutHandler.Checkout())
	router.Get("/api/store/orders/{orderID}", orderHandler.GetOrder())

	// routes that require authentication
	router.Group(func(group chi.Router) {
		group.Use(middleware.Auth(token))
		group.Get("/api/orders", orderHandler.ListStoreOrders())
		group.Post("/api/orders/{orderID}/status", orderHandler.UpdateStatus())
		group.Post("/api/orders/{orderID}/delivered", orderHandler.MarkDelivered())
		group.Post("/api/orders/{orderID}/cancel", orderHandler.Cancel())
		group.Post("/api/orders/{orderID}/paid", orderHandler.MarkPaid())
		group.Get("/api/customers", customerHandler.ListCustomers())
		group.Get("/api/customers/{customerID}", customerHandler.GetCustomer())
		group.Post("/api/customers/{customerID}/loyalty", customerHandler.AddLoyaltyTransaction())
		group.Get("/api/customers/{customerID}/loyalty", customerHandler.GetLedger())
		group.Post("/api/customers/{customerID}/ban", customerHandler.SetBan())
		group.Post("/api/customers/{customerID}/cod", customerHandler.SetCODBlock())
	})

	// poll the shipping partner for delivery confirmations
	tracker := worker.NewShipmentTracker(orderService, pollInterval, logger)
	go tracker.Run(ctx)

	logger.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := http.ListenAndServe(cfg.ServerAddr, router); err != nil {
		logger.Fatal("Error starting server", zap.Error(err))
	}
}
