package main

import (
	"database/sql"
	"log"
	"net/http"
	"time"

	"tayarpro-be/internal/account"
	"tayarpro-be/internal/appointment"
	"tayarpro-be/internal/auth"
	"tayarpro-be/internal/cart"
	"tayarpro-be/internal/catalog"
	"tayarpro-be/internal/checkout"
	"tayarpro-be/internal/config"
	"tayarpro-be/internal/db"
	"tayarpro-be/internal/httpapi"
	"tayarpro-be/internal/logger"
	"tayarpro-be/internal/order"
	"tayarpro-be/internal/vehicle"

	"go.uber.org/zap"
)

// Seams for tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = http.ListenAndServe
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := initDBFunc(cfg)
	defer database.Close()

	router, err := newServer(cfg, database)
	if err != nil {
		return err
	}

	logger.L().Info("🚀 server listening", zap.String("port", cfg.AppPort))
	return startServerFunc(":"+cfg.AppPort, router)
}

func newServer(cfg *config.Config, database *sql.DB) (http.Handler, error) {
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	if err != nil {
		return nil, err
	}

	// One lock set for cart mutation and checkout, so a checkout never
	// races the cart it is spending.
	locks := cart.NewAccountLocks()

	catalogRepo := catalog.NewRepository(database)
	catalogSvc := catalog.NewService(catalogRepo)

	accountRepo := account.NewRepository(database)
	accountSvc := account.NewService(accountRepo, tokens)

	vehicleRepo := vehicle.NewRepository(database)
	vehicleSvc := vehicle.NewService(vehicleRepo)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, catalogSvc, locks)

	checkoutRepo := checkout.NewRepository(database)
	checkoutSvc := checkout.NewService(checkoutRepo, vehicleRepo, locks)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	appointmentRepo := appointment.NewRepository(database)
	appointmentSvc := appointment.NewService(appointmentRepo, vehicleRepo)

	return httpapi.NewRouter(httpapi.Services{
		Accounts:     accountSvc,
		Catalog:      catalogSvc,
		Carts:        cartSvc,
		Checkout:     checkoutSvc,
		Orders:       orderSvc,
		Appointments: appointmentSvc,
		Vehicles:     vehicleSvc,
		Tokens:       tokens,
	}), nil
}
