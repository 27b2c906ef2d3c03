package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/kisanbazaar/kisanbazaar-backend/api/routes"
	internalauth "github.com/kisanbazaar/kisanbazaar-backend/internal/auth"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/marketrates"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/orders"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/products"
	"github.com/kisanbazaar/kisanbazaar-backend/internal/users"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/config"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/db"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/logger"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/migrate"
	"github.com/kisanbazaar/kisanbazaar-backend/pkg/redis"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		// logger is not available until config is parsed
		panic(err)
	}

	logg := logger.New(logger.Options{
		ServiceName: "kisanbazaar-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	database, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "database init failed", err)
		os.Exit(1)
	}
	defer database.Close()

	if err := migrate.MaybeRunDev(ctx, cfg, logg, database); err != nil {
		logg.Error(ctx, "dev auto-migrate failed", err)
		os.Exit(1)
	}

	cache, err := redis.New(ctx, cfg.Redis, logg)
	if err != nil {
		logg.Error(ctx, "redis init failed", err)
		os.Exit(1)
	}
	defer cache.Close()

	userRepo := users.NewRepo(database.DB())
	productRepo := products.NewRepo(database.DB())
	orderRepo := orders.NewRepo(database.DB())
	rateRepo := marketrates.NewRepo(database.DB())

	handler := routes.New(routes.Deps{
		Config:             cfg,
		Logger:             logg,
		DB:                 database,
		Cache:              cache,
		AuthService:        internalauth.NewService(userRepo, cfg.JWT, cfg.Password, logg),
		UserService:        users.NewService(userRepo, cfg.Password, logg),
		ProductService:     products.NewService(productRepo, userRepo, logg),
		OrderService:       orders.NewService(orderRepo, productRepo, logg),
		MarketRateService:  marketrates.NewService(rateRepo),
		PrometheusRegistry: prometheus.NewRegistry(),
	})

	server := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info(logg.WithField(ctx, "port", cfg.App.Port), "api listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "server stopped", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logg.Error(shutdownCtx, "graceful shutdown failed", err)
		os.Exit(1)
	}
	logg.Info(shutdownCtx, "api stopped")
}
