package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/kaykidoutai/pizzapi2/app/catalog"
	"github.com/kaykidoutai/pizzapi2/app/categories"
	"github.com/kaykidoutai/pizzapi2/app/orders"
	"github.com/kaykidoutai/pizzapi2/client"
	"github.com/kaykidoutai/pizzapi2/config"
	"github.com/kaykidoutai/pizzapi2/logging"
	"github.com/kaykidoutai/pizzapi2/menusource"
	"github.com/kaykidoutai/pizzapi2/models"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.LogMode, cfg.LogFile)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.StoreID == "" {
		zap.L().Fatal("PIZZAPI_STORE_ID is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	urls, err := client.URLsFor(cfg.Country)
	if err != nil {
		zap.L().Fatal("invalid country", zap.Error(err))
	}
	httpClient := client.New(client.WithTimeout(cfg.HTTPTimeout), client.WithReferer(urls.Referer))

	var cache menusource.Cache
	if cfg.RedisAddr != "" {
		rc := menusource.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rc.Close()
		cache = rc
	}

	loader, err := menusource.NewLoader(httpClient, cfg.Country, cache, cfg.MenuCacheTTL)
	if err != nil {
		zap.L().Fatal("failed to create menu loader", zap.Error(err))
	}
	menu, err := loader.Load(ctx, cfg.StoreID, cfg.Language)
	if err != nil {
		zap.L().Fatal("failed to load menu", zap.String("store_id", cfg.StoreID), zap.Error(err))
	}

	catalogHandler := catalog.NewCatalogHandler(menu)
	categoryHandler := categories.NewCategoryHandler(menu)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /catalog", catalogHandler.HandleGet)
	mux.HandleFunc("GET /catalog/search", catalogHandler.HandleSearch)
	mux.HandleFunc("GET /catalog/{code}", catalogHandler.HandleGetProduct)
	mux.HandleFunc("GET /categories", categoryHandler.HandleGetAll)

	if cfg.DatabaseURL != "" {
		db, err := models.OpenDatabase(cfg.DatabaseURL)
		if err != nil {
			zap.L().Fatal("failed to connect to database", zap.Error(err))
		}
		repo := models.NewOrdersRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			zap.L().Fatal("database migration failed", zap.Error(err))
		}
		ordersHandler := orders.NewOrdersHandler(repo)
		mux.HandleFunc("GET /orders", ordersHandler.HandleGet)
		mux.HandleFunc("GET /orders/{reference}", ordersHandler.HandleGetOrder)
	} else {
		zap.L().Warn("DATABASE_URL not set, order history is disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zap.L().Info("starting server", zap.String("addr", srv.Addr), zap.String("store_id", cfg.StoreID))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zap.L().Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("server shutdown failed", zap.Error(err))
	}
}
