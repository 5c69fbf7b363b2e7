package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/meezan-erp/meezan-erp/internal/app"
	"github.com/meezan-erp/meezan-erp/internal/batches"
	"github.com/meezan-erp/meezan-erp/internal/budgets"
	"github.com/meezan-erp/meezan-erp/internal/cashflows"
	"github.com/meezan-erp/meezan-erp/internal/dashboard"
	"github.com/meezan-erp/meezan-erp/internal/inventory"
	"github.com/meezan-erp/meezan-erp/internal/overheadrates"
	"github.com/meezan-erp/meezan-erp/internal/owners"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/products"
	"github.com/meezan-erp/meezan-erp/internal/query"
	"github.com/meezan-erp/meezan-erp/internal/sales"
	"github.com/meezan-erp/meezan-erp/internal/zakat"
	"github.com/meezan-erp/meezan-erp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	cmsOpts := []strapi.Option{}
	if cfg.CMSAPIToken != "" {
		cmsOpts = append(cmsOpts, strapi.WithToken(cfg.CMSAPIToken))
	}
	cms := strapi.NewClient(cfg.CMSBaseURL, cmsOpts...)
	cache := query.New(cfg.QueryCacheTTL)

	productStore := products.NewStore(cms, cache)
	productsHandler := products.NewHandler(logger, productStore)

	batchStore := batches.NewStore(cms, cache)
	batchService := batches.NewService(logger, batchStore, cache)
	batchesHandler := batches.NewHandler(logger, batchStore, batchService, productStore)

	saleStore := sales.NewStore(cms, cache)
	saleService := sales.NewService(logger, saleStore, batchStore)
	salesHandler := sales.NewHandler(logger, saleStore, saleService)

	cashflowStore := cashflows.NewStore(cms, cache)
	cashflowsHandler := cashflows.NewHandler(logger, cashflowStore)

	ownerStore := owners.NewStore(cms, cache)
	ownerService := owners.NewService(logger, ownerStore, cashflowStore)
	ownersHandler := owners.NewHandler(logger, ownerStore, ownerService)

	rateStore := overheadrates.NewStore(cms, cache)
	overheadRatesHandler := overheadrates.NewHandler(logger, rateStore)

	budgetStore := budgets.NewStore(cms, cache)
	budgetsHandler := budgets.NewHandler(logger, budgetStore)

	zakatStore := zakat.NewStore(cms, cache)
	zakatHandler := zakat.NewHandler(logger, zakatStore)

	inventoryStore := inventory.NewStore(cms, cache)
	inventoryHandler := inventory.NewHandler(logger, inventoryStore, float64(cfg.LowStockThreshold))

	snapshots := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(logger, cms, cache, snapshots)
	dashboardHandler := dashboard.NewHandler(logger, dashboardService)

	inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := inspector.Close(); err != nil {
			logger.Warn("inspector close", slog.Any("error", err))
		}
	}()
	queueClient, err := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	if err != nil {
		logger.Error("init queue client", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := queueClient.Close(); err != nil {
			logger.Warn("queue client close", slog.Any("error", err))
		}
	}()
	jobHandler := jobs.NewHandler(inspector, queueClient, logger)

	router := app.NewRouter(app.RouterParams{
		Logger:               logger,
		Config:               cfg,
		ProductsHandler:      productsHandler,
		BatchesHandler:       batchesHandler,
		SalesHandler:         salesHandler,
		CashflowsHandler:     cashflowsHandler,
		OwnersHandler:        ownersHandler,
		OverheadRatesHandler: overheadRatesHandler,
		BudgetsHandler:       budgetsHandler,
		ZakatHandler:         zakatHandler,
		InventoryHandler:     inventoryHandler,
		DashboardHandler:     dashboardHandler,
		JobHandler:           jobHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
