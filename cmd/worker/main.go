package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/meezan-erp/meezan-erp/internal/app"
	"github.com/meezan-erp/meezan-erp/internal/dashboard"
	"github.com/meezan-erp/meezan-erp/internal/platform/strapi"
	"github.com/meezan-erp/meezan-erp/internal/query"
	"github.com/meezan-erp/meezan-erp/internal/zakat"
	"github.com/meezan-erp/meezan-erp/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
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
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis ping", slog.Any("error", err))
	}

	cmsOpts := []strapi.Option{}
	if cfg.CMSAPIToken != "" {
		cmsOpts = append(cmsOpts, strapi.WithToken(cfg.CMSAPIToken))
	}
	cms := strapi.NewClient(cfg.CMSBaseURL, cmsOpts...)
	cache := query.New(cfg.QueryCacheTTL)

	snapshots := dashboard.NewCache(redisClient, cfg.DashboardCacheTTL)
	dashboardService := dashboard.NewService(logger, cms, cache, snapshots)
	warmupJob := jobs.NewDashboardWarmupJob(dashboardService, logger)

	zakatStore := zakat.NewStore(cms, cache)
	zakatJob := jobs.NewZakatRecalculateJob(zakatStore, logger)

	warmupTask, err := jobs.NewDashboardWarmupTask("stats")
	if err != nil {
		logger.Error("build warmup task", slog.Any("error", err))
		os.Exit(1)
	}
	zakatTask, err := jobs.NewZakatRecalculateTask("scheduled")
	if err != nil {
		logger.Error("build zakat task", slog.Any("error", err))
		os.Exit(1)
	}

	worker, err := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts: asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:    logger,
		Handlers: []jobs.TaskHandler{
			{Type: jobs.TaskDashboardWarmup, Handler: warmupJob.Handle},
			{Type: jobs.TaskZakatRecalculate, Handler: zakatJob.Handle},
		},
		Cron: []jobs.CronRegistration{
			{Spec: cfg.DashboardWarmCron, Task: warmupTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
			{Spec: "0 3 * * 5", Task: zakatTask, Options: []asynq.Option{asynq.MaxRetry(3)}},
		},
	})
	if err != nil {
		logger.Error("init worker", slog.Any("error", err))
		os.Exit(1)
	}

	if err := worker.Run(ctx); err != nil && err != context.Canceled {
		logger.Error("worker run", slog.Any("error", err))
		os.Exit(1)
	}
}
