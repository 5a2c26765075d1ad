package main

import (
	"context"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"

	_ "github.com/sportsmaster/booking-api/api/swagger"
	"github.com/sportsmaster/booking-api/internal/handler"
	"github.com/sportsmaster/booking-api/internal/repository"
	"github.com/sportsmaster/booking-api/internal/service"
	"github.com/sportsmaster/booking-api/pkg/cache"
	"github.com/sportsmaster/booking-api/pkg/config"
	"github.com/sportsmaster/booking-api/pkg/database"
	"github.com/sportsmaster/booking-api/pkg/logger"
	"github.com/sportsmaster/booking-api/pkg/payment"
	"github.com/sportsmaster/booking-api/pkg/storage"
)

// @title Sports Master API
// @version 1.0.0
// @description Backend for the sports class booking platform
// @BasePath /
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	// Redis is optional: when it is down the catalog just skips caching.
	var cacheSvc *service.CacheService
	if cfg.Catalog.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, catalog cache disabled", "error", err)
		} else {
			cacheRepo := repository.NewCacheRepository(redisClient)
			cacheSvc = service.NewCacheService(cacheRepo, metricsSvc, cfg.Catalog.CacheTTL, logr, true)
			defer cacheRepo.Close() //nolint:errcheck
		}
	}

	userRepo := repository.NewUserRepository(db)
	classRepo := repository.NewClassRepository(db)
	selectionRepo := repository.NewSelectionRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	authSvc := service.NewAuthService(validate, cfg.JWT)
	userSvc := service.NewUserService(userRepo, validate, logr)
	classSvc := service.NewClassService(classRepo, cacheSvc, validate, logr)
	selectionSvc := service.NewSelectionService(selectionRepo, validate, logr)

	var receiptSvc *service.ReceiptService
	if cfg.Receipts.Enabled {
		store, err := storage.NewLocalStorage(cfg.Receipts.StorageDir)
		if err != nil {
			logr.Sugar().Fatalw("failed to init receipt storage", "error", err)
		}
		signer := storage.NewSignedURLSigner(cfg.Receipts.SignedURLSecret, cfg.Receipts.SignedURLTTL)
		receiptSvc = service.NewReceiptService(paymentRepo, store, signer, service.ReceiptQueueConfig{
			Workers:    cfg.Receipts.WorkerConcurrency,
			MaxRetries: cfg.Receipts.WorkerRetries,
		}, logr)
		receiptSvc.Start(context.Background())
		defer receiptSvc.Stop()
	}

	stripeClient := payment.NewStripeClient(cfg.Stripe.SecretKey)
	paymentSvc := service.NewPaymentService(paymentRepo, stripeClient, receiptSvc, metricsSvc, validate, logr, cfg.Stripe.Currency)

	r := handler.NewRouter(handler.RouterDeps{
		Config:     cfg,
		Logger:     logr,
		Auth:       authSvc,
		Users:      userSvc,
		Classes:    classSvc,
		Selections: selectionSvc,
		Payments:   paymentSvc,
		Receipts:   receiptSvc,
		Metrics:    metricsSvc,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
