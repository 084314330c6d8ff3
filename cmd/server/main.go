package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"

	httpAdapter "github.com/ateliedalu/caixa/internal/adapter/http"
	"github.com/ateliedalu/caixa/internal/adapter/http/handler"
	"github.com/ateliedalu/caixa/internal/adapter/http/middleware"
	"github.com/ateliedalu/caixa/internal/adapter/repository/jsonfile"
	"github.com/ateliedalu/caixa/internal/domain"
	"github.com/ateliedalu/caixa/internal/infrastructure/config"
	"github.com/ateliedalu/caixa/internal/infrastructure/logger"
	"github.com/ateliedalu/caixa/internal/infrastructure/metrics"
	"github.com/ateliedalu/caixa/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	// Initialize metrics
	m := metrics.New()

	// Initialize store
	store := jsonfile.NewStore(cfg.DataFile, appLogger, m)
	retrying := jsonfile.NewRetryingStore(store, appLogger)
	idGen := jsonfile.NewULIDGenerator()
	appLogger.Info().Str("file", cfg.DataFile).Msg("using data file")

	// Initialize use cases
	ledgerUC := usecase.NewLedgerUseCase(retrying, idGen, m)
	investmentUC := usecase.NewInvestmentUseCase(retrying, idGen, m)
	payableUC := usecase.NewPayableUseCase(retrying, idGen, m)
	receivableUC := usecase.NewReceivableUseCase(retrying, idGen, m)
	saleUC := usecase.NewSaleUseCase(retrying, idGen, m)
	purchaseUC := usecase.NewPurchaseUseCase(retrying, idGen, m)
	reportUC := usecase.NewReportUseCase(retrying)

	// Rate limiter is optional; enabled through RATE_LIMIT
	var limiter *middleware.RateLimiter
	if cfg.RateLimit > 0 {
		limiter = middleware.NewRateLimiter(cfg.RateLimit, cfg.RateLimitBurst)
	}

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		CaixaHandler:         handler.NewLedgerHandler(ledgerUC, domain.LedgerCaixa),
		InvestimentosHandler: handler.NewLedgerHandler(ledgerUC, domain.LedgerInvestimentos),
		InvestmentHandler:    handler.NewInvestmentHandler(investmentUC),
		PayableHandler:       handler.NewPayableHandler(payableUC),
		ReceivableHandler:    handler.NewReceivableHandler(receivableUC),
		SaleHandler:          handler.NewSaleHandler(saleUC),
		PurchaseHandler:      handler.NewPurchaseHandler(purchaseUC),
		ReportHandler:        handler.NewReportHandler(reportUC),
		HealthHandler:        handler.NewHealthHandler(retrying),
		Logger:               appLogger,
		CORSAllowedOrigins:   cfg.CORSAllowedOrigins,
		RateLimiter:          limiter,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}
