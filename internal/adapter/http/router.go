package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/ateliedalu/caixa/internal/adapter/http/handler"
	"github.com/ateliedalu/caixa/internal/adapter/http/middleware"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	CaixaHandler         *handler.LedgerHandler
	InvestimentosHandler *handler.LedgerHandler
	InvestmentHandler    *handler.InvestmentHandler
	PayableHandler       *handler.PayableHandler
	ReceivableHandler    *handler.ReceivableHandler
	SaleHandler          *handler.SaleHandler
	PurchaseHandler      *handler.PurchaseHandler
	ReportHandler        *handler.ReportHandler
	HealthHandler        *handler.HealthHandler
	Logger               zerolog.Logger
	CORSAllowedOrigins   []string
	RateLimiter          *middleware.RateLimiter
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Operational endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		// Cash ledger
		r.Route("/caixa", func(r chi.Router) {
			r.Get("/", cfg.CaixaHandler.List)
			r.Post("/", cfg.CaixaHandler.Create)
			r.Get("/{id}", cfg.CaixaHandler.Get)
			r.Put("/{id}", cfg.CaixaHandler.Update)
			r.Delete("/{id}", cfg.CaixaHandler.Delete)
		})

		// Investment ledger; POST records a movement mirrored into caixa
		r.Route("/investimentos", func(r chi.Router) {
			r.Get("/", cfg.InvestimentosHandler.List)
			r.Post("/", cfg.InvestmentHandler.Create)
			r.Get("/{id}", cfg.InvestimentosHandler.Get)
			r.Put("/{id}", cfg.InvestimentosHandler.Update)
			r.Delete("/{id}", cfg.InvestimentosHandler.Delete)
		})

		// Accounts payable
		r.Route("/contas-a-pagar", func(r chi.Router) {
			r.Get("/", cfg.PayableHandler.List)
			r.Post("/", cfg.PayableHandler.Create)
			r.Get("/{id}", cfg.PayableHandler.Get)
			r.Put("/{id}", cfg.PayableHandler.Update)
			r.Delete("/{id}", cfg.PayableHandler.Delete)
		})

		// Accounts receivable
		r.Route("/contas-a-receber", func(r chi.Router) {
			r.Get("/", cfg.ReceivableHandler.List)
			r.Post("/", cfg.ReceivableHandler.Create)
			r.Get("/{id}", cfg.ReceivableHandler.Get)
			r.Put("/{id}", cfg.ReceivableHandler.Update)
			r.Delete("/{id}", cfg.ReceivableHandler.Delete)
		})

		// Sales
		r.Route("/vendas", func(r chi.Router) {
			r.Get("/", cfg.SaleHandler.List)
			r.Post("/", cfg.SaleHandler.Create)
			r.Get("/{id}", cfg.SaleHandler.Get)
			r.Delete("/{id}", cfg.SaleHandler.Delete)
		})

		// Purchases
		r.Route("/compras", func(r chi.Router) {
			r.Get("/", cfg.PurchaseHandler.List)
			r.Post("/", cfg.PurchaseHandler.Create)
			r.Get("/{id}", cfg.PurchaseHandler.Get)
			r.Delete("/{id}", cfg.PurchaseHandler.Delete)
		})

		// Reports
		r.Get("/relatorios/resumo", cfg.ReportHandler.Summary)
	})

	return r
}
