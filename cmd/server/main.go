package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	contractapp "github.com/curio/backend/internal/application/contract"
	invoicingapp "github.com/curio/backend/internal/application/invoicing"
	"github.com/curio/backend/internal/infrastructure/auth"
	"github.com/curio/backend/internal/infrastructure/config"
	"github.com/curio/backend/internal/infrastructure/logger"
	"github.com/curio/backend/internal/infrastructure/persistence"
	"github.com/curio/backend/internal/infrastructure/printing"
	"github.com/curio/backend/internal/interfaces/http/handler"
	"github.com/curio/backend/internal/interfaces/http/middleware"
	"github.com/curio/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

const version = "1.0.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting Curio Backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Initialize database connection
	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected successfully")

	if err := db.AutoMigrate(); err != nil {
		log.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// Initialize repositories
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	contractRepo := persistence.NewGormContractRepository(db.DB)
	counterRepo := persistence.NewGormCounterRepository(db.DB)

	// Initialize application services
	invoiceService := invoicingapp.NewInvoiceService(invoiceRepo, counterRepo, log)
	contractService := contractapp.NewContractService(contractRepo, counterRepo, log)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Document rendering
	engine, err := printing.NewTemplateEngine()
	if err != nil {
		log.Fatal("Failed to parse document templates", zap.Error(err))
	}
	studio := printing.StudioInfoFromConfig(cfg.Studio)

	// Initialize HTTP handlers
	invoiceHandler := handler.NewInvoiceHandler(invoiceService, engine, studio)
	contractHandler := handler.NewContractHandler(contractService, engine, studio)
	healthHandler := handler.NewHealthHandler(db, version)

	// Assemble routes
	middleware.SetupValidator()
	r := router.New(cfg, log, router.WithAPIVersion("v1"))
	r.Register(invoiceHandler)
	r.Register(contractHandler)
	r.Setup(jwtService, healthHandler)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        r.Engine(),
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
	}
	log.Info("Server stopped")
}
