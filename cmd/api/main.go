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

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/pfhealth/vitality-engine/internal/config"
	"github.com/pfhealth/vitality-engine/internal/handler"
	"github.com/pfhealth/vitality-engine/internal/service/ai"
	chatservice "github.com/pfhealth/vitality-engine/internal/service/chat"
	documentservice "github.com/pfhealth/vitality-engine/internal/service/document"
	healthservice "github.com/pfhealth/vitality-engine/internal/service/health"
	"github.com/pfhealth/vitality-engine/pkg/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, err := logging.New(logging.Config{
		Mode:     logging.Mode(cfg.Log.Mode),
		Filename: cfg.Log.File,
	})
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize the in-memory stores and the metrics generator. All
	// state lives for exactly one process run.
	chatSvc := chatservice.NewService()
	docSvc := documentservice.NewService()
	healthSvc := healthservice.NewService()

	// Initialize the recovery coach when Ark credentials are present.
	var coach *ai.Service
	if cfg.AI.Enabled() {
		coach, err = ai.NewService(ctx, cfg.AI)
		if err != nil {
			logger.Warn("failed to initialize coach service, continuing without coach replies", zap.Error(err))
			coach = nil
		} else {
			logger.Info("coach service initialized")
		}
	} else {
		logger.Info("Ark credentials not configured, coach replies disabled")
	}

	router := handler.NewRouter(logger, cfg.CORS, chatSvc, docSvc, healthSvc, coach)

	startServer(ctx, cfg.Server, router, logger)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logger.Info("vitality engine listening", zap.String("addr", serverCfg.Addr))
	if err := runServer(ctx, srv); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
