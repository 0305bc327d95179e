package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kisanmitra/kisanmitra/internal/api"
	"github.com/kisanmitra/kisanmitra/internal/chat"
	"github.com/kisanmitra/kisanmitra/internal/config"
	"github.com/kisanmitra/kisanmitra/internal/gov"
	"github.com/kisanmitra/kisanmitra/internal/llm"
	"github.com/kisanmitra/kisanmitra/internal/news"
	"github.com/kisanmitra/kisanmitra/internal/repository"
	"github.com/kisanmitra/kisanmitra/internal/speech"
	"go.uber.org/zap"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (government queries only; conversations are
	// in-memory for the lifetime of a session)
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	govRepo := repository.NewGovQueryRepository(db)

	// Initialize the generative backend
	backend, err := llm.NewGemini(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		logger.Fatal("Failed to initialize Gemini client", zap.Error(err))
	}

	// Initialize services. Speech capture has no server-side recognizer;
	// the capability flag stays false and clients feed transcripts in.
	chatManager := chat.NewManager(backend, func() speech.Recognizer {
		return speech.Unsupported{}
	}, logger)
	newsService := news.NewService(backend, logger)
	govService := gov.NewService(govRepo)

	// Setup router
	router := api.SetupRouter(chatManager, newsService, govService, api.RouterConfig{
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting Kisan Mitra server", zap.String("address", cfg.Address()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
