package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4/internal/config"
	"github.com/iamasit07/connect4/internal/service/announce"
	"github.com/iamasit07/connect4/internal/service/cleanup"
	"github.com/iamasit07/connect4/internal/service/game"
	transportHttp "github.com/iamasit07/connect4/internal/transport/http"
	"github.com/iamasit07/connect4/internal/transport/websocket"
	"github.com/iamasit07/connect4/web"
)

func main() {
	config.LoadEnvFile()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 1. Services
	labels := announce.Labels{Player1: cfg.Player1Label, Player2: cfg.Player2Label}
	announcer := announce.NewAnnouncer(labels, cfg.AnnounceDelay)

	sessionManager := game.NewSessionManager(cfg.BoardRows, cfg.BoardColumns, announcer)
	sessionManager.IdleTTL = cfg.SessionIdleTTL
	sessionManager.FinishedTTL = cfg.SessionFinishedTTL

	// 2. Background workers
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cleanupWorker := cleanup.NewWorker(sessionManager, cfg.CleanupInterval)
	go cleanupWorker.Start(ctx)

	// 3. HTTP
	wsHandler := websocket.NewHandler(sessionManager, cfg.AllowedOrigins)
	router := transportHttp.NewRouter(transportHttp.RouterConfig{
		SessionManager: sessionManager,
		WSHandler:      wsHandler,
		AllowedOrigins: cfg.AllowedOrigins,
		IndexHTML:      web.IndexHTML(),
		Static:         web.StaticFS(),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (%dx%d board)", cfg.Port, cfg.BoardRows, cfg.BoardColumns)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
