package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/viettrungIT3/inventory-admin/internal/api"
	"github.com/viettrungIT3/inventory-admin/internal/config"
	"github.com/viettrungIT3/inventory-admin/internal/database"
	"github.com/viettrungIT3/inventory-admin/internal/inventory"
	"github.com/viettrungIT3/inventory-admin/internal/logger"
	"github.com/viettrungIT3/inventory-admin/internal/monitoring"
	"github.com/viettrungIT3/inventory-admin/internal/services"
	"github.com/viettrungIT3/inventory-admin/internal/session"
	"github.com/viettrungIT3/inventory-admin/internal/websocket"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logger.Init(cfg.AppEnv)

	// Set up database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize database")
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to apply database migrations")
	}

	// Session store restores any persisted session on construction
	sessions := session.NewStore(db)

	// Backend API client
	apiClient := inventory.NewClient(cfg.BackendURL, cfg.HTTPTimeout)

	// Set up services
	notificationService := services.NewNotificationService(db)
	statsService := services.NewStatsService(apiClient)

	// Set up WebSocket Hub
	hub := websocket.NewHub()
	go hub.Run()

	// Set up and run the background session validator
	validator, err := monitoring.NewValidator(sessions, apiClient, notificationService, hub, cfg.ValidateSchedule)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up session validator")
	}
	go validator.Run()

	// Set up router
	router := api.NewRouter(sessions, apiClient, statsService, notificationService, hub)

	// Set up server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		log.Info().Int("port", cfg.ServerPort).Str("backend", cfg.BackendURL).Msg("Console starting")
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe()")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down console...")

	validator.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Console exiting")
}
