package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/roomease/roomease/internal/api"
	"github.com/roomease/roomease/internal/catalog"
	"github.com/roomease/roomease/internal/config"
	"github.com/roomease/roomease/internal/repository"
	"github.com/roomease/roomease/internal/service"
)

func main() {
	// Load a local .env if present; real deployments set the
	// environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Skipping .env: %v", err)
	}

	serverConfig := config.GetServerConfig()
	storageConfig := config.GetStorageConfig()

	// Initialize the repository using the factory
	repo, err := repository.NewRepository(storageConfig)
	if err != nil {
		log.Fatalf("Failed to initialize repository: %v", err)
	}

	// Close the backing connection on exit when the backend has one
	if closer, ok := repo.(interface{ Close() error }); ok {
		defer func() {
			if err := closer.Close(); err != nil {
				log.Printf("Error closing repository: %v", err)
			}
		}()
	}

	// Load the room catalog
	cat, err := catalog.Load(serverConfig.CatalogPath)
	if err != nil {
		log.Fatalf("Failed to load room catalog from %s: %v", serverConfig.CatalogPath, err)
	}
	log.Printf("Loaded %d rooms from %s", cat.Len(), serverConfig.CatalogPath)

	// Initialize the service layer
	bookingService := service.NewBookingService(repo)

	// Push booking changes to SSE subscribers
	events := api.NewEventServer()
	bookingService.RegisterUpdateCallback(events.NotifyBookingUpdate)

	mux := api.SetupRoutes(cat, bookingService, events)
	handler := api.WrapMuxWithMiddleware(mux, serverConfig.RatePerSecond, serverConfig.RateBurst)

	server := &http.Server{
		Addr:         ":" + serverConfig.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disable write timeout for SSE connections
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting roomease server on port %s", serverConfig.Port)
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatalf("Error starting server: %v", err)

	case <-shutdown:
		log.Println("Shutting down server...")

		// Close SSE connections first so Shutdown does not wait on them
		events.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			server.Close()
			log.Fatalf("Error shutting down server: %v", err)
		}

		log.Println("Server gracefully stopped")
	}
}
