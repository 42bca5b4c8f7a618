/*
main.go - Application entry point

STARTUP SEQUENCE:
  1. Load .env, environment and flags (see config package)
  2. Open the configured store
  3. Seed sample employees into an empty store (unless -seed=false)
  4. Configure HTTP router
  5. Start server with graceful shutdown

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (30s timeout)
  3. Close the store
  4. Exit

EXAMPLES:
  # Run with file database
  ./server -db="./data/vacation.db"

  # Run with in-memory store
  ./server -store=memory

  # Run against Redis
  VACATION_STORE=redis VACATION_REDIS_ADDR=redis:6379 ./server
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oleksiiaisolutions/hr-vacation-tracker/api"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/config"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/store"
	"github.com/oleksiiaisolutions/hr-vacation-tracker/vacation"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("Warning: failed to load .env: %v", err)
	}
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx := context.Background()
	clock := vacation.RealClock{}

	// Initialize store
	st, closer, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize %s store: %v", cfg.Store, err)
	}
	defer closer.Close()

	if cfg.Seed {
		seeded, err := vacation.Seed(ctx, st, vacation.Today(clock).Year())
		if err != nil {
			log.Fatalf("Failed to seed store: %v", err)
		}
		if seeded {
			log.Printf("Seeded sample employees")
		}
	}

	router := api.NewRouter(api.NewHandler(st, clock), cfg.Origins)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on http://localhost:%d (store: %s)", cfg.Port, cfg.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
