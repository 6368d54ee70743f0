package main // Entry point package

import (
	"context"   // Context for the shutdown deadline
	"log"       // Logging library
	"net/http"  // ErrServerClosed sentinel
	"os"        // Access to process signals
	"os/signal" // Signal notification channel
	"syscall"   // SIGTERM constant for container stops
	"time"      // Timeout duration for graceful shutdown

	"github.com/iliyamo/deploy-healthcheck/internal/config" // Internal config loader
	"github.com/iliyamo/deploy-healthcheck/internal/router" // Internal router setup
	"github.com/labstack/echo/v4"                           // Echo web framework
)

func main() {
	cfg := config.Load()     // Load environment config
	e := echo.New()          // Create Echo instance
	e.HideBanner = true      // Keep container logs to the startup lines below
	router.RegisterRoutes(e) // Register health-check routes

	addr := cfg.Host + ":" + cfg.Port                     // Address string with host and port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env) // Print startup info

	// Run the listener on its own goroutine so the main goroutine can park
	// on the signal channel below. A failed bind (e.g. port already taken)
	// is fatal; the orchestrator owns restart policy.
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// Block until the platform asks us to stop. The process lives exactly
	// as long as the listener does; there is no internal timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	// Give in-flight probe requests a moment to finish before exiting.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
	log.Println("server stopped")
}
