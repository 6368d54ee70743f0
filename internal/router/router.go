package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"            // import the Echo web framework to handle routing
	"github.com/labstack/echo/v4/middleware" // import Echo's built-in middleware (request logging, panic recovery)

	"github.com/iliyamo/deploy-healthcheck/internal/handler" // import the handlers that answer the probes
)

// RegisterRoutes registers the health-check routes on the provided Echo
// instance.  These are the only routes the service exposes; every other
// path falls through to Echo's default 404 handling.
func RegisterRoutes(e *echo.Echo) {
	// Log each probe request and recover from handler panics so a single
	// bad request cannot take the listener down with it.
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Map the GET request at path "/" to the Root handler.  Platforms hit
	// the root path right after a rollout to confirm the container is
	// reachable at all.
	e.GET("/", handler.Root)
	// Map the GET request at path "/health" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/health", handler.Health)
	// Map the GET request at path "/ping" to the Ping handler for uptime
	// monitors that expect a "pong" body.
	e.GET("/ping", handler.Ping)
}
