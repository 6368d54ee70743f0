package handler // declare the package name; contains HTTP handlers

import (
	"net/http" // net/http provides status codes and response helpers

	"github.com/labstack/echo/v4" // echo is the web framework used for this project
)

// rootMessage is the fixed body served at "/".  Deployment platforms poll
// the root path after a rollout, so the text is a human-readable banner
// rather than a machine-parsed payload.
const rootMessage = "✅ Service is up and running"

// Root answers probes against the root path.  It returns the fixed banner
// text with an HTTP 200 status code and reads nothing from the request.
func Root(c echo.Context) error {
	return c.String(http.StatusOK, rootMessage)
}

// Health is a simple health‑check endpoint used by load balancers and
// monitoring systems to verify that the service is running.  It returns
// a plain text "OK" message with an HTTP 200 status code.
func Health(c echo.Context) error { // Health handler signature accepts an echo context and returns an error
	return c.String(http.StatusOK, "OK") // write "OK" with a 200 OK status; String writes plain text
}

// Ping answers "pong" with an HTTP 200 status code.  It exists alongside
// Health because some uptime monitors are configured against /ping.
func Ping(c echo.Context) error {
	return c.String(http.StatusOK, "pong")
}
