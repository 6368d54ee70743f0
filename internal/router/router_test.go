package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// serve sends a request for method/path through a fully registered Echo
// instance and returns the recorded response.
func serve(method, path string) *httptest.ResponseRecorder {
	e := echo.New()
	RegisterRoutes(e)
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// TestRegisteredRoutes verifies that all three probe paths are reachable
// through the assembled router and answer their fixed bodies.
func TestRegisteredRoutes(t *testing.T) {
	cases := []struct {
		path string
		body string
	}{
		{"/", "✅ Service is up and running"},
		{"/health", "OK"},
		{"/ping", "pong"},
	}

	for _, tc := range cases {
		rec := serve(http.MethodGet, tc.path)
		assert.Equal(t, http.StatusOK, rec.Code, "GET %s", tc.path)
		assert.Equal(t, tc.body, rec.Body.String(), "GET %s", tc.path)
	}
}

// TestUnknownPathIs404 verifies that any path outside the three probes falls
// through to Echo's default not-found handling, un-customized.
func TestUnknownPathIs404(t *testing.T) {
	rec := serve(http.MethodGet, "/bookings")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// TestNonGetMethodRejected verifies the probes are registered for GET only;
// Echo answers other methods with its default 405.
func TestNonGetMethodRejected(t *testing.T) {
	rec := serve(http.MethodPost, "/health")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
