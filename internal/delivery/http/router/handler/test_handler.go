package handler

import (
	"net/http"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// TestHandler handles test endpoints for middleware validation
type TestHandler struct{}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler() *TestHandler {
	return &TestHandler{}
}

// TestPublicEndpoint tests a public endpoint and the request id pipeline
func (h *TestHandler) TestPublicEndpoint(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]any{
		"message":    "Public endpoint test successful",
		"status":     "public",
		"request_id": deliverycontext.GetRequestID(c),
	})
}

// TestError exercises the centralized error handler with an unhandled error
func (h *TestHandler) TestError(c echo.Context) error {
	return echo.NewHTTPError(http.StatusTeapot, "test error endpoint")
}
