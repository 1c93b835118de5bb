// Package testserver is an echo-based bench server for exercising the
// courier client: JSON-object endpoints, a form sink, a multipart upload
// sink, and deliberately malformed responses.
package testserver

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/beanbocchi/courier/pkg/validator"
)

// New creates the bench server. Callers own starting and shutting it down.
func New() (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	customVal, err := validator.New()
	if err != nil {
		return nil, err
	}
	e.Validator = customVal

	h := &Handler{}
	api := e.Group("/api/v1")

	api.GET("/status", h.Status)
	api.POST("/form", h.Form)
	api.POST("/upload", h.Upload)

	// Non-object bodies, for exercising the malformed-response path.
	api.GET("/array", h.Array)
	api.GET("/scalar", h.Scalar)

	return e, nil
}

type Handler struct{}

func (h *Handler) Status(c echo.Context) error {
	query := map[string]any{}
	for key, values := range c.QueryParams() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}
	return c.JSON(200, map[string]any{"status": "ok", "query": query})
}

func (h *Handler) Array(c echo.Context) error {
	return c.JSON(200, []int{1, 2, 3})
}

func (h *Handler) Scalar(c echo.Context) error {
	return c.JSON(200, 42)
}
