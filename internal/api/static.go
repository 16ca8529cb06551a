package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	_ "embed"
)

//go:embed static/index.html
var indexHTML []byte

// Dashboard serves the single-page dashboard. The page pulls the chart specs
// from the JSON API and renders them client-side.
func (h *Handler) Dashboard(c echo.Context) error {
	return c.HTMLBlob(http.StatusOK, indexHTML)
}
