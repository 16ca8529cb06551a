package api

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/labstack/echo/v4"

	"github.com/jobtrends/dashboard/internal/chart"
	"github.com/jobtrends/dashboard/internal/dataset"
	"github.com/jobtrends/dashboard/internal/engine"
	"github.com/jobtrends/dashboard/internal/models"
)

// Handler serves the dashboard API. It starts with a nil table so the server
// is live immediately; data routes answer 503 until SetTable flips it ready.
type Handler struct {
	mu         sync.RWMutex
	table      *dataset.Table
	exportName string
}

func NewHandler(t *dataset.Table, exportName string) *Handler {
	return &Handler{table: t, exportName: exportName}
}

// SetTable publishes the loaded dataset to the live API.
func (h *Handler) SetTable(t *dataset.Table) {
	h.mu.Lock()
	h.table = t
	h.mu.Unlock()
}

func (h *Handler) snapshot() *dataset.Table {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.table
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Dashboard)

	api := e.Group("/api")
	api.GET("/health", h.Health)
	api.GET("/filters", h.GetFilters)
	api.GET("/summary", h.GetSummary)
	api.GET("/salary/by-title", h.GetSalaryByTitle)
	api.GET("/salary/by-industry", h.GetSalaryByIndustry)
	api.GET("/jobs/by-location", h.GetJobsByLocation)
	api.GET("/skills/top", h.GetTopSkills)
	api.GET("/salary/histogram", h.GetSalaryHistogram)
	api.GET("/salary/trend", h.GetSalaryTrend)
	api.GET("/export", h.Export)
	api.GET("/charts/:name", h.GetChartPNG)
}

var errLoading = echo.NewHTTPError(http.StatusServiceUnavailable, "dataset is still loading")

// view resolves the filter selection from repeated title/industry/location
// query params and applies it. Absent params mean select-all.
func (h *Handler) view(c echo.Context) (*engine.View, error) {
	t := h.snapshot()
	if t == nil {
		return nil, errLoading
	}
	q := c.QueryParams()
	sel := engine.Selection{
		Titles:     q["title"],
		Industries: q["industry"],
		Locations:  q["location"],
	}
	return engine.Apply(t, sel), nil
}

func intParam(c echo.Context, name string, def int) int {
	v, err := strconv.Atoi(c.QueryParam(name))
	if err != nil || v <= 0 {
		return def
	}
	return v
}

// --- HANDLERS ---

func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status": "ok",
		"ready":  h.snapshot() != nil,
	})
}

func (h *Handler) GetFilters(c echo.Context) error {
	t := h.snapshot()
	if t == nil {
		return errLoading
	}
	// Dictionary order is first-seen order, same as the source column.
	return c.JSON(http.StatusOK, models.Filters{
		Titles:     t.Titles,
		Industries: t.Industries,
		Locations:  t.Locations,
	})
}

func (h *Handler) GetSummary(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, engine.Summarize(v, intParam(c, "rows", 5)))
}

func (h *Handler) GetSalaryByTitle(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "bar",
		Title:     "Mean salary by job title",
		XLabel:    "Job title",
		YLabel:    "Mean salary (USD)",
		Available: true,
		Data:      engine.MeanSalaryByTitle(v),
	})
}

func (h *Handler) GetSalaryByIndustry(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "box",
		Title:     "Salary distribution by industry",
		XLabel:    "Industry",
		YLabel:    "Salary (USD)",
		Available: true,
		Data:      engine.SalariesByIndustry(v),
	})
}

func (h *Handler) GetJobsByLocation(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "bar",
		Title:     "Job count by location",
		XLabel:    "Location",
		YLabel:    "Jobs",
		Available: true,
		Data:      engine.JobsByLocation(v),
	})
}

func (h *Handler) GetTopSkills(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	limit := intParam(c, "limit", engine.DefaultTopSkills)
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "hbar",
		Title:     fmt.Sprintf("Top %d requested skills", limit),
		XLabel:    "Mentions",
		YLabel:    "Skill",
		Available: true,
		Data:      engine.TopSkills(v, limit),
	})
}

func (h *Handler) GetSalaryHistogram(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	bins := intParam(c, "bins", engine.DefaultHistogramBins)
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "histogram",
		Title:     "Salary distribution",
		XLabel:    "Salary (USD)",
		YLabel:    "Jobs",
		Available: true,
		Data:      engine.SalaryHistogram(v, bins),
	})
}

func (h *Handler) GetSalaryTrend(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, models.ChartSpec{
		Chart:     "line",
		Title:     "Monthly mean salary",
		XLabel:    "Month",
		YLabel:    "Mean salary (USD)",
		Available: v.Table.HasDate,
		Data:      engine.MonthlyTrend(v),
	})
}

// Export streams the filtered view as a CSV attachment, header first, source
// column order, values verbatim.
func (h *Handler) Export(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	res.Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", h.exportName))
	res.WriteHeader(http.StatusOK)
	return v.ExportCSV(res)
}

// GetChartPNG renders server-side PNGs for the charts go-chart can draw.
// An empty view yields 204, not an error.
func (h *Handler) GetChartPNG(c echo.Context) error {
	v, err := h.view(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	switch name := c.Param("name"); name {
	case "salary-by-title":
		err = chart.MeanSalaryBar(&buf, engine.MeanSalaryByTitle(v))
	case "salary-histogram":
		err = chart.SalaryHistogramBar(&buf, engine.SalaryHistogram(v, engine.DefaultHistogramBins))
	case "salary-trend":
		err = chart.TrendLine(&buf, engine.MonthlyTrend(v))
	default:
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("unknown chart %q", name))
	}
	if errors.Is(err, chart.ErrNoData) {
		return c.NoContent(http.StatusNoContent)
	}
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
