// Package chart renders aggregate results to PNG for static embedding; the
// dashboard page itself draws from the JSON chart specs.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jobtrends/dashboard/internal/models"
)

// ErrNoData reports an empty view; callers render a blank region instead.
var ErrNoData = errors.New("chart: no data")

var seriesBlue = drawing.Color{R: 0x33, G: 0x77, B: 0xcc, A: 255}

// MeanSalaryBar renders mean salary by job title as a vertical bar chart.
func MeanSalaryBar(w io.Writer, items []models.TitleSalary) error {
	if len(items) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, 0, len(items))
	for _, it := range items {
		bars = append(bars, chart.Value{Label: it.Title, Value: it.MeanSalary})
	}
	bc := chart.BarChart{
		Title:      "Mean salary by job title",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      max(640, 80*len(bars)),
		Height:     512,
		BarWidth:   50,
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}

// SalaryHistogramBar renders histogram bin counts as bars labeled by bin
// start.
func SalaryHistogramBar(w io.Writer, h models.Histogram) error {
	if len(h.Counts) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, 0, len(h.Counts))
	for i, c := range h.Counts {
		bars = append(bars, chart.Value{
			Label: fmt.Sprintf("%.0f", h.Edges[i]),
			Value: float64(c),
		})
	}
	bc := chart.BarChart{
		Title:      "Salary distribution",
		Background: chart.Style{Padding: chart.Box{Top: 40}},
		Width:      max(640, 40*len(bars)),
		Height:     512,
		BarWidth:   30,
		Bars:       bars,
	}
	return bc.Render(chart.PNG, w)
}

// TrendLine renders monthly mean salary as a time series line chart.
func TrendLine(w io.Writer, pts []models.TrendPoint) error {
	if len(pts) == 0 {
		return ErrNoData
	}
	xs := make([]time.Time, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		t, err := time.Parse("2006-01", p.Month)
		if err != nil {
			continue
		}
		xs = append(xs, t)
		ys = append(ys, p.MeanSalary)
	}
	if len(xs) == 0 {
		return ErrNoData
	}
	if len(xs) == 1 {
		// go-chart needs at least two x values to draw a series.
		xs = append(xs, xs[0].AddDate(0, 1, 0))
		ys = append(ys, ys[0])
	}
	ch := chart.Chart{
		Title:  "Monthly mean salary",
		Width:  800,
		Height: 400,
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01"),
		},
		YAxis: chart.YAxis{Name: "Mean salary (USD)"},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Mean salary",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: seriesBlue, StrokeWidth: 2},
			},
		},
	}
	return ch.Render(chart.PNG, w)
}
