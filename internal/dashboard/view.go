package dashboard

import (
	"fmt"
	"math"
	"time"

	"github.com/lox/dashingweather/internal/current"
	"github.com/lox/dashingweather/internal/forecast"
	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/units"
)

const (
	ChartLine = "line"
	ChartArea = "area"

	temperatureColor = "red"
	rainColor        = "#0047AB"

	temperatureMargin = 15
	rainHeadroom      = 0.5
)

// View is everything one render of the dashboard needs.
type View struct {
	Session      Session           `json:"session"`
	Heading      string            `json:"heading"`
	FlagURL      string            `json:"flag_url,omitempty"`
	Current      current.Report    `json:"current"`
	Temperature  Chart             `json:"temperature"`
	Rain         Chart             `json:"rain"`
	Tomorrow     *forecast.Summary `json:"tomorrow,omitempty"`
	TomorrowNote string            `json:"tomorrow_note,omitempty"`
	Tiles        [4]string         `json:"tiles"`
	LayerLabel   string            `json:"layer_label"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

// Chart is a single plotted series with its axis range.
type Chart struct {
	Title  string               `json:"title"`
	YTitle string               `json:"y_title"`
	Kind   string               `json:"kind"`
	Color  string               `json:"color"`
	Points []models.SeriesPoint `json:"points"`
	YMin   float64              `json:"y_min"`
	YMax   float64              `json:"y_max"`
}

func heading(display string) string {
	return "Showing current weather for " + display
}

func temperatureChart(display string, points []models.ForecastPoint, labels units.Labels) Chart {
	series := forecast.Temperatures(points)
	c := Chart{
		Title:  fmt.Sprintf("Forecast for %s temperature over the next %s", display, window(forecast.Span(points))),
		YTitle: fmt.Sprintf("Temperatures (%s)", labels.Temperature),
		Kind:   ChartLine,
		Color:  temperatureColor,
		Points: series,
	}
	if lo, hi, ok := bounds(series); ok {
		c.YMin, c.YMax = lo-temperatureMargin, hi+temperatureMargin
	}
	return c
}

func rainChart(display string, points []models.ForecastPoint) Chart {
	series := forecast.Rain(points)
	c := Chart{
		Title:  fmt.Sprintf("Forecast for rain in %s over the next %s", display, window(forecast.Span(points))),
		YTitle: "Expected Rain (mm)",
		Kind:   ChartArea,
		Color:  rainColor,
		Points: series,
		YMax:   rainHeadroom,
	}
	if _, hi, ok := bounds(series); ok {
		c.YMax = hi + rainHeadroom
	}
	return c
}

func bounds(series []models.SeriesPoint) (lo, hi float64, ok bool) {
	if len(series) == 0 {
		return 0, 0, false
	}
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, p := range series {
		lo = math.Min(lo, p.Value)
		hi = math.Max(hi, p.Value)
	}
	return lo, hi, true
}

// window renders a forecast span in whole days, or hours when under a day.
func window(d time.Duration) string {
	day := 24 * time.Hour
	switch n := int(d / day); {
	case n == 1:
		return "1 day"
	case n > 1:
		return fmt.Sprintf("%d days", n)
	default:
		return fmt.Sprintf("%d hours", int(d/time.Hour))
	}
}
