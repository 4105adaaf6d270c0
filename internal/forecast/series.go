package forecast

import (
	"fmt"
	"time"

	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/owm"
)

// TimeLayout is the layout of the forecast dt_txt field. Values are UTC.
const TimeLayout = "2006-01-02 15:04:05"

// BuildSeries converts forecast entries to points, in upstream order.
// Entries without a rain block, or whose rain block has no 3h value, get
// RainMM = 0.
func BuildSeries(fc *owm.ForecastResponse) ([]models.ForecastPoint, error) {
	if fc == nil || fc.List == nil {
		return nil, &owm.MissingFieldError{Field: "list"}
	}

	points := make([]models.ForecastPoint, 0, len(fc.List))
	for i, entry := range fc.List {
		if entry.DtTxt == "" {
			return nil, &owm.MissingFieldError{Field: fmt.Sprintf("list[%d].dt_txt", i)}
		}
		ts, err := time.Parse(TimeLayout, entry.DtTxt)
		if err != nil {
			return nil, fmt.Errorf("list[%d].dt_txt=%q: %w", i, entry.DtTxt, err)
		}

		m := entry.Main
		if m == nil {
			return nil, &owm.MissingFieldError{Field: fmt.Sprintf("list[%d].main", i)}
		}
		p := models.ForecastPoint{Time: ts, RainMM: rainMM(entry.Rain)}
		for _, f := range []struct {
			dst  *float64
			src  *float64
			name string
		}{
			{&p.Temperature, m.Temp, "temp"},
			{&p.FeelsLike, m.FeelsLike, "feels_like"},
			{&p.TempMin, m.TempMin, "temp_min"},
			{&p.TempMax, m.TempMax, "temp_max"},
			{&p.Humidity, m.Humidity, "humidity"},
		} {
			if f.src == nil {
				return nil, &owm.MissingFieldError{Field: fmt.Sprintf("list[%d].main.%s", i, f.name)}
			}
			*f.dst = *f.src
		}

		points = append(points, p)
	}
	return points, nil
}

func rainMM(rain *owm.Precipitation) float64 {
	if rain == nil || rain.ThreeHour == nil || *rain.ThreeHour < 0 {
		return 0
	}
	return *rain.ThreeHour
}

// Temperatures projects points to a temperature-over-time series.
func Temperatures(points []models.ForecastPoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = models.SeriesPoint{Time: p.Time, Value: p.Temperature}
	}
	return out
}

// Rain projects points to a rain-over-time series.
func Rain(points []models.ForecastPoint) []models.SeriesPoint {
	out := make([]models.SeriesPoint, len(points))
	for i, p := range points {
		out[i] = models.SeriesPoint{Time: p.Time, Value: p.RainMM}
	}
	return out
}

// Span is the time between the first and last point.
func Span(points []models.ForecastPoint) time.Duration {
	if len(points) < 2 {
		return 0
	}
	return points[len(points)-1].Time.Sub(points[0].Time)
}
