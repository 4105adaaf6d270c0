package models

import "time"

// Coordinates identifies a geocoded location.
type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
	Name      string  `json:"name,omitempty"`
	Country   string  `json:"country,omitempty"`
	State     string  `json:"state,omitempty"`
}

// ForecastPoint is one 3-hour sample of the 5-day forecast.
type ForecastPoint struct {
	Time        time.Time `json:"time"`
	Temperature float64   `json:"temp"`
	FeelsLike   float64   `json:"feels_like"`
	TempMin     float64   `json:"temp_min"`
	TempMax     float64   `json:"temp_max"`
	Humidity    float64   `json:"humidity"`
	RainMM      float64   `json:"rain_mm"`
}

// Row is a single label/value line of a display table.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// SeriesPoint is an (x, y) pair for charting.
type SeriesPoint struct {
	Time  time.Time `json:"x"`
	Value float64   `json:"y"`
}
