// Package owm is a client for the OpenWeatherMap geocoding, current weather
// and 5-day forecast endpoints.
package owm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lox/dashingweather/internal/httputil"
	"github.com/lox/dashingweather/internal/metrics"
	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/units"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org"

	geocodeEndpoint  = "/geo/1.0/direct"
	currentEndpoint  = "/data/2.5/weather"
	forecastEndpoint = "/data/2.5/forecast"

	flagBaseURL = "https://www.countryflagicons.com/FLAT/64/"
)

// Client calls the OpenWeatherMap REST API with a single API key.
type Client struct {
	http   *resty.Client
	apiKey string
	logger *slog.Logger
}

// NewClient returns a Client for baseURL, normally DefaultBaseURL.
func NewClient(baseURL, apiKey string, logger *slog.Logger) *Client {
	return &Client{
		http:   httputil.NewClient(baseURL, logger),
		apiKey: apiKey,
		logger: logger.With("component", "owm"),
	}
}

// Geocode resolves a normalized city query ("new+york") to the coordinates
// of the first matching candidate.
func (c *Client) Geocode(ctx context.Context, query string) (models.Coordinates, error) {
	name, err := url.QueryUnescape(query)
	if err != nil {
		name = query
	}

	var results []GeocodeResult
	if err := c.get(ctx, geocodeEndpoint, map[string]string{"q": name, "limit": "1"}, &results); err != nil {
		return models.Coordinates{}, err
	}
	if len(results) == 0 {
		return models.Coordinates{}, fmt.Errorf("geocode %q: %w", name, ErrNotFound)
	}

	first := results[0]
	return models.Coordinates{
		Latitude:  first.Lat,
		Longitude: first.Lon,
		Name:      first.Name,
		Country:   first.Country,
		State:     first.State,
	}, nil
}

// Current fetches current conditions at coords.
func (c *Client) Current(ctx context.Context, coords models.Coordinates, system units.System) (*CurrentResponse, error) {
	params, err := locationParams(coords, system)
	if err != nil {
		return nil, err
	}
	var data CurrentResponse
	if err := c.get(ctx, currentEndpoint, params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// Forecast fetches the 5-day/3-hour forecast at coords.
func (c *Client) Forecast(ctx context.Context, coords models.Coordinates, system units.System) (*ForecastResponse, error) {
	params, err := locationParams(coords, system)
	if err != nil {
		return nil, err
	}
	var data ForecastResponse
	if err := c.get(ctx, forecastEndpoint, params, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// FlagURL returns the flag image for a two-letter country code.
func FlagURL(countryCode string) string {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if code == "" {
		return ""
	}
	return flagBaseURL + code + ".png"
}

func locationParams(coords models.Coordinates, system units.System) (map[string]string, error) {
	if _, err := units.Resolve(system); err != nil {
		return nil, err
	}
	return map[string]string{
		"lat":   strconv.FormatFloat(coords.Latitude, 'f', -1, 64),
		"lon":   strconv.FormatFloat(coords.Longitude, 'f', -1, 64),
		"units": system.String(),
	}, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params map[string]string, out any) error {
	start := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(params).
		SetQueryParam("appid", c.apiKey).
		Get(endpoint)
	metrics.OWMAPILatency.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.OWMAPICallsTotal.WithLabelValues(endpoint, "error").Inc()
		err = httputil.Redact(err)
		c.logger.Warn("request failed", "endpoint", endpoint, "error", err)
		return &UpstreamError{Endpoint: endpoint, Err: err}
	}

	metrics.OWMAPICallsTotal.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode())).Inc()

	if resp.StatusCode() == http.StatusNotFound && endpoint == geocodeEndpoint {
		return fmt.Errorf("geocode %q: %w", params["q"], ErrNotFound)
	}
	if resp.StatusCode() != http.StatusOK {
		c.logger.Warn("unexpected status", "endpoint", endpoint, "status", resp.StatusCode())
		return &UpstreamError{
			Endpoint: endpoint,
			Status:   resp.StatusCode(),
			Err:      fmt.Errorf("unexpected response: %s", snippet(resp.Body())),
		}
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &UpstreamError{Endpoint: endpoint, Status: resp.StatusCode(), Err: fmt.Errorf("unmarshal: %w", err)}
	}
	return nil
}

func snippet(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
