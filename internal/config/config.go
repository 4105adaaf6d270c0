// Package config holds the runtime configuration, parsed from flags and the
// environment by kong.
package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

type Config struct {
	Port     string `help:"HTTP server port." env:"PORT" default:"8080"`
	APIKey   string `name:"api-key" help:"OpenWeatherMap API key." env:"OWM_API_KEY" required:""`
	AppEnv   string `name:"app-env" help:"Runtime environment (dev, prod)." env:"APP_ENV" default:"dev"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)." env:"LOG_LEVEL" default:"info"`
	Timezone string `help:"IANA timezone used to decide which day is tomorrow." env:"TZ_NAME" default:"Local"`

	DefaultCity  string `name:"default-city" help:"City shown on first visit." env:"DEFAULT_CITY" default:"Amsterdam"`
	DefaultUnits string `name:"default-units" help:"Initial unit system (metric, imperial)." env:"DEFAULT_UNITS" default:"metric"`
	DefaultLayer string `name:"default-layer" help:"Initial map layer." env:"DEFAULT_LAYER" default:"temp_new"`

	APIBaseURL  string `name:"api-url" help:"OpenWeatherMap API base URL." env:"OWM_API_URL" default:"${api_url}"`
	TileBaseURL string `name:"tile-url" help:"OpenWeatherMap tile server base URL." env:"OWM_TILE_URL" default:"${tile_url}"`
}

// Vars are the kong interpolation variables referenced by Config defaults.
func Vars() map[string]string {
	return map[string]string{
		"api_url":  owm.DefaultBaseURL,
		"tile_url": tiles.DefaultBaseURL,
	}
}

// Validate is called by kong after parsing.
func (c *Config) Validate() error {
	switch c.AppEnv {
	case "dev", "prod":
	default:
		return fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", c.AppEnv)
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return fmt.Errorf("--api-key (OWM_API_KEY) must not be empty")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	if _, err := units.Parse(c.DefaultUnits); err != nil {
		return fmt.Errorf("DEFAULT_UNITS: %w", err)
	}
	if _, err := tiles.ParseLayer(c.DefaultLayer); err != nil {
		return fmt.Errorf("DEFAULT_LAYER: %w", err)
	}
	return nil
}

// Level returns the configured log level, or info when it does not parse.
func (c *Config) Level() slog.Level {
	level, err := parseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("TZ_NAME %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Units and Layer return the parsed defaults. Both are checked by Validate.
func (c *Config) Units() units.System {
	s, _ := units.Parse(c.DefaultUnits)
	return s
}

func (c *Config) Layer() tiles.Layer {
	l, _ := tiles.ParseLayer(c.DefaultLayer)
	return l
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
