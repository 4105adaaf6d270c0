package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	"github.com/lox/dashingweather/internal/api"
	"github.com/lox/dashingweather/internal/config"
	"github.com/lox/dashingweather/internal/dashboard"
	"github.com/lox/dashingweather/internal/logging"
	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/tiles"
)

var version = "dev"

// cli loads the .env file through a kong hook before env vars resolve.
type cli struct {
	EnvFile kongdotenv.ENVFileConfig `name:"env-file" default:".env" help:"Path to a .env file loaded before reading the environment."`

	config.Config `embed:""`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("dashingweather"),
		kong.Description("Interactive weather dashboard backed by OpenWeatherMap."),
		kong.Vars(config.Vars()),
		kong.UsageOnError(),
	)
	cfg := c.Config

	logger := logging.New(os.Stdout, cfg, version)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		logger.Error("load timezone", "error", err)
		os.Exit(1)
	}

	client := owm.NewClient(cfg.APIBaseURL, cfg.APIKey, logger)
	svc := dashboard.NewService(client, loc, logger)
	fetcher := tiles.NewFetcher(tiles.NewBuilder(cfg.TileBaseURL, cfg.APIKey), logger)

	server := api.NewServer(svc, fetcher, api.Options{
		Port:         cfg.Port,
		DefaultCity:  cfg.DefaultCity,
		DefaultUnits: cfg.Units(),
		DefaultLayer: cfg.Layer(),
	}, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info("starting", "version", version, "env", cfg.AppEnv, "timezone", loc.String())
	if err := server.Run(ctx); err != nil {
		logger.Error("server", "error", err)
		os.Exit(1)
	}
	logger.Info("shutdown complete")
}
