package api

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lox/dashingweather/internal/dashboard"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

// TileSource fetches overlay tiles. *tiles.Fetcher satisfies it.
type TileSource interface {
	Tile(ctx context.Context, layer tiles.Layer, t tiles.Tile) ([]byte, error)
	World(ctx context.Context, layer tiles.Layer) ([4][]byte, error)
}

// Options are the server settings and the selection shown on a first visit.
type Options struct {
	Port         string
	DefaultCity  string
	DefaultUnits units.System
	DefaultLayer tiles.Layer
}

// Server serves the dashboard page, JSON API and map images.
type Server struct {
	svc    *dashboard.Service
	tiles  TileSource
	maps   *tiles.MapCache
	opts   Options
	tmpl   *template.Template
	logger *slog.Logger
}

const mapCacheTTL = 10 * time.Minute

// NewServer builds a Server around svc and tileSource.
func NewServer(svc *dashboard.Service, tileSource TileSource, opts Options, logger *slog.Logger) *Server {
	return &Server{
		svc:    svc,
		tiles:  tileSource,
		maps:   tiles.NewMapCache(mapCacheTTL),
		opts:   opts,
		tmpl:   newTemplates(),
		logger: logger.With("component", "api"),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /api/dashboard", s.handleAPIDashboard)
	mux.HandleFunc("GET /api/tiles", s.handleAPITiles)
	mux.HandleFunc("GET /tiles/{layer}/{x}/{y}", s.handleTile)
	mux.HandleFunc("GET /map/{layer}", s.handleMap)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())
	return s.requestLogger(mux)
}

func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              ":" + s.opts.Port,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("shutdown", "error", err)
		}
	}()

	s.logger.Info("listening", "port", s.opts.Port)
	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
