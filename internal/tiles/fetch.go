package tiles

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/lox/dashingweather/internal/httputil"
	"github.com/lox/dashingweather/internal/metrics"
)

// Fetcher downloads tiles server-side so the API key stays private.
type Fetcher struct {
	builder *Builder
	http    *resty.Client
	logger  *slog.Logger
}

// NewFetcher returns a Fetcher that requests the URLs builder produces.
func NewFetcher(builder *Builder, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		builder: builder,
		http:    httputil.NewClient("", logger),
		logger:  logger.With("component", "tiles"),
	}
}

// Tile fetches one PNG tile.
func (f *Fetcher) Tile(ctx context.Context, layer Layer, t Tile) ([]byte, error) {
	resp, err := f.http.R().SetContext(ctx).Get(f.builder.URL(string(layer), t))
	if err != nil {
		metrics.TileFetchesTotal.WithLabelValues(string(layer), "error").Inc()
		return nil, fmt.Errorf("fetch tile %s/%d/%d: %w", layer, t.X, t.Y, httputil.Redact(err))
	}
	metrics.TileFetchesTotal.WithLabelValues(string(layer), strconv.Itoa(resp.StatusCode())).Inc()

	if resp.StatusCode() != http.StatusOK {
		f.logger.Warn("tile fetch failed", "layer", layer, "x", t.X, "y", t.Y, "status", resp.StatusCode())
		return nil, fmt.Errorf("fetch tile %s/%d/%d: status %d", layer, t.X, t.Y, resp.StatusCode())
	}
	return resp.Body(), nil
}

// World fetches the four quadrant tiles in Quadrants order.
func (f *Fetcher) World(ctx context.Context, layer Layer) ([4][]byte, error) {
	var out [4][]byte
	for i, q := range Quadrants {
		data, err := f.Tile(ctx, layer, q)
		if err != nil {
			return out, err
		}
		out[i] = data
	}
	return out, nil
}
