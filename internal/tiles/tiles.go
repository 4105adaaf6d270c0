// Package tiles builds OpenWeatherMap overlay tile URLs for a 2x2 world map
// at zoom level 1, and fetches and stitches the tiles.
package tiles

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	DefaultBaseURL = "https://tile.openweathermap.org"
	Zoom           = 1
	TileSize       = 256
)

// Layer is an overlay metric token.
type Layer string

const (
	LayerTemperature   Layer = "temp_new"
	LayerWind          Layer = "wind_new"
	LayerClouds        Layer = "clouds_new"
	LayerPrecipitation Layer = "precipitation_new"
	LayerPressure      Layer = "pressure_new"
)

// LayerOption is a selectable layer and its display name.
type LayerOption struct {
	Layer Layer  `json:"layer"`
	Label string `json:"label"`
}

// Layers lists the dashboard's overlay choices in menu order.
var Layers = []LayerOption{
	{LayerTemperature, "Temperature"},
	{LayerWind, "Wind"},
	{LayerClouds, "Clouds"},
	{LayerPrecipitation, "Precipitation"},
	{LayerPressure, "Pressure"},
}

// ErrUnknownLayer is returned for a layer token not in Layers.
var ErrUnknownLayer = errors.New("tiles: unknown layer")

// ParseLayer accepts one of Layers.
func ParseLayer(s string) (Layer, error) {
	token := Layer(strings.ToLower(strings.TrimSpace(s)))
	for _, opt := range Layers {
		if opt.Layer == token {
			return token, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLayer, s)
}

// Label returns the display name for l, or the raw token.
func (l Layer) Label() string {
	for _, opt := range Layers {
		if opt.Layer == l {
			return opt.Label
		}
	}
	return string(l)
}

// Tile is a tile coordinate at Zoom.
type Tile struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Quadrants are the four zoom-1 tiles: top-left, top-right, bottom-left,
// bottom-right.
var Quadrants = [4]Tile{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// Contains reports whether t is one of Quadrants.
func Contains(t Tile) bool {
	for _, q := range Quadrants {
		if q == t {
			return true
		}
	}
	return false
}

// Builder constructs upstream tile URLs. The URLs embed the API key and must
// not be handed to browsers or logs; serve LocalURLs instead.
type Builder struct {
	baseURL string
	apiKey  string
}

// NewBuilder returns a Builder for the tile server at baseURL.
func NewBuilder(baseURL, apiKey string) *Builder {
	return &Builder{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey}
}

// URL returns the upstream URL of one tile.
func (b *Builder) URL(layer string, t Tile) string {
	return fmt.Sprintf("%s/map/%s/%d/%d/%d.png?appid=%s",
		b.baseURL, url.PathEscape(layer), Zoom, t.X, t.Y, url.QueryEscape(b.apiKey))
}

// URLs returns the four quadrant URLs in Quadrants order.
func (b *Builder) URLs(layer string) [4]string {
	var out [4]string
	for i, q := range Quadrants {
		out[i] = b.URL(layer, q)
	}
	return out
}

// LocalURLs returns the proxy paths under prefix for the four quadrants,
// e.g. "/tiles/wind_new/1/0.png".
func LocalURLs(prefix string, layer Layer) [4]string {
	prefix = strings.TrimRight(prefix, "/")
	var out [4]string
	for i, q := range Quadrants {
		out[i] = fmt.Sprintf("%s/%s/%d/%d.png", prefix, url.PathEscape(string(layer)), q.X, q.Y)
	}
	return out
}
