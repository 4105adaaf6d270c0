package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/lox/dashingweather/internal/tiles"
)

const (
	tilePrefix = "/tiles"
	imageCache = "public, max-age=600"
)

// handleTile proxies one overlay tile so the API key never reaches the
// browser.
func (s *Server) handleTile(w http.ResponseWriter, r *http.Request) {
	layer, err := tiles.ParseLayer(r.PathValue("layer"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	x, errX := strconv.Atoi(r.PathValue("x"))
	y, errY := strconv.Atoi(strings.TrimSuffix(r.PathValue("y"), ".png"))
	t := tiles.Tile{X: x, Y: y}
	if errX != nil || errY != nil || !tiles.Contains(t) {
		http.NotFound(w, r)
		return
	}

	data, err := s.tiles.Tile(r.Context(), layer, t)
	if err != nil {
		s.logger.Warn("tile proxy failed", "layer", layer, "x", x, "y", y, "error", err)
		http.Error(w, "Map tile unavailable", http.StatusBadGateway)
		return
	}
	servePNG(w, data)
}

// handleMap serves the four quadrants stitched into one captioned image.
func (s *Server) handleMap(w http.ResponseWriter, r *http.Request) {
	layer, err := tiles.ParseLayer(strings.TrimSuffix(r.PathValue("layer"), ".png"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if data, ok := s.maps.Get(layer); ok {
		servePNG(w, data)
		return
	}

	quads, err := s.tiles.World(r.Context(), layer)
	if err != nil {
		s.logger.Warn("world map fetch failed", "layer", layer, "error", err)
		http.Error(w, "Map unavailable", http.StatusBadGateway)
		return
	}
	data, err := tiles.Compose(quads, layer.Label()+" - OpenWeatherMap")
	if err != nil {
		s.logger.Error("compose world map", "layer", layer, "error", err)
		http.Error(w, "Map unavailable", http.StatusInternalServerError)
		return
	}
	s.maps.Set(layer, data)
	servePNG(w, data)
}

func servePNG(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", imageCache)
	w.Write(data)
}
