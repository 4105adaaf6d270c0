package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lox/dashingweather/internal/dashboard"
	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

// errLayerViaTiles is reported when a layer change reaches /api/dashboard.
// Layer changes never refetch weather, so JSON clients use /api/tiles.
const errLayerViaTiles = "Map layers change through /api/tiles"

func (s *Server) handleAPIDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prev := s.previousSession(q)

	ev := event(q)
	if ev == eventLayer {
		s.writeJSON(w, http.StatusBadRequest, APIResponse{Session: prev, Error: errLayerViaTiles})
		return
	}

	sess, view, err := s.interact(r.Context(), prev, ev, q)
	if err != nil {
		s.writeJSON(w, statusFor(err), APIResponse{Session: prev, Error: dashboard.Describe(err)})
		return
	}
	s.writeJSON(w, http.StatusOK, APIResponse{Session: sess, View: view})
}

// handleAPITiles switches the map layer without fetching weather data.
func (s *Server) handleAPITiles(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prev := s.previousSession(q)

	sess, urls, err := s.svc.ChangeLayer(prev, q.Get("layer"))
	if err != nil {
		s.writeJSON(w, statusFor(err), TilesResponse{
			Session: prev,
			Label:   prev.Layer.Label(),
			Tiles:   tiles.LocalURLs(tilePrefix, prev.Layer),
			Error:   dashboard.Describe(err),
		})
		return
	}
	s.writeJSON(w, http.StatusOK, TilesResponse{Session: sess, Label: sess.Layer.Label(), Tiles: urls})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, dashboard.ErrEmptyCity),
		errors.Is(err, units.ErrUnknownSystem),
		errors.Is(err, tiles.ErrUnknownLayer):
		return http.StatusBadRequest
	case errors.Is(err, owm.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, owm.ErrUpstream), errors.Is(err, owm.ErrMissingField):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write response", "error", err)
	}
}
