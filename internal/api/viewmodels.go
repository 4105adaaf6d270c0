package api

import (
	"net/url"
	"strconv"

	"github.com/lox/dashingweather/internal/dashboard"
	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

// Interaction events. A request without an event renders the current
// session.
const (
	eventSubmit = "submit"
	eventUnits  = "units"
	eventLayer  = "layer"
)

// PageData is the index template's input.
type PageData struct {
	Title   string
	Session dashboard.Session
	View    *dashboard.View
	Error   string
	Layers  []tiles.LayerOption
	Units   []UnitOption
}

type UnitOption struct {
	Value string
	Label string
}

var unitOptions = []UnitOption{
	{Value: units.Metric.String(), Label: "Metric"},
	{Value: units.Imperial.String(), Label: "Imperial"},
}

// APIResponse is the /api/dashboard body.
type APIResponse struct {
	Session dashboard.Session `json:"session"`
	View    *dashboard.View   `json:"view,omitempty"`
	Error   string            `json:"error,omitempty"`
}

// TilesResponse is the /api/tiles body.
type TilesResponse struct {
	Session dashboard.Session `json:"session"`
	Label   string            `json:"label"`
	Tiles   [4]string         `json:"tiles"`
	Error   string            `json:"error,omitempty"`
}

// previousSession rebuilds the displayed session from the cur_* fields the
// page echoes back. Missing or unreadable fields fall back to the defaults.
func (s *Server) previousSession(q url.Values) dashboard.Session {
	raw := q.Get("cur_city")
	if raw == "" {
		raw = s.opts.DefaultCity
	}
	system, err := units.Parse(q.Get("cur_units"))
	if err != nil {
		system = s.opts.DefaultUnits
	}
	layer, err := tiles.ParseLayer(q.Get("cur_layer"))
	if err != nil {
		layer = s.opts.DefaultLayer
	}

	sess := dashboard.NewSession(raw, system, layer)
	if q.Get("cur_city") != "" {
		lat, latErr := strconv.ParseFloat(q.Get("cur_lat"), 64)
		lon, lonErr := strconv.ParseFloat(q.Get("cur_lon"), 64)
		if latErr == nil && lonErr == nil {
			sess.Coordinates = &models.Coordinates{Latitude: lat, Longitude: lon}
		}
	}
	return sess
}

// event returns the requested interaction, inferring it from the fields
// present when no explicit event is given.
func event(q url.Values) string {
	switch e := q.Get("event"); e {
	case eventSubmit, eventUnits, eventLayer:
		return e
	}
	switch {
	case q.Has("city"):
		return eventSubmit
	case q.Has("units"):
		return eventUnits
	case q.Has("layer"):
		return eventLayer
	}
	return ""
}
