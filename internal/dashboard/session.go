package dashboard

import (
	"github.com/lox/dashingweather/internal/city"
	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

// Session is the selection one dashboard shows: city, unit system and map
// layer. It travels with each request and is returned, possibly updated, by
// every interaction.
type Session struct {
	City        city.Query          `json:"city"`
	Coordinates *models.Coordinates `json:"coordinates,omitempty"` // nil until geocoded
	Units       units.System        `json:"units"`
	Layer       tiles.Layer         `json:"layer"`
}

// NewSession starts a session for raw city input. Coordinates are resolved on
// first load.
func NewSession(raw string, system units.System, layer tiles.Layer) Session {
	return Session{City: city.Normalize(raw), Units: system, Layer: layer}
}

// Located reports whether the city has already been geocoded.
func (s Session) Located() bool {
	return s.Coordinates != nil
}
