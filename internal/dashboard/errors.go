package dashboard

import (
	"errors"
	"fmt"

	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

var ErrEmptyCity = errors.New("dashboard: empty city")

// NotFoundError carries the display name of a city the geocoder did not
// know. It matches owm.ErrNotFound.
type NotFoundError struct {
	City string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city not found: %s: %v", e.City, e.Err)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// Describe maps an interaction error to the message shown to the user.
// Internal details such as endpoints and status codes are not included.
func Describe(err error) string {
	var notFound *NotFoundError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyCity):
		return "Please enter a city name"
	case errors.As(err, &notFound):
		return "City not found: " + notFound.City
	case errors.Is(err, owm.ErrNotFound):
		return "City not found"
	case errors.Is(err, owm.ErrUpstream):
		return "Weather service unavailable, please try again"
	case errors.Is(err, owm.ErrMissingField):
		return "Weather data incomplete"
	case errors.Is(err, units.ErrUnknownSystem):
		return "Unknown unit system"
	case errors.Is(err, tiles.ErrUnknownLayer):
		return "Unknown map layer"
	default:
		return "Something went wrong, please try again"
	}
}
