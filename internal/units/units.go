// Package units maps a measurement system to its display suffixes.
package units

import (
	"errors"
	"fmt"
	"strings"
)

// System is a measurement convention. The zero value is not a valid system.
type System int

const (
	Metric System = iota + 1
	Imperial
)

// ErrUnknownSystem matches any UnknownSystemError.
var ErrUnknownSystem = errors.New("units: unknown measurement system")

// UnknownSystemError reports a selector that is neither metric nor imperial.
type UnknownSystemError struct {
	Value string
}

func (e *UnknownSystemError) Error() string {
	return fmt.Sprintf("units: unknown measurement system %q", e.Value)
}

func (e *UnknownSystemError) Is(target error) bool {
	return target == ErrUnknownSystem
}

// Labels are the suffixes appended to displayed values.
type Labels struct {
	Temperature string `json:"temperature"`
	Speed       string `json:"speed"`
}

// String returns the upstream API token for the system.
func (s System) String() string {
	switch s {
	case Metric:
		return "metric"
	case Imperial:
		return "imperial"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Parse maps an API token ("metric", "imperial") to a System.
func Parse(token string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "metric":
		return Metric, nil
	case "imperial":
		return Imperial, nil
	default:
		return 0, &UnknownSystemError{Value: token}
	}
}

// Resolve returns the display suffixes for s.
func Resolve(s System) (Labels, error) {
	switch s {
	case Metric:
		return Labels{Temperature: "°C", Speed: "m/s"}, nil
	case Imperial:
		return Labels{Temperature: "°F", Speed: "mph"}, nil
	default:
		return Labels{}, &UnknownSystemError{Value: s.String()}
	}
}

func (s System) MarshalText() ([]byte, error) {
	if _, err := Resolve(s); err != nil {
		return nil, err
	}
	return []byte(s.String()), nil
}

func (s *System) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
