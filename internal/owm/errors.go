package owm

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when geocoding matches no location.
	ErrNotFound = errors.New("owm: location not found")
	// ErrUpstream matches any UpstreamError.
	ErrUpstream = errors.New("owm: upstream unavailable")
	// ErrMissingField matches any MissingFieldError.
	ErrMissingField = errors.New("owm: missing field")
)

// UpstreamError is a transport, HTTP status or decoding failure.
type UpstreamError struct {
	Endpoint string
	Status   int // 0 when no response was received
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("owm: %s: status %d: %v", e.Endpoint, e.Status, e.Err)
	}
	return fmt.Sprintf("owm: %s: %v", e.Endpoint, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// MissingFieldError reports an expected payload field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("owm: missing field %q", e.Field)
}

func (e *MissingFieldError) Is(target error) bool { return target == ErrMissingField }
