// Package dashboard handles the dashboard interactions: submitting a city,
// switching unit systems and switching map layers. The Service holds no
// selection state; each call takes the caller's Session and returns the next
// one.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lox/dashingweather/internal/city"
	"github.com/lox/dashingweather/internal/current"
	"github.com/lox/dashingweather/internal/forecast"
	"github.com/lox/dashingweather/internal/metrics"
	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/owm"
	"github.com/lox/dashingweather/internal/tiles"
	"github.com/lox/dashingweather/internal/units"
)

const TomorrowUnavailable = "Forecast unavailable for tomorrow"

// Weather is the upstream data source. *owm.Client satisfies it.
type Weather interface {
	Geocode(ctx context.Context, query string) (models.Coordinates, error)
	Current(ctx context.Context, coords models.Coordinates, system units.System) (*owm.CurrentResponse, error)
	Forecast(ctx context.Context, coords models.Coordinates, system units.System) (*owm.ForecastResponse, error)
}

// Service runs dashboard interactions. It is safe for concurrent use.
type Service struct {
	weather    Weather
	loc        *time.Location
	now        func() time.Time
	tilePrefix string
	logger     *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the clock used to decide which day is tomorrow.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithTilePrefix sets the path under which tile images are proxied.
func WithTilePrefix(prefix string) Option {
	return func(s *Service) { s.tilePrefix = prefix }
}

// NewService returns a Service. loc is the viewer's timezone; "tomorrow" is
// the calendar day after today in loc.
func NewService(weather Weather, loc *time.Location, logger *slog.Logger, opts ...Option) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		weather:    weather,
		loc:        loc,
		now:        time.Now,
		tilePrefix: "/tiles",
		logger:     logger.With("component", "dashboard"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit looks up a newly entered city and renders it with the session's
// units and layer. On error the input session is returned unchanged.
func (s *Service) Submit(ctx context.Context, sess Session, raw string) (Session, *View, error) {
	q := city.Normalize(raw)
	if q.Blank() {
		s.record("submit", sess, ErrEmptyCity)
		return sess, nil, ErrEmptyCity
	}

	next := sess
	next.City = q
	next.Coordinates = nil
	view, err := s.load(ctx, next)
	s.record("submit", next, err)
	if err != nil {
		return sess, nil, err
	}
	return view.Session, view, nil
}

// ChangeUnits re-renders the session's city in another unit system.
func (s *Service) ChangeUnits(ctx context.Context, sess Session, token string) (Session, *View, error) {
	system, err := units.Parse(token)
	if err != nil {
		s.record("units", sess, err)
		return sess, nil, err
	}

	next := sess
	next.Units = system
	view, err := s.load(ctx, next)
	s.record("units", next, err)
	if err != nil {
		return sess, nil, err
	}
	return view.Session, view, nil
}

// ChangeLayer switches the map overlay. Only tile URLs are rebuilt; no
// weather data is fetched.
func (s *Service) ChangeLayer(sess Session, token string) (Session, [4]string, error) {
	layer, err := tiles.ParseLayer(token)
	s.record("layer", sess, err)
	if err != nil {
		return sess, [4]string{}, err
	}

	next := sess
	next.Layer = layer
	return next, tiles.LocalURLs(s.tilePrefix, layer), nil
}

// Load renders sess as is, geocoding first if needed. The returned view's
// Session carries the resolved coordinates.
func (s *Service) Load(ctx context.Context, sess Session) (*View, error) {
	view, err := s.load(ctx, sess)
	s.record("load", sess, err)
	return view, err
}

func (s *Service) load(ctx context.Context, sess Session) (*View, error) {
	if sess.City.Blank() {
		return nil, ErrEmptyCity
	}
	labels, err := units.Resolve(sess.Units)
	if err != nil {
		return nil, err
	}
	if _, err := tiles.ParseLayer(string(sess.Layer)); err != nil {
		return nil, err
	}

	if !sess.Located() {
		coords, err := s.weather.Geocode(ctx, sess.City.Query)
		if errors.Is(err, owm.ErrNotFound) {
			return nil, &NotFoundError{City: sess.City.Display, Err: err}
		}
		if err != nil {
			return nil, fmt.Errorf("geocode %s: %w", sess.City.Display, err)
		}
		sess.Coordinates = &coords
	}

	cur, err := s.weather.Current(ctx, *sess.Coordinates, sess.Units)
	if err != nil {
		return nil, fmt.Errorf("current weather: %w", err)
	}
	report, err := current.Format(cur, labels)
	if err != nil {
		return nil, fmt.Errorf("current weather: %w", err)
	}

	fc, err := s.weather.Forecast(ctx, *sess.Coordinates, sess.Units)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}
	points, err := forecast.BuildSeries(fc)
	if err != nil {
		return nil, fmt.Errorf("forecast: %w", err)
	}

	now := s.now().In(s.loc)
	display := sess.City.Display
	view := &View{
		Session:     sess,
		Heading:     heading(display),
		Current:     report,
		Temperature: temperatureChart(display, points, labels),
		Rain:        rainChart(display, points),
		Tiles:       tiles.LocalURLs(s.tilePrefix, sess.Layer),
		LayerLabel:  sess.Layer.Label(),
		GeneratedAt: now,
	}
	if cur.Sys != nil {
		view.FlagURL = owm.FlagURL(cur.Sys.Country)
	}

	summary, err := forecast.SummarizeTomorrow(points, now, labels)
	switch {
	case errors.Is(err, forecast.ErrEmptyAggregation):
		view.TomorrowNote = TomorrowUnavailable
	case err != nil:
		return nil, fmt.Errorf("tomorrow: %w", err)
	default:
		view.Tomorrow = &summary
	}
	return view, nil
}

func (s *Service) record(event string, sess Session, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
		s.logger.Warn("interaction failed", "event", event, "city", sess.City.Query, "error", err)
	}
	metrics.DashboardEventsTotal.WithLabelValues(event, outcome).Inc()
}
