package owm

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lox/dashingweather/internal/models"
	"github.com/lox/dashingweather/internal/units"
)

const testKey = "test-key-0123"

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(srv.URL, testKey, logger)
}

func TestGeocode(t *testing.T) {
	var gotQuery, gotKey, gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("q")
		gotKey = r.URL.Query().Get("appid")
		io.WriteString(w, `[{"name":"New York","lat":40.7127,"lon":-74.006,"country":"US","state":"New York"},{"name":"York","lat":53.9,"lon":-1.08,"country":"GB"}]`)
	})

	coords, err := c.Geocode(context.Background(), "new+york")
	if err != nil {
		t.Fatalf("Geocode: %v", err)
	}
	if gotPath != geocodeEndpoint {
		t.Errorf("path = %q, want %q", gotPath, geocodeEndpoint)
	}
	if gotQuery != "new york" {
		t.Errorf("q = %q, want %q", gotQuery, "new york")
	}
	if gotKey != testKey {
		t.Errorf("appid = %q, want %q", gotKey, testKey)
	}
	want := models.Coordinates{Latitude: 40.7127, Longitude: -74.006, Name: "New York", Country: "US", State: "New York"}
	if coords != want {
		t.Errorf("coords = %+v, want %+v", coords, want)
	}
}

func TestGeocode_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})

	_, err := c.Geocode(context.Background(), "atlantis")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGeocode_UpstreamErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{"server error", http.StatusInternalServerError, `{"cod":500}`, 500},
		{"unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, 401},
		{"malformed json", http.StatusOK, `{"lat":`, 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := c.Geocode(context.Background(), "paris")
			if !errors.Is(err, ErrUpstream) {
				t.Fatalf("err = %v, want ErrUpstream", err)
			}
			var upErr *UpstreamError
			if !errors.As(err, &upErr) {
				t.Fatalf("err = %T, want *UpstreamError", err)
			}
			if upErr.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", upErr.Status, tt.wantStatus)
			}
			if upErr.Endpoint != geocodeEndpoint {
				t.Errorf("Endpoint = %q, want %q", upErr.Endpoint, geocodeEndpoint)
			}
		})
	}
}

func TestClient_TransportErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := srv.URL
	srv.Close()

	c := NewClient(baseURL, testKey, slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := c.Current(context.Background(), models.Coordinates{Latitude: 1, Longitude: 2}, units.Metric)
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("err = %v, want ErrUpstream", err)
	}
	if strings.Contains(err.Error(), testKey) {
		t.Errorf("error %q leaks the API key", err)
	}
}

func TestCurrent(t *testing.T) {
	var gotUnits, gotLat, gotLon string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != currentEndpoint {
			http.NotFound(w, r)
			return
		}
		gotUnits = r.URL.Query().Get("units")
		gotLat = r.URL.Query().Get("lat")
		gotLon = r.URL.Query().Get("lon")
		io.WriteString(w, `{
			"weather":[{"id":800,"main":"Clear","description":"clear sky"}],
			"main":{"temp":21.4,"feels_like":20.9,"temp_min":19.8,"temp_max":23.1,"pressure":1015,"humidity":56},
			"wind":{"speed":3.6},
			"clouds":{"all":0},
			"sys":{"country":"NL","sunrise":1685328000,"sunset":1685386800},
			"timezone":7200,
			"name":"Amsterdam"
		}`)
	})

	cur, err := c.Current(context.Background(), models.Coordinates{Latitude: 52.3676, Longitude: 4.9041}, units.Imperial)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	if gotUnits != "imperial" {
		t.Errorf("units = %q, want imperial", gotUnits)
	}
	if gotLat != "52.3676" || gotLon != "4.9041" {
		t.Errorf("lat/lon = %s/%s", gotLat, gotLon)
	}
	if cur.Main == nil || cur.Main.Temp == nil || *cur.Main.Temp != 21.4 {
		t.Errorf("main.temp not decoded: %+v", cur.Main)
	}
	if cur.Timezone == nil || *cur.Timezone != 7200 {
		t.Errorf("timezone not decoded")
	}
	if cur.Sys == nil || cur.Sys.Country != "NL" {
		t.Errorf("sys.country not decoded")
	}
}

func TestCurrent_RejectsUnknownUnits(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Current(context.Background(), models.Coordinates{}, units.System(0))
	if !errors.Is(err, units.ErrUnknownSystem) {
		t.Fatalf("err = %v, want ErrUnknownSystem", err)
	}
	if called {
		t.Error("no request should be made for an unknown unit system")
	}
}

func TestForecast(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"cnt":2,"list":[
			{"dt":1685350800,"dt_txt":"2023-05-29 09:00:00","main":{"temp":15.2,"feels_like":14.1,"temp_min":15.2,"temp_max":16,"humidity":70}},
			{"dt":1685361600,"dt_txt":"2023-05-29 12:00:00","main":{"temp":18,"feels_like":17.5,"temp_min":18,"temp_max":18,"humidity":60},"rain":{"3h":0.42}}
		],"city":{"name":"Amsterdam","country":"NL","timezone":7200}}`)
	})

	fc, err := c.Forecast(context.Background(), models.Coordinates{Latitude: 52.37, Longitude: 4.89}, units.Metric)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	if len(fc.List) != 2 {
		t.Fatalf("len(List) = %d, want 2", len(fc.List))
	}
	if fc.List[0].Rain != nil {
		t.Error("first entry should have no rain block")
	}
	if fc.List[1].Rain == nil || fc.List[1].Rain.ThreeHour == nil || *fc.List[1].Rain.ThreeHour != 0.42 {
		t.Error("second entry rain.3h not decoded")
	}
	if fc.City.Timezone != 7200 {
		t.Errorf("city.timezone = %d, want 7200", fc.City.Timezone)
	}
}

func TestFlagURL(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"NL", "https://www.countryflagicons.com/FLAT/64/NL.png"},
		{"us", "https://www.countryflagicons.com/FLAT/64/US.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FlagURL(tt.code); got != tt.want {
			t.Errorf("FlagURL(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
