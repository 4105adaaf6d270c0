package units

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		system System
		want   Labels
	}{
		{"metric", Metric, Labels{Temperature: "°C", Speed: "m/s"}},
		{"imperial", Imperial, Labels{Temperature: "°F", Speed: "mph"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.system)
			if err != nil {
				t.Fatalf("Resolve(%v) error = %v", tt.system, err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%v) = %+v, want %+v", tt.system, got, tt.want)
			}
		})
	}
}

func TestResolve_Unknown(t *testing.T) {
	for _, s := range []System{0, 3, -1} {
		got, err := Resolve(s)
		if !errors.Is(err, ErrUnknownSystem) {
			t.Errorf("Resolve(%d) error = %v, want ErrUnknownSystem", int(s), err)
		}
		if got != (Labels{}) {
			t.Errorf("Resolve(%d) = %+v, want zero labels", int(s), got)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		token   string
		want    System
		wantErr bool
	}{
		{"metric", Metric, false},
		{"imperial", Imperial, false},
		{" Imperial\n", Imperial, false},
		{"METRIC", Metric, false},
		{"standard", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := Parse(tt.token)
		if tt.wantErr {
			var unknown *UnknownSystemError
			if !errors.As(err, &unknown) {
				t.Errorf("Parse(%q) error = %v, want *UnknownSystemError", tt.token, err)
				continue
			}
			if unknown.Value != tt.token {
				t.Errorf("UnknownSystemError.Value = %q, want %q", unknown.Value, tt.token)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.token, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestSystem_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Units System `json:"units"`
	}{Imperial})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `{"units":"imperial"}` {
		t.Errorf("marshal = %s", b)
	}

	var out struct {
		Units System `json:"units"`
	}
	if err := json.Unmarshal([]byte(`{"units":"metric"}`), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Units != Metric {
		t.Errorf("Units = %v, want metric", out.Units)
	}
	if err := json.Unmarshal([]byte(`{"units":"kelvin"}`), &out); !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("unmarshal kelvin error = %v, want ErrUnknownSystem", err)
	}
}
