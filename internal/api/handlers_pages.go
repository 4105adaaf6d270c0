package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lox/dashingweather/internal/dashboard"
	"github.com/lox/dashingweather/internal/tiles"
)

const appTitle = "dashingWeather"

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	prev := s.previousSession(q)
	ev := event(q)

	data := PageData{
		Title:   appTitle,
		Session: prev,
		Layers:  tiles.Layers,
		Units:   unitOptions,
	}

	sess, view, err := s.interact(r.Context(), prev, ev, q)
	if err == nil {
		data.Session, data.View = sess, view
	} else {
		data.Error = dashboard.Describe(err)
		// Keep what was on screen before the failed interaction.
		if ev != "" {
			if view, lerr := s.svc.Load(r.Context(), prev); lerr == nil {
				data.Session, data.View = view.Session, view
			}
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.ExecuteTemplate(w, "index.html", data); err != nil {
		s.logger.Error("render index", "error", err)
	}
}

// interact applies one event to prev. On error prev is returned unchanged.
func (s *Server) interact(ctx context.Context, prev dashboard.Session, ev string, q url.Values) (dashboard.Session, *dashboard.View, error) {
	switch ev {
	case eventSubmit:
		return s.svc.Submit(ctx, prev, q.Get("city"))
	case eventUnits:
		return s.svc.ChangeUnits(ctx, prev, q.Get("units"))
	case eventLayer:
		next, _, err := s.svc.ChangeLayer(prev, q.Get("layer"))
		if err != nil {
			return prev, nil, err
		}
		return s.load(ctx, prev, next)
	default:
		return s.load(ctx, prev, prev)
	}
}

func (s *Server) load(ctx context.Context, prev, next dashboard.Session) (dashboard.Session, *dashboard.View, error) {
	view, err := s.svc.Load(ctx, next)
	if err != nil {
		return prev, nil, err
	}
	return view.Session, view, nil
}
