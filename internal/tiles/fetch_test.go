package tiles

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestFetcherWorld(t *testing.T) {
	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		if r.URL.Query().Get("appid") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		io.WriteString(w, r.URL.Path)
	}))
	defer srv.Close()

	f := NewFetcher(NewBuilder(srv.URL, "secret"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	world, err := f.World(context.Background(), LayerTemperature)
	if err != nil {
		t.Fatalf("World: %v", err)
	}

	want := []string{
		"/map/temp_new/1/0/0.png",
		"/map/temp_new/1/1/0.png",
		"/map/temp_new/1/0/1.png",
		"/map/temp_new/1/1/1.png",
	}
	for i, w := range want {
		if paths[i] != w {
			t.Errorf("request %d path = %q, want %q", i, paths[i], w)
		}
		if !bytes.Equal(world[i], []byte(w)) {
			t.Errorf("tile %d body = %q, want %q", i, world[i], w)
		}
	}
}

func TestFetcherTile_ErrorHidesKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	f := NewFetcher(NewBuilder(srv.URL, "secret"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := f.Tile(context.Background(), LayerWind, Tile{X: 0, Y: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "status 401") {
		t.Errorf("err = %v, want status 401", err)
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("err %q leaks the API key", err)
	}

	srv.Close()
	_, err = f.Tile(context.Background(), LayerWind, Tile{X: 0, Y: 1})
	if err == nil {
		t.Fatal("expected transport error")
	}
	if strings.Contains(err.Error(), "secret") {
		t.Errorf("transport err %q leaks the API key", err)
	}
}
