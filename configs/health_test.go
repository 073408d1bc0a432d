package configs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHealthResolver_PrimaryHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/hero" {
			t.Errorf("probe path = %s", r.URL.Path)
		}
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	r := NewHealthResolver(srv.URL, "http://fallback.local")
	if got := r.Resolve(context.Background()); got != srv.URL {
		t.Errorf("Resolve() = %q, want primary", got)
	}
	if r.ActiveBase() != srv.URL {
		t.Error("active base should stay on the primary")
	}
}

func TestHealthResolver_FallsBackOnStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	r := NewHealthResolver(srv.URL, "http://fallback.local")
	if got := r.Resolve(context.Background()); got != "http://fallback.local" {
		t.Errorf("Resolve() = %q, want fallback", got)
	}
}

func TestHealthResolver_FallsBackOnUnreachable(t *testing.T) {
	r := NewHealthResolver("http://127.0.0.1:1", "http://fallback.local")
	if got := r.Resolve(context.Background()); got != "http://fallback.local" {
		t.Errorf("Resolve() = %q, want fallback", got)
	}
}

func TestHealthResolver_ResolvesOnce(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	r := NewHealthResolver(srv.URL, "http://fallback.local")
	r.Resolve(context.Background())
	r.Resolve(context.Background())
	if calls != 1 {
		t.Errorf("probe ran %d times, want 1", calls)
	}

	select {
	case <-r.Ready():
	default:
		t.Error("Ready should be closed after Resolve")
	}
}
