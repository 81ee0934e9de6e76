package infrastructure

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"productComposite/internal/modules/composite/domain"
)

func TestProbeUpOnAny2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	prober := NewHealthProber(NewRESTClient(server.URL, time.Second, nil))
	if status := prober.Probe(context.Background()); status != domain.StatusUp {
		t.Fatalf("expected UP, got %s", status)
	}
}

func TestProbeDownOnErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	prober := NewHealthProber(NewRESTClient(server.URL, time.Second, nil))
	if status := prober.Probe(context.Background()); status != domain.StatusDown {
		t.Fatalf("expected DOWN, got %s", status)
	}
}

func TestProbeDownWhenUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	prober := NewHealthProber(NewRESTClient(server.URL, 500*time.Millisecond, nil))
	if status := prober.Probe(context.Background()); status != domain.StatusDown {
		t.Fatalf("expected DOWN, got %s", status)
	}
}

func TestHealthAggregatesAllDownstreams(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()
	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer down.Close()

	integration := newTestIntegration(t, up.URL, down.URL, up.URL)

	health := integration.Health(context.Background())
	if health.Product != domain.StatusUp || health.Review != domain.StatusUp {
		t.Fatalf("expected product and review UP: %+v", health)
	}
	if health.Recommendation != domain.StatusDown {
		t.Fatalf("expected recommendation DOWN: %+v", health)
	}
	if health.Status != domain.StatusDown {
		t.Fatalf("expected aggregate DOWN: %+v", health)
	}
}
