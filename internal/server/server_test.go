package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	tzselect "github.com/goliatone/go-tzselect"
	"github.com/goliatone/go-tzselect/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

func testServer(t *testing.T, buf *bytes.Buffer) (*Server, *prometheus.Registry) {
	t.Helper()
	helper, err := tzselect.New()
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	reg := prometheus.NewRegistry()
	srv, err := New(testConfig(t), helper, zerolog.New(buf), reg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv, reg
}

func TestServer_ServesOptionList(t *testing.T) {
	var logs bytes.Buffer
	srv, _ := testServer(t, &logs)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones?locale=de&q=Mexiko", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"value":"Mexico City"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if !strings.Contains(logs.String(), `"status":200`) || !strings.Contains(logs.String(), `"request_id"`) {
		t.Fatalf("expected access log entry, got %s", logs.String())
	}
}

func TestServer_CountsServedLists(t *testing.T) {
	srv, _ := testServer(t, &bytes.Buffer{})

	for _, target := range []string{
		"/api/timezones?locale=de",
		"/api/timezones?locale=de&format=html",
		"/api/timezones?locale=xx",
	} {
		rec := httptest.NewRecorder()
		srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("%s: expected status 200, got %d", target, rec.Code)
		}
	}

	if got := testutil.ToFloat64(srv.metrics.ListsServed.WithLabelValues("de", "json")); got != 1 {
		t.Fatalf("expected 1 de/json list, got %v", got)
	}
	if got := testutil.ToFloat64(srv.metrics.ListsServed.WithLabelValues("de", "html")); got != 1 {
		t.Fatalf("expected 1 de/html list, got %v", got)
	}
	if got := testutil.ToFloat64(srv.metrics.ListsServed.WithLabelValues("other", "json")); got != 1 {
		t.Fatalf("expected 1 other/json list, got %v", got)
	}
}

func TestServer_MetricsAndHealth(t *testing.T) {
	srv, _ := testServer(t, &bytes.Buffer{})

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/timezones", nil))

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "tzselect_lists_served_total") {
		t.Fatalf("unexpected metrics response %d: %s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok\n" {
		t.Fatalf("unexpected health response %d: %q", rec.Code, rec.Body.String())
	}
}

func TestServer_RoutePathFromConfig(t *testing.T) {
	t.Setenv("TZSELECT_SERVER_ROUTE_PATH", "/tz")
	helper, err := tzselect.New()
	if err != nil {
		t.Fatalf("new helper: %v", err)
	}
	srv, err := New(testConfig(t), helper, zerolog.Nop(), nil)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	if srv.Route() != "/tz" {
		t.Fatalf("unexpected route %q", srv.Route())
	}

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tz?q=utc", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

func TestNew_RequiresDependencies(t *testing.T) {
	if _, err := New(nil, nil, zerolog.Nop(), nil); err == nil {
		t.Fatal("expected error for missing config")
	}
	if _, err := New(&config.Config{}, nil, zerolog.Nop(), nil); err == nil {
		t.Fatal("expected error for missing helper")
	}
}
