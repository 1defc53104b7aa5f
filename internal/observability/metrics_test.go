package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/litescript/ls-skymap/internal/skymap"
)

func TestObserveRenderRecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSceneCollector(reg)
	if err != nil {
		t.Fatalf("NewSceneCollector: %v", err)
	}

	scene := &skymap.Scene{
		Points: []skymap.Point{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	diag := skymap.Diagnostics{DanglingSegments: 2}
	collector.ObserveRender(scene, diag, 5*time.Millisecond, nil)

	if got := testutil.ToFloat64(collector.Renders.WithLabelValues("ok")); got != 1 {
		t.Fatalf("skymap_renders_total{outcome=ok} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.VisibleStars); got != 3 {
		t.Fatalf("skymap_visible_stars = %v, want 3", got)
	}
	if got := testutil.ToFloat64(collector.DanglingSegments); got != 2 {
		t.Fatalf("skymap_dangling_segments_total = %v, want 2", got)
	}
}

func TestObserveRenderRecordsErrors(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSceneCollector(reg)
	if err != nil {
		t.Fatalf("NewSceneCollector: %v", err)
	}

	collector.ObserveRender(nil, skymap.Diagnostics{}, 0, errors.New("bad observer"))

	if got := testutil.ToFloat64(collector.Renders.WithLabelValues("error")); got != 1 {
		t.Fatalf("skymap_renders_total{outcome=error} = %v, want 1", got)
	}
	if got := testutil.ToFloat64(collector.VisibleStars); got != 0 {
		t.Fatalf("skymap_visible_stars = %v, want 0 after failed render", got)
	}
}

func TestNilCollectorIsNoop(t *testing.T) {
	var collector *SceneCollector
	// Must not panic.
	collector.ObserveRender(&skymap.Scene{}, skymap.Diagnostics{}, time.Millisecond, nil)
}

func TestDuplicateRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewSceneCollector(reg)
	if err != nil {
		t.Fatalf("NewSceneCollector: %v", err)
	}
	second, err := NewSceneCollector(reg)
	if err != nil {
		t.Fatalf("NewSceneCollector (second): %v", err)
	}

	first.Renders.WithLabelValues("ok").Inc()
	if got := testutil.ToFloat64(second.Renders.WithLabelValues("ok")); got != 1 {
		t.Fatalf("second collector sees %v renders, want 1 (shared)", got)
	}
}

func TestMetricsHandlerExposesSceneMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewSceneCollector(reg)
	if err != nil {
		t.Fatalf("NewSceneCollector: %v", err)
	}
	collector.ObserveRender(&skymap.Scene{Points: []skymap.Point{{ID: 1}}}, skymap.Diagnostics{}, time.Millisecond, nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	collector.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"skymap_renders_total",
		"skymap_render_duration_seconds",
		"skymap_visible_stars",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %q in /metrics output", metric)
		}
	}
}
