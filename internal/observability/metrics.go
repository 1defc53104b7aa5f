// Package observability bundles Prometheus metrics for the scene service.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/litescript/ls-skymap/internal/skymap"
)

// SceneCollector bundles Prometheus metrics for scene rendering and
// provides a ready-to-use /metrics handler.
type SceneCollector struct {
	gatherer prometheus.Gatherer

	Renders         *prometheus.CounterVec
	RenderDurations prometheus.Histogram

	VisibleStars     prometheus.Gauge
	DanglingSegments prometheus.Counter
}

// NewSceneCollector registers scene metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewSceneCollector(reg prometheus.Registerer) (*SceneCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	renders := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "skymap_renders_total",
		Help: "Total number of scene renders, labeled by outcome.",
	}, []string{"outcome"})
	renders, err := registerCounterVec(reg, renders, "skymap_renders_total")
	if err != nil {
		return nil, err
	}

	durations := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "skymap_render_duration_seconds",
		Help:    "Scene render latency in seconds.",
		Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	})
	durations, err = registerHistogram(reg, durations, "skymap_render_duration_seconds")
	if err != nil {
		return nil, err
	}

	visible, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "skymap_visible_stars",
		Help: "Number of stars in the most recently rendered scene.",
	}), "skymap_visible_stars")
	if err != nil {
		return nil, err
	}

	dangling := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "skymap_dangling_segments_total",
		Help: "Total constellation segments dropped for referencing unknown star IDs.",
	})
	dangling, err = registerCounter(reg, dangling, "skymap_dangling_segments_total")
	if err != nil {
		return nil, err
	}

	return &SceneCollector{
		gatherer:         gatherer,
		Renders:          renders,
		RenderDurations:  durations,
		VisibleStars:     visible,
		DanglingSegments: dangling,
	}, nil
}

// ObserveRender records one render attempt. A nil collector is a no-op
// so callers never have to guard the metrics path.
func (c *SceneCollector) ObserveRender(scene *skymap.Scene, diag skymap.Diagnostics, elapsed time.Duration, err error) {
	if c == nil {
		return
	}

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	if c.Renders != nil {
		c.Renders.WithLabelValues(outcome).Inc()
	}
	if err != nil {
		return
	}

	if c.RenderDurations != nil {
		c.RenderDurations.Observe(elapsed.Seconds())
	}
	if c.VisibleStars != nil && scene != nil {
		c.VisibleStars.Set(float64(len(scene.Points)))
	}
	if c.DanglingSegments != nil && diag.DanglingSegments > 0 {
		c.DanglingSegments.Add(float64(diag.DanglingSegments))
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *SceneCollector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerHistogram(reg prometheus.Registerer, hist prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(hist); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return hist, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}
