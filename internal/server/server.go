// Package server exposes the scene builder over HTTP.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
	"github.com/litescript/ls-skymap/internal/locations"
	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/observability"
	"github.com/litescript/ls-skymap/internal/skymap"
)

// Options holds configuration for the HTTP server. Zero durations fall
// back to the net/http defaults.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request.
	ReadTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out response writes.
	WriteTimeout time.Duration
	// IdleTimeout is the keep-alive idle limit.
	IdleTimeout time.Duration
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
}

// Handler serves scene requests against a fixed catalog.
type Handler struct {
	catalog *catalog.Catalog
	metrics *observability.SceneCollector
	log     *logging.Logger
}

// NewHandler creates a scene handler. The metrics collector and logger
// may be nil.
func NewHandler(cat *catalog.Catalog, metrics *observability.SceneCollector, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Discard()
	}
	return &Handler{catalog: cat, metrics: metrics, log: log}
}

// Router builds the chi router with the v1 API, health and metrics routes.
func (h *Handler) Router(metricsPath string) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)

	r.Get("/v1/scene", h.handleScene)
	r.Get("/healthz", h.handleHealth)

	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	if h.metrics != nil {
		r.Method(http.MethodGet, metricsPath, h.metrics.Handler())
	}

	return r
}

// NewServer wires up a configured *http.Server using the provided Options.
func NewServer(h *Handler, opts Options) *http.Server {
	return &http.Server{
		Addr:         opts.Addr,
		Handler:      h.Router(opts.MetricsPath),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleScene renders a scene for the observer given in query params.
//
//	GET /v1/scene?lat=40.7&lon=-74.0&time=2024-07-15T22:00:00Z&min_alt=10
//
// A location=<preset> parameter may replace lat/lon. The time defaults
// to now, min_alt to the geometric horizon, and mode to the linear
// zenith projection.
func (h *Handler) handleScene(w http.ResponseWriter, r *http.Request) {
	req, err := parseSceneRequest(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	scene, diag, err := skymap.Build(h.catalog, req)
	elapsed := time.Since(start)
	h.metrics.ObserveRender(scene, diag, elapsed, err)

	if err != nil {
		// Build only fails on observer validation.
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	h.log.Debug("scene rendered for %s: %d stars, %d lines in %s",
		req.Observer.Name, len(scene.Points), len(scene.Lines), elapsed.Round(time.Microsecond))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(skymap.Export(scene, diag)); err != nil {
		h.log.Error("encode scene response: %v", err)
	}
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}` + "\n"))
}

func (h *Handler) writeError(w http.ResponseWriter, code int, err error) {
	if code >= 500 {
		h.log.Error("request failed: %v", err)
	} else {
		h.log.Debug("rejected request: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}

// parseSceneRequest translates query parameters into a scene request.
func parseSceneRequest(r *http.Request) (skymap.Request, error) {
	q := r.URL.Query()
	req := skymap.Request{
		Time:       time.Now().UTC(),
		Projection: astro.DefaultProjectionConfig(),
	}

	if loc := q.Get("location"); loc != "" {
		obs, ok := locations.Lookup(loc)
		if !ok {
			return req, fmt.Errorf("unknown location %q", loc)
		}
		req.Observer = obs
	} else {
		lat, err := parseFloat(q.Get("lat"), "lat")
		if err != nil {
			return req, err
		}
		lon, err := parseFloat(q.Get("lon"), "lon")
		if err != nil {
			return req, err
		}
		req.Observer = astro.Observer{
			LatDeg: lat,
			LonDeg: lon,
			Name:   fmt.Sprintf("%.4f, %.4f", lat, lon),
		}
	}

	if ts := q.Get("time"); ts != "" {
		t, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return req, fmt.Errorf("invalid time %q, want RFC 3339", ts)
		}
		req.Time = t.UTC()
	}

	if ma := q.Get("min_alt"); ma != "" {
		v, err := parseFloat(ma, "min_alt")
		if err != nil {
			return req, err
		}
		if v < 0 || v > 90 {
			return req, fmt.Errorf("min_alt %v out of range [0, 90]", v)
		}
		req.MinAltDeg = v
	}

	switch mode := q.Get("mode"); mode {
	case "", "linear":
	case "stereographic":
		req.Projection.Mode = astro.ScaleStereographic
	default:
		return req, fmt.Errorf("unknown projection mode %q", mode)
	}

	return req, nil
}

func parseFloat(s, name string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing required parameter %q", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", name, s)
	}
	return v, nil
}
