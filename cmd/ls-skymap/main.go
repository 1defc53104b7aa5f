// Command ls-skymap projects a star catalog onto a terminal sky map
// for any observer location and time.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
	"github.com/litescript/ls-skymap/internal/config"
	"github.com/litescript/ls-skymap/internal/locations"
	"github.com/litescript/ls-skymap/internal/logging"
	"github.com/litescript/ls-skymap/internal/observability"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/server"
	"github.com/litescript/ls-skymap/internal/skymap"
	"github.com/litescript/ls-skymap/internal/ui"
)

// CLI flags for headless and server modes
var (
	summaryMode   bool
	skyMode       bool
	scenePath     string
	batchSpec     string
	serveMode     bool
	listLocations bool
)

func main() {
	configPath := flag.String("config", "", "Path to yaml config file (optional)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	lat := flag.Float64("lat", 91, "Observer latitude in degrees, north positive")
	lon := flag.Float64("lon", 181, "Observer longitude in degrees, east positive")
	location := flag.String("location", "", "Observer preset (see -list-locations)")
	when := flag.String("time", "", `Observation time UTC ("2006-01-02 15:04:05" or RFC 3339, default now)`)
	minAlt := flag.Float64("min-alt", -1, "Minimum altitude in degrees for a star to be drawn")
	stereographic := flag.Bool("stereographic", false, "Use the stereographic disk projection")
	catalogPath := flag.String("catalog", "", "Path to JSON star catalog (default built-in)")
	addr := flag.String("addr", "", "HTTP listen address for -serve")
	flag.BoolVar(&summaryMode, "summary", false, "Print a text summary instead of TUI")
	flag.BoolVar(&skyMode, "sky", false, "Print an ASCII sky view and exit")
	flag.StringVar(&scenePath, "scene-path", "", "Export scene JSON to file (use - for stdout)")
	flag.StringVar(&batchSpec, "batch", "", "Comma-separated locations to render concurrently")
	flag.BoolVar(&serveMode, "serve", false, "Run the HTTP scene service")
	flag.BoolVar(&listLocations, "list-locations", false, "List observer presets and exit")
	flag.Parse()

	if listLocations {
		for _, key := range locations.Keys() {
			obs, _ := locations.Lookup(key)
			fmt.Printf("%-12s %s (%.4f, %.4f)\n", key, obs.Name, obs.LatDeg, obs.LonDeg)
		}
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Flags override config
	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := logging.New(logging.ParseLevel(level))

	cat, err := loadCatalog(*catalogPath, cfg.CatalogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	obs, err := resolveObserver(cfg, *location, *lat, *lon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cutoff := cfg.MinAltDeg
	if *minAlt >= 0 {
		cutoff = *minAlt
	}

	proj := astro.DefaultProjectionConfig()
	if *stereographic {
		proj.Mode = astro.ScaleStereographic
	}

	instant, live, err := resolveTime(*when)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if serveMode {
		listen := cfg.HTTP.Addr
		if *addr != "" {
			listen = *addr
		}
		runServer(ctx, cat, cfg, listen, logger)
		return
	}

	if batchSpec != "" {
		if err := runBatch(ctx, cat, batchSpec, instant, cutoff, proj); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Headless when an output mode is requested or stdout is not a TTY
	headless := summaryMode || skyMode || scenePath != "" ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		if err := runHeadless(cat, obs, instant, cutoff, proj); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := ui.New(cat, obs, instant, live, cutoff, proj)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

func loadCatalog(flagPath, cfgPath string) (*catalog.Catalog, error) {
	path := cfgPath
	if flagPath != "" {
		path = flagPath
	}
	if path == "" {
		return catalog.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	cat, err := catalog.Load(f)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return cat, nil
}

// resolveObserver picks the observing site: -location preset first,
// then explicit -lat/-lon, then the configured default. The flag
// defaults sit outside the valid ranges so "not set" is detectable.
func resolveObserver(cfg *config.Config, location string, lat, lon float64) (astro.Observer, error) {
	if location != "" {
		obs, ok := locations.Lookup(location)
		if !ok {
			return astro.Observer{}, fmt.Errorf("unknown location %q (see -list-locations)", location)
		}
		return obs, nil
	}

	latSet := lat >= -90 && lat <= 90
	lonSet := lon >= -180 && lon <= 180
	if latSet != lonSet {
		return astro.Observer{}, errors.New("-lat and -lon must be given together")
	}
	if latSet {
		obs := astro.Observer{
			LatDeg: lat,
			LonDeg: lon,
			Name:   fmt.Sprintf("%.4f, %.4f", lat, lon),
		}
		return obs, astro.ValidateObserver(obs)
	}

	obs := astro.Observer{
		LatDeg: cfg.Observer.LatDeg,
		LonDeg: cfg.Observer.LonDeg,
		Name:   cfg.Observer.Name,
	}
	return obs, astro.ValidateObserver(obs)
}

// resolveTime parses the -time flag. An empty flag means live mode.
func resolveTime(s string) (time.Time, bool, error) {
	if s == "" {
		return time.Now().UTC(), true, nil
	}
	for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), false, nil
		}
	}
	return time.Time{}, false, fmt.Errorf("invalid time %q", s)
}

// runHeadless renders one scene and writes the requested outputs.
func runHeadless(cat *catalog.Catalog, obs astro.Observer, instant time.Time, minAlt float64, proj astro.ProjectionConfig) error {
	scene, diag, err := skymap.Build(cat, skymap.Request{
		Observer:   obs,
		Time:       instant,
		MinAltDeg:  minAlt,
		Projection: proj,
	})
	if err != nil {
		return err
	}

	if scenePath != "" {
		export := skymap.Export(scene, diag)
		if scenePath == "-" {
			if err := export.WriteJSON(os.Stdout); err != nil {
				return fmt.Errorf("write JSON to stdout: %w", err)
			}
		} else {
			f, err := os.Create(scenePath)
			if err != nil {
				return fmt.Errorf("create scene file: %w", err)
			}
			defer f.Close()
			if err := export.WriteJSON(f); err != nil {
				return fmt.Errorf("write JSON to file: %w", err)
			}
		}
	}

	if skyMode {
		opts := render.DefaultOptions()
		opts.Color = term.IsTerminal(int(os.Stdout.Fd()))
		fmt.Println(render.Sky(scene, opts))
	}

	// Summary is the fallback when nothing else was requested
	if summaryMode || (scenePath == "" && !skyMode) {
		skymap.WriteSummaryTable(os.Stdout, scene, diag)
	}

	return nil
}

// runBatch renders scenes for several locations concurrently and
// prints a summary for each in input order.
func runBatch(ctx context.Context, cat *catalog.Catalog, spec string, instant time.Time, minAlt float64, proj astro.ProjectionConfig) error {
	var reqs []skymap.Request
	for _, key := range strings.Split(spec, ",") {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		obs, ok := locations.Lookup(key)
		if !ok {
			return fmt.Errorf("unknown location %q (see -list-locations)", key)
		}
		reqs = append(reqs, skymap.Request{
			Observer:   obs,
			Time:       instant,
			MinAltDeg:  minAlt,
			Projection: proj,
		})
	}
	if len(reqs) == 0 {
		return errors.New("no locations in -batch")
	}

	results := skymap.RenderAll(ctx, cat, reqs, 0)
	for i, res := range results {
		if i > 0 {
			fmt.Println()
		}
		if res.Err != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", res.Request.Observer.Name, res.Err)
			continue
		}
		skymap.WriteSummaryTable(os.Stdout, res.Scene, res.Diagnostics)
	}
	return nil
}

// runServer runs the HTTP scene service until the context is canceled.
func runServer(ctx context.Context, cat *catalog.Catalog, cfg *config.Config, addr string, logger *logging.Logger) {
	metrics, err := observability.NewSceneCollector(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	handler := server.NewHandler(cat, metrics, logger.WithPrefix("http"))
	srv := server.NewServer(handler, server.Options{
		Addr:         addr,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		MetricsPath:  cfg.HTTP.MetricsPath,
	})

	errCh := make(chan error, 1)
	go func() {
		logger.Info("scene service listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown: %v", err)
		}
	}
}
