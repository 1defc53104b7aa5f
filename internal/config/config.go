// Package config loads the application configuration from a yaml file
// and the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure. Every
// field can be set from the environment, from a yaml file, or both;
// environment variables win.
type Config struct {
	// LogLevel controls logger verbosity (debug, info, warn, error)
	LogLevel string `env:"SKYMAP_LOG_LEVEL" env-default:"info" yaml:"logLevel"`

	// Observer holds the default observing site used when no location
	// is given on the command line or in the request
	Observer struct {
		// Name is a display label for the site
		Name string `env:"SKYMAP_OBSERVER_NAME" env-default:"Greenwich" yaml:"name"`
		// LatDeg is the geographic latitude in degrees, north positive
		LatDeg float64 `env:"SKYMAP_OBSERVER_LAT" env-default:"51.4769" yaml:"latDeg"`
		// LonDeg is the geographic longitude in degrees, east positive
		LonDeg float64 `env:"SKYMAP_OBSERVER_LON" env-default:"0.0" yaml:"lonDeg"`
	} `yaml:"observer"`

	// MinAltDeg is the default visibility cutoff above the horizon
	MinAltDeg float64 `env:"SKYMAP_MIN_ALT" env-default:"0" yaml:"minAltDeg"`

	// CatalogPath optionally points at a JSON star catalog; empty uses
	// the built-in catalog
	CatalogPath string `env:"SKYMAP_CATALOG" env-default:"" yaml:"catalogPath"`

	// HTTP contains the scene service settings
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"SKYMAP_HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request
		ReadTimeout time.Duration `env:"SKYMAP_HTTP_READ_TIMEOUT" env-default:"30s" yaml:"readTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"SKYMAP_HTTP_WRITE_TIMEOUT" env-default:"30s" yaml:"writeTimeout"`
		// IdleTimeout is the maximum time to wait for the next request on a kept-alive connection
		IdleTimeout time.Duration `env:"SKYMAP_HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MetricsPath defines the URL path where Prometheus metrics are exposed
		MetricsPath string `env:"SKYMAP_HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing
	// requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"SKYMAP_GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"`
}

// Load returns a filled Config. When configPath is empty or the file
// does not exist, the configuration comes from the environment and the
// struct defaults alone.
func Load(configPath string) (*Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from env: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, fmt.Errorf("could not read config file %s: %w", configPath, err)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}
	return &cfg, nil
}
