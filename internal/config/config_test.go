package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.Observer.Name != "Greenwich" {
		t.Errorf("Observer.Name = %q, want Greenwich", cfg.Observer.Name)
	}
	if cfg.Observer.LatDeg != 51.4769 {
		t.Errorf("Observer.LatDeg = %v", cfg.Observer.LatDeg)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
	if cfg.HTTP.MetricsPath != "/metrics" {
		t.Errorf("HTTP.MetricsPath = %q", cfg.HTTP.MetricsPath)
	}
	if cfg.GracefulShutdownTimeout != 10*time.Second {
		t.Errorf("GracefulShutdownTimeout = %v", cfg.GracefulShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SKYMAP_LOG_LEVEL", "debug")
	t.Setenv("SKYMAP_OBSERVER_LAT", "-33.8688")
	t.Setenv("SKYMAP_HTTP_ADDR", ":9090")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Observer.LatDeg != -33.8688 {
		t.Errorf("Observer.LatDeg = %v", cfg.Observer.LatDeg)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Errorf("HTTP.Addr = %q", cfg.HTTP.Addr)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "skymap.yaml")
	yaml := `logLevel: warn
observer:
  name: Mauna Kea
  latDeg: 19.8207
  lonDeg: -155.4681
minAltDeg: 15
http:
  addr: ":7070"
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Observer.Name != "Mauna Kea" {
		t.Errorf("Observer.Name = %q", cfg.Observer.Name)
	}
	if cfg.MinAltDeg != 15 {
		t.Errorf("MinAltDeg = %v, want 15", cfg.MinAltDeg)
	}
	if cfg.HTTP.Addr != ":7070" {
		t.Errorf("HTTP.Addr = %q, want :7070", cfg.HTTP.Addr)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
