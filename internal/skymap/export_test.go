package skymap

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
)

func buildTestScene(t *testing.T) (*Scene, Diagnostics) {
	t.Helper()
	scene, diag, err := Build(catalog.Default(), Request{
		Observer: astro.Observer{LatDeg: 51.5074, LonDeg: -0.1278, Name: "London"},
		Time:     fixedEpoch,
	})
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return scene, diag
}

func TestWriteJSON_RoundTrip(t *testing.T) {
	scene, diag := buildTestScene(t)

	var buf bytes.Buffer
	if err := Export(scene, diag).WriteJSON(&buf); err != nil {
		t.Fatalf("WriteJSON() = %v", err)
	}

	var decoded SceneExport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if decoded.Scene == nil {
		t.Fatal("decoded export has no scene")
	}
	if len(decoded.Scene.Points) != len(scene.Points) {
		t.Errorf("decoded %d points, want %d", len(decoded.Scene.Points), len(scene.Points))
	}
	if len(decoded.Scene.Cardinals) != 4 {
		t.Errorf("decoded %d cardinals, want 4", len(decoded.Scene.Cardinals))
	}
	if decoded.BelowHorizon != diag.BelowHorizon {
		t.Errorf("decoded BelowHorizon = %d, want %d", decoded.BelowHorizon, diag.BelowHorizon)
	}
}

func TestWriteSummaryTable(t *testing.T) {
	scene, diag := buildTestScene(t)

	var buf bytes.Buffer
	WriteSummaryTable(&buf, scene, diag)
	out := buf.String()

	if !strings.Contains(out, "London") {
		t.Error("summary should name the observer")
	}
	if !strings.Contains(out, "STAR") || !strings.Contains(out, "MAG") {
		t.Error("summary should have a table header")
	}
	if !strings.Contains(out, "stars visible") {
		t.Error("summary should report the visible count")
	}
}
