package skymap

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"
)

// SceneExport is the JSON-serializable envelope around a rendered scene,
// including the assembly diagnostics for observability.
type SceneExport struct {
	Scene            *Scene `json:"scene"`
	DanglingSegments int    `json:"dangling_segments"`
	ClippedSegments  int    `json:"clipped_segments"`
	BelowHorizon     int    `json:"below_horizon"`
}

// Export wraps a scene and its diagnostics for serialization.
func Export(scene *Scene, diag Diagnostics) *SceneExport {
	return &SceneExport{
		Scene:            scene,
		DanglingSegments: diag.DanglingSegments,
		ClippedSegments:  diag.ClippedSegments,
		BelowHorizon:     diag.BelowHorizon,
	}
}

// WriteJSON writes the export as indented JSON.
func (e *SceneExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}

// WriteSummaryTable writes a plain-text summary of the scene: the
// observer, the brightest visible stars, and the drop counters.
func WriteSummaryTable(w io.Writer, scene *Scene, diag Diagnostics) {
	obs := scene.Observer
	name := obs.Name
	if name == "" {
		name = "observer"
	}
	fmt.Fprintf(w, "Sky over %s (%.4f, %.4f) at %s\n",
		name, obs.LatDeg, obs.LonDeg, scene.Time.Format("2006-01-02 15:04:05 UTC"))
	fmt.Fprintf(w, "%d stars visible, %d constellation lines\n\n",
		len(scene.Points), len(scene.Lines))

	// Brightest first
	points := make([]Point, len(scene.Points))
	copy(points, scene.Points)
	sort.Slice(points, func(i, j int) bool { return points[i].Mag < points[j].Mag })

	const maxRows = 15
	fmt.Fprintf(w, "%-16s %6s %8s %8s\n", "STAR", "MAG", "X", "Y")
	fmt.Fprintln(w, strings.Repeat("-", 42))
	for i, p := range points {
		if i >= maxRows {
			fmt.Fprintf(w, "... and %d more\n", len(points)-maxRows)
			break
		}
		label := p.Name
		if label == "" {
			label = fmt.Sprintf("HIP %d", p.ID)
		}
		fmt.Fprintf(w, "%-16s %6.2f %8.3f %8.3f\n", label, p.Mag, p.X, p.Y)
	}

	fmt.Fprintf(w, "\nbelow horizon: %d  clipped lines: %d  dangling lines: %d\n",
		diag.BelowHorizon, diag.ClippedSegments, diag.DanglingSegments)
}
