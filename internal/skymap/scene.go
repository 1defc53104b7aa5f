// Package skymap assembles renderer-agnostic sky scenes: it runs the
// catalog through the coordinate transform, visibility filter, and disk
// projection for one observer and instant, and joins the surviving stars
// with their constellation lines.
package skymap

import (
	"fmt"
	"math"
	"time"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
)

// Request describes one render: where, when, and how much sky.
type Request struct {
	Observer astro.Observer
	Time     time.Time // UTC instant
	// MinAltDeg is the visibility cutoff in degrees above the geometric
	// horizon, valid in [0, 90]. 0 (the default) keeps everything at or
	// above the horizon; raise it to declutter the rim.
	MinAltDeg  float64
	Projection astro.ProjectionConfig
}

// Point is a projected star in the unit disk.
type Point struct {
	ID   int     `json:"id"`
	Name string  `json:"name,omitempty"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Mag  float64 `json:"mag"`
	Size float64 `json:"size"`
}

// Line is a projected constellation segment.
type Line struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// Circle is a reference circle of constant altitude, centered on the zenith.
type Circle struct {
	AltDeg float64 `json:"alt_deg"`
	Radius float64 `json:"radius"`
}

// Label is a cardinal direction anchor on the horizon rim.
type Label struct {
	Text string  `json:"text"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

// Scene is the complete, self-contained description of one sky map in
// normalized [-1,1]x[-1,1] plane coordinates. It carries no references
// back to the catalog; styling and output belong to the renderer.
type Scene struct {
	Observer  astro.Observer `json:"observer"`
	Time      time.Time      `json:"time"`
	Points    []Point        `json:"points"`
	Lines     []Line         `json:"lines"`
	Circles   []Circle       `json:"circles"`
	Cardinals []Label        `json:"cardinals"`
}

// Diagnostics counts non-fatal conditions encountered during assembly.
type Diagnostics struct {
	// DanglingSegments is the number of constellation segments dropped
	// because an endpoint ID is absent from the catalog.
	DanglingSegments int
	// ClippedSegments is the number of segments dropped because an
	// endpoint star is below the visibility cutoff.
	ClippedSegments int
	// BelowHorizon is the number of catalog stars excluded by the cutoff.
	BelowHorizon int
}

// referenceAltitudes are the altitude levels drawn as reference circles:
// the horizon plus the 30° and 60° altitude rings.
var referenceAltitudes = []float64{0, 30, 60}

// markerSize maps apparent magnitude to a display size. Brighter stars
// (lower magnitude) get larger markers: size = 6 - mag, floored at 0.5 so
// faint stars still render as a dot.
func markerSize(mag float64) float64 {
	size := 6 - mag
	if size < 0.5 {
		size = 0.5
	}
	return size
}

// Build assembles a Scene for the request. The scene's points are exactly
// the catalog stars at or above the request's minimum altitude; every
// other star is omitted entirely. Constellation segments appear only when
// both endpoints survive the filter.
//
// Coordinate-range violations in the observer are rejected before any
// computation. Catalog stars are validated at catalog construction, so
// only the observer is checked here. Dangling segment references are not
// errors; they are dropped and counted in Diagnostics.
func Build(cat *catalog.Catalog, req Request) (*Scene, Diagnostics, error) {
	var diag Diagnostics

	if err := astro.ValidateObserver(req.Observer); err != nil {
		return nil, diag, fmt.Errorf("skymap: %w", err)
	}

	// A cutoff below the horizon would admit stars the projector cannot
	// place inside the unit disk (zenith angle > 90°), so the threshold
	// is range-checked like every other input.
	if math.IsNaN(req.MinAltDeg) || req.MinAltDeg < 0 || req.MinAltDeg > 90 {
		return nil, diag, fmt.Errorf("skymap: %w",
			&astro.CoordinateError{Field: "minimum altitude", Value: req.MinAltDeg, Min: 0, Max: 90})
	}

	scene := &Scene{
		Observer: req.Observer,
		Time:     req.Time.UTC(),
	}

	// Transform + filter + project every star. The visible map keeps the
	// projected position per star ID for segment joining below.
	visible := make(map[int]Point, cat.Len())
	for _, star := range cat.Stars() {
		eq := astro.SkyCoord{RAdeg: star.RAdeg, DecDeg: star.DecDeg}
		horiz := astro.EquatorialToHorizontal(eq, req.Observer, req.Time)

		if !astro.Visible(horiz.ElDeg, req.MinAltDeg) {
			diag.BelowHorizon++
			continue
		}

		x, y := astro.Project(horiz.AzDeg, horiz.ElDeg, req.Projection)
		p := Point{
			ID:   star.ID,
			Name: star.Name,
			X:    x,
			Y:    y,
			Mag:  star.Mag,
			Size: markerSize(star.Mag),
		}
		visible[star.ID] = p
		scene.Points = append(scene.Points, p)
	}

	// Join constellation segments: a line is drawn only when both
	// endpoints are in the retained visible set. A constellation
	// straddling the horizon is drawn partially, never through the
	// ground.
	for _, seg := range cat.Segments() {
		if _, ok := cat.Star(seg.From); !ok {
			diag.DanglingSegments++
			continue
		}
		if _, ok := cat.Star(seg.To); !ok {
			diag.DanglingSegments++
			continue
		}
		from, okFrom := visible[seg.From]
		to, okTo := visible[seg.To]
		if !okFrom || !okTo {
			diag.ClippedSegments++
			continue
		}
		scene.Lines = append(scene.Lines, Line{X1: from.X, Y1: from.Y, X2: to.X, Y2: to.Y})
	}

	for _, alt := range referenceAltitudes {
		scene.Circles = append(scene.Circles, Circle{
			AltDeg: alt,
			Radius: astro.RadiusForAltitude(alt, req.Projection),
		})
	}

	for _, a := range astro.CardinalAnchors(req.Projection) {
		scene.Cardinals = append(scene.Cardinals, Label{Text: a.Label, X: a.X, Y: a.Y})
	}

	return scene, diag, nil
}
