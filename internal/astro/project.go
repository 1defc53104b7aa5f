package astro

import "math"

// ScaleMode defines how zenith angle is mapped to radial screen distance.
type ScaleMode int

const (
	// ScaleLinearZenith uses a linear radial scale: r = z/90.
	// Simple and numerically well-behaved over the whole disk.
	ScaleLinearZenith ScaleMode = iota

	// ScaleStereographic uses the true stereographic scale: r = tan(z/2).
	// tan(45°) = 1, so the horizon lands exactly on the unit circle.
	ScaleStereographic
)

// ProjectionConfig configures the hemisphere-to-disk projection.
type ProjectionConfig struct {
	Mode ScaleMode
	// RotationDeg rotates the plane clockwise; 0 puts North at screen-up.
	RotationDeg float64
}

// DefaultProjectionConfig returns the linear zenith-angle projection with
// North up.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{Mode: ScaleLinearZenith}
}

// Anchor is a labeled point on the projected plane.
type Anchor struct {
	Label string
	X, Y  float64
}

// Project maps a horizontal position above the horizon onto the unit disk:
// the zenith (el=90) maps to the origin, the horizon (el=0) to the unit
// circle. Azimuth is preserved as the plane angle, so with RotationDeg=0
// North is up and East is right.
//
// Only defined for el in [0, 90]; callers filter below-horizon positions
// before projecting.
func Project(azDeg, elDeg float64, cfg ProjectionConfig) (x, y float64) {
	r := RadiusForAltitude(elDeg, cfg)
	theta := degToRad(azDeg + cfg.RotationDeg)
	return r * math.Sin(theta), r * math.Cos(theta)
}

// Unproject inverts Project for points inside the unit disk, returning
// azimuth in [0, 360) and elevation in [0, 90].
func Unproject(x, y float64, cfg ProjectionConfig) (azDeg, elDeg float64) {
	r := math.Hypot(x, y)

	var z float64 // zenith angle in degrees
	switch cfg.Mode {
	case ScaleStereographic:
		z = 2 * radToDeg(math.Atan(r))
	default:
		z = r * 90
	}

	azDeg = 0.0
	if r > 0 {
		azDeg = normalizeDeg(radToDeg(math.Atan2(x, y)) - cfg.RotationDeg)
	}
	return azDeg, 90 - z
}

// RadiusForAltitude returns the projected radius of the circle of constant
// altitude, using the configured radial scale. Monotonically decreasing in
// altitude with RadiusForAltitude(90)=0 and RadiusForAltitude(0)=1 exactly.
func RadiusForAltitude(elDeg float64, cfg ProjectionConfig) float64 {
	z := 90 - elDeg // zenith angle
	switch cfg.Mode {
	case ScaleStereographic:
		// tan(pi/4) loses the last ulp; pin the horizon to the rim so the
		// boundary contract r(0°)=1 holds exactly.
		if z == 90 {
			return 1
		}
		return math.Tan(degToRad(z) / 2)
	default:
		return z / 90
	}
}

// CardinalAnchors returns the four cardinal direction anchors on the
// horizon rim (r=1), in N, E, S, W order.
func CardinalAnchors(cfg ProjectionConfig) []Anchor {
	labels := []string{"N", "E", "S", "W"}
	anchors := make([]Anchor, 0, 4)
	for i, label := range labels {
		x, y := Project(float64(i)*90, 0, cfg)
		anchors = append(anchors, Anchor{Label: label, X: x, Y: y})
	}
	return anchors
}
