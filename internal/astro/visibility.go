package astro

// MinElevation is the default visibility threshold: the geometric horizon.
// No refraction correction is applied.
const MinElevation = 0.0

// Visible reports whether an object at the given elevation clears the
// minimum-elevation threshold. Inclusive: an object exactly at the
// threshold is visible. Pure predicate, no side effects.
func Visible(elDeg, minElDeg float64) bool {
	return elDeg >= minElDeg
}

// ElevationTier categorizes elevation for UI display.
type ElevationTier int

const (
	ElevationNone   ElevationTier = iota // Below horizon
	ElevationLow                         // 0-15 degrees
	ElevationMedium                      // 15-45 degrees
	ElevationHigh                        // 45+ degrees
)

// GetElevationTier returns the tier for a given elevation.
func GetElevationTier(elDeg float64) ElevationTier {
	switch {
	case elDeg < 0:
		return ElevationNone
	case elDeg < 15:
		return ElevationLow
	case elDeg < 45:
		return ElevationMedium
	default:
		return ElevationHigh
	}
}
