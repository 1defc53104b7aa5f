package astro

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidCoordinate indicates an input coordinate outside its legal range.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// CoordinateError describes a coordinate-range violation: which field was
// out of range, the offending value, and the legal bounds. It unwraps to
// ErrInvalidCoordinate so callers can match with errors.Is.
type CoordinateError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid coordinate: %s = %v, want [%v, %v]", e.Field, e.Value, e.Min, e.Max)
}

func (e *CoordinateError) Unwrap() error { return ErrInvalidCoordinate }

// checkRange rejects NaN and values outside [min, max].
func checkRange(field string, v, min, max float64) error {
	if math.IsNaN(v) || v < min || v > max {
		return &CoordinateError{Field: field, Value: v, Min: min, Max: max}
	}
	return nil
}

// ValidateObserver rejects observer latitudes outside [-90, 90] and
// longitudes outside [-180, 180]. Near-polar latitudes are legal; they
// fall under the fixed azimuth convention, not an error.
func ValidateObserver(obs Observer) error {
	if err := checkRange("latitude", obs.LatDeg, -90, 90); err != nil {
		return err
	}
	return checkRange("longitude", obs.LonDeg, -180, 180)
}

// ValidateStar rejects right ascensions outside [0, 360) and declinations
// outside [-90, 90]. No clamping: out-of-range catalog data is a contract
// violation surfaced to the caller.
func ValidateStar(raDeg, decDeg float64) error {
	if math.IsNaN(raDeg) || raDeg < 0 || raDeg >= 360 {
		return &CoordinateError{Field: "right ascension", Value: raDeg, Min: 0, Max: 360}
	}
	return checkRange("declination", decDeg, -90, 90)
}
