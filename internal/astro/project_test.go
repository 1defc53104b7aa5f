package astro

import (
	"math"
	"testing"
)

var projectionModes = []struct {
	name string
	mode ScaleMode
}{
	{"linear", ScaleLinearZenith},
	{"stereographic", ScaleStereographic},
}

func TestRadiusForAltitude_Boundaries(t *testing.T) {
	for _, pm := range projectionModes {
		t.Run(pm.name, func(t *testing.T) {
			cfg := ProjectionConfig{Mode: pm.mode}
			if r := RadiusForAltitude(90, cfg); r != 0 {
				t.Errorf("r(zenith) = %v, want exactly 0", r)
			}
			if r := RadiusForAltitude(0, cfg); r != 1 {
				t.Errorf("r(horizon) = %v, want exactly 1", r)
			}
		})
	}
}

func TestRadiusForAltitude_Monotonic(t *testing.T) {
	// r must be non-decreasing in zenith angle over [0, 90].
	for _, pm := range projectionModes {
		t.Run(pm.name, func(t *testing.T) {
			cfg := ProjectionConfig{Mode: pm.mode}
			prev := -1.0
			for el := 90.0; el >= 0; el -= 0.5 {
				r := RadiusForAltitude(el, cfg)
				if r < prev {
					t.Fatalf("r not monotonic at el=%v: %v < %v", el, r, prev)
				}
				if r < 0 || r > 1 {
					t.Fatalf("r out of unit disk at el=%v: %v", el, r)
				}
				prev = r
			}
		})
	}
}

func TestProject_RoundTrip(t *testing.T) {
	for _, pm := range projectionModes {
		t.Run(pm.name, func(t *testing.T) {
			cfg := ProjectionConfig{Mode: pm.mode}
			for az := 0.0; az < 360; az += 15 {
				for el := 1.0; el <= 89; el += 11 {
					x, y := Project(az, el, cfg)
					gotAz, gotEl := Unproject(x, y, cfg)

					azDiff := math.Abs(gotAz - az)
					if azDiff > 180 {
						azDiff = 360 - azDiff
					}
					if azDiff > 1e-9 {
						t.Fatalf("az round-trip at (%v, %v): got %v", az, el, gotAz)
					}
					if math.Abs(gotEl-el) > 1e-9 {
						t.Fatalf("el round-trip at (%v, %v): got %v", az, el, gotEl)
					}
				}
			}
		})
	}
}

func TestProject_Orientation(t *testing.T) {
	cfg := DefaultProjectionConfig()

	// Zenith maps to the origin.
	x, y := Project(123, 90, cfg)
	if math.Abs(x) > 1e-12 || math.Abs(y) > 1e-12 {
		t.Errorf("zenith projected to (%v, %v), want origin", x, y)
	}

	// North on the horizon is straight up.
	x, y = Project(0, 0, cfg)
	if math.Abs(x) > 1e-9 || math.Abs(y-1) > 1e-9 {
		t.Errorf("north horizon projected to (%v, %v), want (0, 1)", x, y)
	}

	// East is right.
	x, y = Project(90, 0, cfg)
	if math.Abs(x-1) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("east horizon projected to (%v, %v), want (1, 0)", x, y)
	}
}

func TestProject_Rotation(t *testing.T) {
	// Rotating the plane by 90° sends North to screen-right.
	cfg := ProjectionConfig{Mode: ScaleLinearZenith, RotationDeg: 90}
	x, y := Project(0, 0, cfg)
	if math.Abs(x-1) > 1e-9 || math.Abs(y) > 1e-9 {
		t.Errorf("rotated north projected to (%v, %v), want (1, 0)", x, y)
	}
}

func TestCardinalAnchors(t *testing.T) {
	anchors := CardinalAnchors(DefaultProjectionConfig())
	if len(anchors) != 4 {
		t.Fatalf("got %d anchors, want 4", len(anchors))
	}

	want := map[string][2]float64{
		"N": {0, 1},
		"E": {1, 0},
		"S": {0, -1},
		"W": {-1, 0},
	}
	for _, a := range anchors {
		exp, ok := want[a.Label]
		if !ok {
			t.Fatalf("unexpected anchor label %q", a.Label)
		}
		if math.Abs(a.X-exp[0]) > 1e-9 || math.Abs(a.Y-exp[1]) > 1e-9 {
			t.Errorf("anchor %s at (%v, %v), want (%v, %v)", a.Label, a.X, a.Y, exp[0], exp[1])
		}
		if r := math.Hypot(a.X, a.Y); math.Abs(r-1) > 1e-9 {
			t.Errorf("anchor %s not on the rim: r=%v", a.Label, r)
		}
	}
}
