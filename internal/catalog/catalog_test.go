package catalog

import (
	"errors"
	"testing"

	"github.com/litescript/ls-skymap/internal/astro"
)

func TestNew_DuplicateID(t *testing.T) {
	stars := []Star{
		{ID: 1, Name: "A", RAdeg: 10, DecDeg: 10, Mag: 1},
		{ID: 1, Name: "B", RAdeg: 20, DecDeg: 20, Mag: 2},
	}
	if _, err := New(stars, nil); err == nil {
		t.Fatal("duplicate star ID should be rejected")
	}
}

func TestNew_InvalidCoordinates(t *testing.T) {
	stars := []Star{{ID: 1, Name: "Bad", RAdeg: 400, DecDeg: 0, Mag: 1}}
	_, err := New(stars, nil)
	if err == nil {
		t.Fatal("out-of-range RA should be rejected")
	}
	if !errors.Is(err, astro.ErrInvalidCoordinate) {
		t.Errorf("error should wrap ErrInvalidCoordinate: %v", err)
	}
}

func TestNew_DanglingSegmentsAllowed(t *testing.T) {
	// Constellation lines naming unknown stars load fine; the drop policy
	// lives at scene assembly.
	stars := []Star{{ID: 1, Name: "A", RAdeg: 10, DecDeg: 10, Mag: 1}}
	cons := []Constellation{{Name: "X", Segments: []Segment{{From: 1, To: 999}}}}
	c, err := New(stars, cons)
	if err != nil {
		t.Fatalf("New() = %v", err)
	}
	if got := len(c.Segments()); got != 1 {
		t.Errorf("Segments() = %d, want 1", got)
	}
}

func TestStarLookup(t *testing.T) {
	c := Default()

	sirius, ok := c.Star(32349)
	if !ok {
		t.Fatal("Sirius should be in the default catalog")
	}
	if sirius.Name != "Sirius" || sirius.Mag != -1.46 {
		t.Errorf("unexpected Sirius record: %+v", sirius)
	}

	if _, ok := c.Star(999999); ok {
		t.Error("lookup of unknown ID should report !ok")
	}
}

func TestDefault_SegmentsResolve(t *testing.T) {
	// The embedded figures must only reference stars present in the
	// embedded table.
	c := Default()
	for _, con := range c.Constellations() {
		for _, seg := range con.Segments {
			if _, ok := c.Star(seg.From); !ok {
				t.Errorf("%s: segment references unknown star %d", con.Name, seg.From)
			}
			if _, ok := c.Star(seg.To); !ok {
				t.Errorf("%s: segment references unknown star %d", con.Name, seg.To)
			}
		}
	}
}

func TestDefault_OrderedByMagnitude(t *testing.T) {
	// The embedded table is documented brightest-first; keep the data and
	// its annotation in agreement.
	for i := 1; i < len(defaultStars); i++ {
		prev, cur := defaultStars[i-1], defaultStars[i]
		if cur.Mag < prev.Mag {
			t.Errorf("%s (%.2f) listed after fainter %s (%.2f)",
				cur.Name, cur.Mag, prev.Name, prev.Mag)
		}
	}
}

func TestDefault_Size(t *testing.T) {
	c := Default()
	if c.Len() < 60 {
		t.Errorf("default catalog has %d stars, expected at least 60", c.Len())
	}
	if len(c.Constellations()) != 5 {
		t.Errorf("default catalog has %d constellations, want 5", len(c.Constellations()))
	}
}
