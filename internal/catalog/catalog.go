// Package catalog holds the immutable star and constellation data consumed
// by the projection pipeline. A Catalog is built once at startup and never
// mutated afterwards, so concurrent render requests can share it freely.
package catalog

import (
	"fmt"

	"github.com/litescript/ls-skymap/internal/astro"
)

// Star is a cataloged star with position and brightness.
type Star struct {
	ID     int     // Hipparcos catalog number
	Name   string  // Common name (e.g., "Sirius", "Vega")
	RAdeg  float64 // Right Ascension in degrees (J2000)
	DecDeg float64 // Declination in degrees (J2000)
	Mag    float64 // Apparent visual magnitude (lower = brighter)
}

// Segment is a constellation line between two stars, by catalog ID.
type Segment struct {
	From int
	To   int
}

// Constellation is a named set of line segments.
type Constellation struct {
	Name     string
	Segments []Segment
}

// Catalog is a read-only star and constellation store.
type Catalog struct {
	stars          []Star
	byID           map[int]int // star ID -> index into stars
	constellations []Constellation
}

// New builds a Catalog from stars and constellations. Stars with duplicate
// IDs or out-of-range coordinates are rejected. Segments that reference
// unknown star IDs are kept: by policy they are dropped (and counted) at
// scene assembly, since partial constellation data is expected.
func New(stars []Star, constellations []Constellation) (*Catalog, error) {
	c := &Catalog{
		stars:          make([]Star, len(stars)),
		byID:           make(map[int]int, len(stars)),
		constellations: make([]Constellation, len(constellations)),
	}
	copy(c.stars, stars)
	copy(c.constellations, constellations)

	for i, s := range c.stars {
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("catalog: duplicate star ID %d", s.ID)
		}
		if err := astro.ValidateStar(s.RAdeg, s.DecDeg); err != nil {
			return nil, fmt.Errorf("catalog: star %d (%s): %w", s.ID, s.Name, err)
		}
		c.byID[s.ID] = i
	}
	return c, nil
}

// Star looks up a star by catalog ID.
func (c *Catalog) Star(id int) (Star, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Star{}, false
	}
	return c.stars[i], true
}

// Stars returns all stars. The returned slice must not be modified.
func (c *Catalog) Stars() []Star {
	return c.stars
}

// Constellations returns all constellations. The returned slice must not
// be modified.
func (c *Catalog) Constellations() []Constellation {
	return c.constellations
}

// Segments returns every constellation segment, flattened.
func (c *Catalog) Segments() []Segment {
	var segs []Segment
	for _, con := range c.constellations {
		segs = append(segs, con.Segments...)
	}
	return segs
}

// Len returns the number of stars.
func (c *Catalog) Len() int {
	return len(c.stars)
}
