package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

// internal JSON shapes - kept unexported so the file format can evolve
// independently of the in-memory model.
type catalogJSON struct {
	Stars          []starJSON          `json:"stars"`
	Constellations []constellationJSON `json:"constellations"`
}

type starJSON struct {
	ID   int     `json:"id"`
	Name string  `json:"name,omitempty"`
	RA   float64 `json:"ra"`
	Dec  float64 `json:"dec"`
	Mag  float64 `json:"mag"`
}

type constellationJSON struct {
	Name  string   `json:"name"`
	Lines [][2]int `json:"lines"`
}

// Load reads a JSON catalog from r and builds a Catalog from it.
//
// It fails on JSON/structural errors and on invalid star data (duplicate
// IDs, out-of-range coordinates). Constellation lines naming unknown star
// IDs load fine; they are dropped at scene assembly, the same policy as
// with the embedded catalog.
func Load(r io.Reader) (*Catalog, error) {
	var payload catalogJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("catalog: decode failed: %w", err)
	}

	stars := make([]Star, 0, len(payload.Stars))
	for _, s := range payload.Stars {
		stars = append(stars, Star{
			ID:     s.ID,
			Name:   s.Name,
			RAdeg:  s.RA,
			DecDeg: s.Dec,
			Mag:    s.Mag,
		})
	}

	constellations := make([]Constellation, 0, len(payload.Constellations))
	for _, con := range payload.Constellations {
		segs := make([]Segment, 0, len(con.Lines))
		for _, line := range con.Lines {
			segs = append(segs, Segment{From: line[0], To: line[1]})
		}
		constellations = append(constellations, Constellation{Name: con.Name, Segments: segs})
	}

	return New(stars, constellations)
}
