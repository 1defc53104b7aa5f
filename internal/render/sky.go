// Package render draws a projected sky scene as a character-cell disk.
package render

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/skymap"
)

const (
	// Star glyphs by magnitude
	glyphStarBright  = '✶' // mag < 1.5
	glyphStarMedium  = '✸' // mag 1.5-3.0
	glyphStarDim     = '·' // mag 3.0-4.0
	glyphStarVeryDim = '·' // mag > 4.0

	// Constellation line segments
	glyphLine = '·'

	// Star colors (grayscale, brighter stars brighter)
	colorStarBright  = "255"
	colorStarMedium  = "250"
	colorStarDim     = "244"
	colorStarVeryDim = "240"

	colorLine     = "60"  // muted purple
	colorRim      = "60"  // same tint as the lines
	colorCircle   = "238" // faint altitude rings
	colorCardinal = "252"
)

// Options controls the rendered output.
type Options struct {
	Width  int  // canvas width in cells
	Height int  // canvas height in cells
	Color  bool // emit ANSI color via lipgloss
}

// DefaultOptions fits a disk into a typical 80x24 terminal.
func DefaultOptions() Options {
	return Options{Width: 72, Height: 24, Color: true}
}

// canvas is a character grid with a per-cell color layer.
type canvas struct {
	width  int
	height int
	cells  [][]rune
	colors [][]lipgloss.Color

	// disk geometry in cell coordinates
	cx, cy float64
	rx, ry float64
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	c.cells = make([][]rune, height)
	c.colors = make([][]lipgloss.Color, height)
	for y := 0; y < height; y++ {
		c.cells[y] = make([]rune, width)
		c.colors[y] = make([]lipgloss.Color, width)
		for x := 0; x < width; x++ {
			c.cells[y][x] = ' '
		}
	}

	// Terminal cells are roughly twice as tall as wide, so the disk
	// spans twice as many columns as rows to look circular.
	c.cx = float64(width-1) / 2
	c.cy = float64(height-1) / 2
	c.ry = float64(height-1)/2 - 1
	c.rx = math.Min(2*c.ry, float64(width-1)/2-1)
	if c.rx < 1 {
		c.rx = 1
	}
	if c.ry < 1 {
		c.ry = 1
	}
	return c
}

// toCell maps unit-disk coordinates (x east, y north) to grid cells.
// Rows grow downward, so north lands at the top of the canvas.
func (c *canvas) toCell(x, y float64) (int, int) {
	col := int(math.Round(c.cx + x*c.rx))
	row := int(math.Round(c.cy - y*c.ry))
	return col, row
}

func (c *canvas) plot(col, row int, r rune, color lipgloss.Color) {
	if col < 0 || col >= c.width || row < 0 || row >= c.height {
		return
	}
	c.cells[row][col] = r
	c.colors[row][col] = color
}

// drawRing traces a circle of the given unit-disk radius.
func (c *canvas) drawRing(radius float64, r rune, color lipgloss.Color) {
	// Enough steps that adjacent samples land on neighboring cells.
	steps := int(4 * math.Max(c.rx, c.ry))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		col, row := c.toCell(radius*math.Cos(theta), radius*math.Sin(theta))
		c.plot(col, row, r, color)
	}
}

// drawSegment rasterizes a line between two unit-disk points, skipping
// cells already occupied by a star glyph so lines never cover stars.
func (c *canvas) drawSegment(x1, y1, x2, y2 float64, r rune, color lipgloss.Color) {
	c1, r1 := c.toCell(x1, y1)
	c2, r2 := c.toCell(x2, y2)

	steps := abs(c2-c1)
	if dy := abs(r2 - r1); dy > steps {
		steps = dy
	}
	if steps == 0 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		col := int(math.Round(float64(c1) + t*float64(c2-c1)))
		row := int(math.Round(float64(r1) + t*float64(r2-r1)))
		if col < 0 || col >= c.width || row < 0 || row >= c.height {
			continue
		}
		if c.cells[row][col] != ' ' {
			continue
		}
		c.plot(col, row, r, color)
	}
}

func (c *canvas) render(color bool) string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if color {
			for x := 0; x < c.width; x++ {
				if c.cells[y][x] == ' ' || c.colors[y][x] == "" {
					b.WriteRune(c.cells[y][x])
					continue
				}
				style := lipgloss.NewStyle().Foreground(c.colors[y][x])
				b.WriteString(style.Render(string(c.cells[y][x])))
			}
		} else {
			b.WriteString(strings.TrimRight(string(c.cells[y]), " "))
		}
		if y < c.height-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// Sky renders the scene as an all-sky disk: zenith at the center, the
// horizon at the rim, cardinal letters on the rim.
func Sky(scene *skymap.Scene, opts Options) string {
	if opts.Width < 20 || opts.Height < 10 {
		return "sky view requires a larger canvas"
	}

	c := newCanvas(opts.Width, opts.Height)

	// Altitude rings, innermost last so the rim wins ties.
	for _, circ := range scene.Circles {
		glyph := '·'
		color := lipgloss.Color(colorCircle)
		if circ.Radius >= 1 {
			glyph = '─'
			color = colorRim
		}
		c.drawRing(circ.Radius, glyph, color)
	}

	// Constellation segments under the stars.
	for _, ln := range scene.Lines {
		c.drawSegment(ln.X1, ln.Y1, ln.X2, ln.Y2, glyphLine, colorLine)
	}

	// Stars on top, dimmest first so bright stars win shared cells.
	points := make([]skymap.Point, len(scene.Points))
	copy(points, scene.Points)
	sort.Slice(points, func(i, j int) bool { return points[i].Mag > points[j].Mag })
	for _, pt := range points {
		glyph, color := starGlyph(pt.Mag)
		col, row := c.toCell(pt.X, pt.Y)
		c.plot(col, row, glyph, color)
	}

	// Cardinal letters overwrite the rim at their anchors.
	for _, anchor := range scene.Cardinals {
		if anchor.Text == "" {
			continue
		}
		col, row := c.toCell(anchor.X, anchor.Y)
		c.plot(col, row, rune(anchor.Text[0]), colorCardinal)
	}

	return c.render(opts.Color)
}

// starGlyph returns the glyph and color for a star by magnitude.
// Brighter stars (lower magnitude) get more prominent symbols.
func starGlyph(mag float64) (rune, lipgloss.Color) {
	switch {
	case mag < 1.5:
		return glyphStarBright, colorStarBright
	case mag < 3.0:
		return glyphStarMedium, colorStarMedium
	case mag < 4.0:
		return glyphStarDim, colorStarDim
	default:
		return glyphStarVeryDim, colorStarVeryDim
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
