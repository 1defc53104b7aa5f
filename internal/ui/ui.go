// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-skymap/internal/astro"
	"github.com/litescript/ls-skymap/internal/catalog"
	"github.com/litescript/ls-skymap/internal/locations"
	"github.com/litescript/ls-skymap/internal/render"
	"github.com/litescript/ls-skymap/internal/skymap"
	"github.com/litescript/ls-skymap/internal/version"
)

// Time stepping increments.
const (
	stepFine   = 10 * time.Minute
	stepCoarse = time.Hour
	stepDay    = 24 * time.Hour
)

// clockTickMsg advances the sky in live mode.
type clockTickMsg time.Time

// Model is the root Bubble Tea model. It holds the observer, the
// observation instant and the projection settings, and rebuilds the
// scene whenever any of them change.
type Model struct {
	catalog *catalog.Catalog

	observer astro.Observer
	when     time.Time
	live     bool // track wall clock until the user steps time
	minAlt   float64
	proj     astro.ProjectionConfig

	// Location cycling through the preset list; -1 means a custom
	// observer was supplied on the command line.
	presetKeys []string
	presetIdx  int

	width  int
	height int
	ready  bool

	scene     *skymap.Scene
	diag      skymap.Diagnostics
	buildErr  error
	statusMsg string
}

// New creates the root UI model for the given observer and start time.
func New(cat *catalog.Catalog, obs astro.Observer, when time.Time, live bool, minAlt float64, proj astro.ProjectionConfig) Model {
	m := Model{
		catalog:    cat,
		observer:   obs,
		when:       when.UTC(),
		live:       live,
		minAlt:     minAlt,
		proj:       proj,
		presetKeys: locations.Keys(),
		presetIdx:  -1,
	}

	// Start preset cycling from the current observer when it matches one.
	for i, key := range m.presetKeys {
		if preset, ok := locations.Lookup(key); ok && preset.Name == obs.Name {
			m.presetIdx = i
			break
		}
	}

	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.live {
		return clockTick()
	}
	return nil
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// rebuild recomputes the scene for the current observer and instant.
func (m *Model) rebuild() {
	scene, diag, err := skymap.Build(m.catalog, skymap.Request{
		Observer:   m.observer,
		Time:       m.when,
		MinAltDeg:  m.minAlt,
		Projection: m.proj,
	})
	m.scene = scene
	m.diag = diag
	m.buildErr = err
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit

		case "left", "h":
			m = m.stepTime(-stepFine)
		case "right", "l":
			m = m.stepTime(stepFine)
		case "down", "j":
			m = m.stepTime(-stepCoarse)
		case "up", "k":
			m = m.stepTime(stepCoarse)
		case "pgdown", "J":
			m = m.stepTime(-stepDay)
		case "pgup", "K":
			m = m.stepTime(stepDay)

		case "n":
			// Back to live wall-clock time
			m.when = time.Now().UTC()
			m.live = true
			m.statusMsg = ""
			m.rebuild()
			return m, clockTick()

		case "c":
			m = m.cycleLocation(1)
		case "C":
			m = m.cycleLocation(-1)

		case "p":
			m = m.cycleProjection()

		case "+", "=":
			m = m.adjustMinAlt(5)
		case "-", "_":
			m = m.adjustMinAlt(-5)
		}

	case clockTickMsg:
		if !m.live {
			return m, nil
		}
		m.when = time.Time(msg).UTC()
		m.rebuild()
		return m, clockTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
	}

	return m, nil
}

func (m Model) stepTime(d time.Duration) Model {
	m.when = m.when.Add(d)
	m.live = false
	m.statusMsg = ""
	m.rebuild()
	return m
}

func (m Model) cycleLocation(dir int) Model {
	if len(m.presetKeys) == 0 {
		return m
	}
	m.presetIdx = (m.presetIdx + dir + len(m.presetKeys)) % len(m.presetKeys)
	if obs, ok := locations.Lookup(m.presetKeys[m.presetIdx]); ok {
		m.observer = obs
	}
	m.rebuild()
	return m
}

func (m Model) cycleProjection() Model {
	switch m.proj.Mode {
	case astro.ScaleLinearZenith:
		m.proj.Mode = astro.ScaleStereographic
	default:
		m.proj.Mode = astro.ScaleLinearZenith
	}
	m.rebuild()
	return m
}

func (m Model) adjustMinAlt(delta float64) Model {
	m.minAlt += delta
	if m.minAlt < 0 {
		m.minAlt = 0
	}
	if m.minAlt > 85 {
		m.minAlt = 85
	}
	m.rebuild()
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	// Header and footer take two lines each.
	canvasHeight := m.height - 4
	canvas := m.renderCanvas(canvasHeight)

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(canvas)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderCanvas(height int) string {
	if m.buildErr != nil {
		errorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#E84A27"))
		return errorStyle.Render("ERROR: " + m.buildErr.Error())
	}
	return render.Sky(m.scene, render.Options{
		Width:  m.width,
		Height: height,
		Color:  true,
	})
}

func (m Model) renderHeader() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("135"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#d0c8ff"))

	title := titleStyle.Render("ls-skymap") + dimStyle.Render(" v"+version.Version)
	where := accentStyle.Render(fmt.Sprintf("%s (%.4f, %.4f)", m.observer.Name, m.observer.LatDeg, m.observer.LonDeg))

	clock := m.when.Format("2006-01-02 15:04 UTC")
	if m.live {
		clock += " (live)"
	}

	mode := "linear"
	if m.proj.Mode == astro.ScaleStereographic {
		mode = "stereographic"
	}
	settings := dimStyle.Render(fmt.Sprintf("%s | min alt %.0f°", mode, m.minAlt))

	return fmt.Sprintf("  %s | %s | %s | %s", title, where, dimStyle.Render(clock), settings)
}

func (m Model) renderFooter() string {
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	accentStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))

	var status string
	if m.scene != nil {
		status = accentStyle.Render(fmt.Sprintf("%d stars · %d lines", len(m.scene.Points), len(m.scene.Lines)))
		if m.diag.ClippedSegments > 0 {
			status += dimStyle.Render(fmt.Sprintf(" (%d clipped)", m.diag.ClippedSegments))
		}
	}

	help := dimStyle.Render("←/→: ±10m | ↑/↓: ±1h | PgUp/PgDn: ±1d | n: now | c: location | p: projection | +/-: min alt | q: quit")

	footer := "  " + status + "  " + dimStyle.Render("|") + "  " + help
	if m.statusMsg != "" {
		footer += "\n  " + dimStyle.Render(m.statusMsg)
	}
	return footer
}
