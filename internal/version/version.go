// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - HTTP scene service, Prometheus metrics, batch rendering
// 0.2.0 - Stereographic projection, constellation catalog loader, TUI time stepping
// 0.1.0 - Initial release: all-sky projection, default catalog, ASCII sky view
