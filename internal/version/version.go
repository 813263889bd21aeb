// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - JPL Horizons spacecraft sources, Nominatim geocoding, TUI chart
// 0.1.0 - Initial release: crossing-time search, rise/set/meridian queries,
//         solar-system bodies, source catalog, headless elevation trace
