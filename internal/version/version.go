// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - TOML body catalog with hot reload, TUI body detail view
// 0.2.0 - Martian timezones and wall clock, Earth reference body
// 0.1.0 - Initial release: anomaly engine, solar longitude, date composer, CLI
