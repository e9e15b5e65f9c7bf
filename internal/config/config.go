// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// SnapshotPath is the default file used by roster save/load.
	SnapshotPath string `koanf:"snapshot_path"`

	// CatalogPath points to an optional YAML skill/role catalog.
	// Empty means the built-in catalog is used.
	CatalogPath string `koanf:"catalog_path"`

	// MaxRosterSize caps the number of players held in memory.
	// Zero or negative means unbounded.
	MaxRosterSize int `koanf:"max_roster_size"`
}

// New creates a Config with defaults.
func New() *Config {
	c := &Config{
		LogLevel:      "info",
		Addr:          ":9080",
		SnapshotPath:  "roster.json",
		CatalogPath:   "",
		MaxRosterSize: 200,
	}
	return c
}
