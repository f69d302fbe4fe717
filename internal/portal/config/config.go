package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local sqlite database.
//   - SessionSecret: HS256 key used to sign the persisted session marker.
//   - SimulatedLatency: artificial pause applied by services to mimic a
//     remote backend. Zero disables it.
type Config struct {
	DatabaseDSN      string
	SessionSecret    string
	SimulatedLatency time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "portal.db"
	c.SessionSecret = "portal-demo-secret"
	c.SimulatedLatency = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
