// Package config assembles the CLI's runtime settings from, in order of
// increasing precedence: built-in defaults, a JSON file (-c/-config),
// environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the AccountKeeper CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the account service.
//   - RequestTimeout: fixed per-request timeout; the only bound on how
//     long a call waits.
//   - DatabasePath: sqlite file holding the persisted session.
type Config struct {
	ServerBaseURL  string        `env:"SERVER_BASE_URL"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	DatabasePath   string        `env:"DATABASE_PATH"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:3000"
	c.RequestTimeout = 20 * time.Second
	c.DatabasePath = "account.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), environment variables, and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
