package config

import "time"

// Config holds runtime settings for the Tinylink CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the backend HTTP API.
//   - PollInterval: how often the link list is refreshed in the background.
//   - DatabasePath: location of the local sqlite database.
//   - LogFormat: "pretty" (console) or "json".
type Config struct {
	ServerEndpointAddr string
	PollInterval       time.Duration
	DatabasePath       string
	LogFormat          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://localhost:8080"
	c.PollInterval = 5 * time.Second
	c.DatabasePath = "tinylink.db"
	c.LogFormat = "pretty"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
