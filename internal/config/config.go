package config

import "time"

// Config holds runtime settings for the learnkeeper client.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite database backing the
//     key-value store.
//   - StoreSecret: secret the at-rest encryption key is derived from; an
//     empty value disables the encryption wrapper (useful in tests).
//   - GrantSecret: secret used to sign and verify premium entitlement
//     grants. Local-only: there is no billing backend.
//   - GrantTTL: how long an issued entitlement grant stays valid.
//   - LoginDelay: simulated backend latency applied to login. The original
//     client faked a network round trip; keeping it configurable lets tests
//     run instantly.
type Config struct {
	DatabaseDSN string
	StoreSecret string
	GrantSecret string
	GrantTTL    time.Duration
	LoginDelay  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "learnkeeper.db"
	c.StoreSecret = "learnkeeper-local"
	c.GrantSecret = "learnkeeper-local"
	c.GrantTTL = 30 * 24 * time.Hour
	c.LoginDelay = time.Second
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
