// Package config handles configuration for the development registry server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the registry server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps assets in memory.
//   - ShutdownTimeout: how long a graceful stop may take before
//     in-flight calls are cut off.
type Config struct {
	EndpointAddrGRPC string
	DatabaseDSN      string
	ShutdownTimeout  time.Duration
}

func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then an optional JSON
// file, then command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
