package config

import "time"

// Config holds runtime settings for the LandLocks CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the registry gRPC endpoint.
//   - DatabasePath: SQLite file holding persisted documents.
//   - OwnerAddress: wallet address assets are minted to, may be set later
//     from the REPL.
//   - MintTimeout: upper bound for one mint round trip.
//   - PersistKey: "nft_id" or "title", see services.KeyStrategy.
type Config struct {
	ServerEndpointAddr string
	DatabasePath       string
	OwnerAddress       string
	MintTimeout        time.Duration
	PersistKey         string
}

func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.DatabasePath = "landlocks.db"
	c.OwnerAddress = ""
	c.MintTimeout = 30 * time.Second
	c.PersistKey = "nft_id"
}

// LoadConfig applies defaults, then the JSON file (if any), then flags.
// Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
