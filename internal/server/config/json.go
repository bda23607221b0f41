package config

import (
	"encoding/json"
	"os"

	"github.com/ProgrammedByHussain/LandLocks/internal/flagx"
	"github.com/ProgrammedByHussain/LandLocks/internal/timex"
)

// JsonConfig is the on-disk shape of the server Config.
type JsonConfig struct {
	EndpointAddrGRPC string         `json:"endpoint_addr_grpc"`
	DatabaseDSN      string         `json:"database_dsn"`
	ShutdownTimeout  timex.Duration `json:"shutdown_timeout"`
}

// parseJson loads the file named by -c/-config into config. Keys that are
// present replace the current values; a present but empty database_dsn
// selects in-memory storage. Read or decode errors panic.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(file, &raw); err != nil {
		panic(err)
	}
	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if _, ok := raw["endpoint_addr_grpc"]; ok {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if _, ok := raw["database_dsn"]; ok {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if _, ok := raw["shutdown_timeout"]; ok {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
