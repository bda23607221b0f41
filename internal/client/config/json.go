package config

import (
	"encoding/json"
	"os"

	"github.com/ProgrammedByHussain/LandLocks/internal/flagx"
	"github.com/ProgrammedByHussain/LandLocks/internal/timex"
)

// JsonConfig is the on-disk shape of Config.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	DatabasePath       string         `json:"database_path"`
	OwnerAddress       string         `json:"owner_address"`
	MintTimeout        timex.Duration `json:"mint_timeout"`
	PersistKey         string         `json:"persist_key"`
}

// parseJson overlays cfg with the file named by -c/-config. It does nothing
// when no file is given and panics when the file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.OwnerAddress != "" {
		cfg.OwnerAddress = jc.OwnerAddress
	}
	if jc.MintTimeout.Duration > 0 {
		cfg.MintTimeout = jc.MintTimeout.Duration
	}
	if jc.PersistKey != "" {
		cfg.PersistKey = jc.PersistKey
	}
}
