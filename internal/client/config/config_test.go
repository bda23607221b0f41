package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, "landlocks.db", c.DatabasePath)
	assert.Empty(t, c.OwnerAddress)
	assert.Equal(t, 30*time.Second, c.MintTimeout)
	assert.Equal(t, "nft_id", c.PersistKey)
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"owner_address":        "0xjson",
	})
	os.Args = []string{"landlocks", "-c", path, "-o", "0xflag"}

	cfg := LoadConfig()
	require.NotNil(t, cfg)
	assert.Equal(t, "json:1", cfg.ServerEndpointAddr)
	assert.Equal(t, "0xflag", cfg.OwnerAddress)
	assert.Equal(t, "landlocks.db", cfg.DatabasePath)
}
