package config

import (
	"flag"
	"os"
	"time"

	"github.com/ProgrammedByHussain/LandLocks/internal/flagx"
)

// parseFlags overlays cfg with the flags this package knows about. Other
// arguments are filtered out with flagx.FilterArgs. Panics on bad values.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-o", "-t", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the registry server")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local document database")
	fs.StringVar(&cfg.OwnerAddress, "o", cfg.OwnerAddress, "owner wallet address")
	fs.StringVar(&cfg.PersistKey, "k", cfg.PersistKey, "persist key strategy (nft_id or title)")
	mintTimeout := fs.Int("t", int(cfg.MintTimeout.Seconds()), "mint timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.MintTimeout = time.Duration(*mintTimeout) * time.Second
}
