package main

import (
	"context"
	"fmt"
	"os"

	"github.com/ProgrammedByHussain/LandLocks/internal/buildinfo"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/cli"
	"github.com/ProgrammedByHussain/LandLocks/internal/client/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "landlocks: %v\n", err)
		os.Exit(1)
	}

	app.Run(context.Background())
}
