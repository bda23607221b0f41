package main

import (
	"context"
	"log"
	"os"

	"github.com/ProgrammedByHussain/LandLocks/internal/buildinfo"
	"github.com/ProgrammedByHussain/LandLocks/internal/server"
	"github.com/ProgrammedByHussain/LandLocks/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
