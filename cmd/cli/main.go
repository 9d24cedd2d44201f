package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/clientnotes/internal/buildinfo"
	"github.com/dmitrijs2005/clientnotes/internal/cli"
	"github.com/dmitrijs2005/clientnotes/internal/config"
	"github.com/dmitrijs2005/clientnotes/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
