package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/kajtavla/kajtavla/pkg/api"
	"github.com/kajtavla/kajtavla/pkg/dataloader"
	"github.com/kajtavla/kajtavla/pkg/display"

	_ "time/tzdata"
)

func main() {
	if os.Getenv("KAJTAVLA_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	if os.Getenv("KAJTAVLA_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	app := &cli.App{
		Name:        "kajtavla",
		Description: "Single binary of truth for Kajtavla - runs all the services",

		Commands: []*cli.Command{
			api.RegisterCLI(),
			display.RegisterCLI(),
			dataloader.RegisterCLI(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Send()
	}
}
