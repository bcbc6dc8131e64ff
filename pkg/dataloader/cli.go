package dataloader

import (
	"github.com/kajtavla/kajtavla/pkg/config"
	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "timetable",
		Usage: "Inspect & validate published timetable documents",
		Subcommands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "load a timetable document and report validation problems",
				ArgsUsage: "[source]",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					source := c.Args().First()
					if source == "" {
						source = cfg.TimetableSource
					}

					document, err := Load(source, cfg.Now())
					if err != nil {
						return err
					}

					log.Info().
						Str("source", source).
						Str("version", document.Metadata.Version).
						Msg("Timetable document is valid")

					return nil
				},
			},
			{
				Name:      "show",
				Usage:     "dump the parsed timetable document",
				ArgsUsage: "[source]",
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					source := c.Args().First()
					if source == "" {
						source = cfg.TimetableSource
					}

					document, err := Load(source, cfg.Now())
					if err != nil {
						return err
					}

					pretty.Println(document)

					return nil
				},
			},
		},
	}
}
