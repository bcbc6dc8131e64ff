package api

import (
	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/config"
	"github.com/kajtavla/kajtavla/pkg/dataloader"
	"github.com/kajtavla/kajtavla/pkg/redis_client"
	"github.com/kajtavla/kajtavla/pkg/stats"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the departure board web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					cfg, err := config.Load()
					if err != nil {
						return err
					}

					timetable, err := dataloader.Load(cfg.TimetableSource, cfg.Now())
					if err != nil {
						return err
					}

					collector := stats.NewCollector(cfg.UpdateInterval, cfg.MaxVisibleDepartures)
					if cfg.MetricsAddress != "" {
						collector.Serve(cfg.MetricsAddress)
					}

					var boardCache *board.Cache
					if cfg.RedisAddress != "" {
						if err := redis_client.Connect(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDatabase); err != nil {
							log.Fatal().Err(err).Msg("Failed to connect to Redis")
						}
						boardCache = board.NewCache(cfg.UpdateInterval)
					}

					generator := board.NewGenerator(timetable, cfg.MaxVisibleDepartures, cfg.Now)

					return SetupServer(c.String("listen"), &ServerEnv{
						Timetable:            timetable,
						Generator:            generator,
						Cache:                boardCache,
						Stats:                collector,
						DefaultHighlightStop: cfg.HighlightStop,
					})
				},
			},
		},
	}
}
