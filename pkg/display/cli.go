package display

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/config"
	"github.com/kajtavla/kajtavla/pkg/dataloader"
	"github.com/kajtavla/kajtavla/pkg/stats"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "display",
		Usage: "Runs the departure board display",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run the terminal departure display",
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

					display := &Display{
						Generator:     board.NewGenerator(timetable, cfg.MaxVisibleDepartures, cfg.Now),
						Stats:         collector,
						Interval:      cfg.UpdateInterval,
						Out:           os.Stdout,
						HighlightStop: cfg.HighlightStop,
						ReturnStop:    cfg.ReturnStop,
					}

					log.Info().
						Str("interval", cfg.UpdateInterval.String()).
						Int("maxvisible", cfg.MaxVisibleDepartures).
						Msg("Starting departure display")

					ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
					defer stop()

					return display.Run(ctx)
				},
			},
		},
	}
}
