package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/stats"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
)

// BoardEnv carries everything the board routes need. No globals - the
// server wires one up at startup.
type BoardEnv struct {
	Generator *board.Generator
	Cache     *board.Cache // nil when no redis is configured
	Stats     *stats.Collector

	DefaultHighlightStop string
}

func BoardRouter(router fiber.Router, env *BoardEnv) {
	router.Get("/", env.getBoard)
	router.Get("/:route", env.getRouteBoard)
}

func (env *BoardEnv) getBoard(c *fiber.Ctx) error {
	document := env.currentBoard(c)
	document = annotateHighlight(document, c.Query("highlight", env.DefaultHighlightStop))

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, document)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce BoardDocument",
		})
	}

	return c.JSON(reduced)
}

func (env *BoardEnv) getRouteBoard(c *fiber.Ctx) error {
	routeID := c.Params("route")

	document := env.currentBoard(c)
	document = annotateHighlight(document, c.Query("highlight", env.DefaultHighlightStop))

	for _, routeBoard := range document.Routes {
		if routeBoard.RouteID != routeID {
			continue
		}

		reduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: []string{"basic"},
		}, routeBoard)

		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": "Sheriff could not reduce RouteBoard",
			})
		}

		return c.JSON(reduced)
	}

	c.SendStatus(fiber.StatusNotFound)
	return c.JSON(fiber.Map{
		"error": "Could not find Route matching Route Identifier",
	})
}

// currentBoard returns this minute's board, from the shared cache when one
// is configured, otherwise freshly computed.
func (env *BoardEnv) currentBoard(c *fiber.Ctx) *board.BoardDocument {
	now := env.Generator.Clock()
	key := board.Key(env.Generator.Timetable.Metadata.Version, now)

	if env.Cache != nil {
		if document, found := env.Cache.Get(c.UserContext(), key); found {
			env.Stats.CacheHits.Inc()
			return document
		}
		env.Stats.CacheMisses.Inc()
	}

	startTime := time.Now()
	document := env.Generator.Generate()

	env.Stats.BoardGenerations.Inc()
	env.Stats.BoardDuration.Observe(time.Since(startTime).Seconds())
	env.Stats.RecordScheduleType(string(document.ScheduleType))

	if env.Cache != nil {
		env.Cache.Put(c.UserContext(), key, document)
	}

	return document
}

// annotateHighlight marks the requested stop on a deep copy, so the cached
// document itself is never mutated per request.
func annotateHighlight(document *board.BoardDocument, highlight string) *board.BoardDocument {
	if highlight == "" {
		return document
	}

	var annotated board.BoardDocument
	if err := copier.CopyWithOption(&annotated, document, copier.Option{DeepCopy: true}); err != nil {
		log.Error().Err(err).Msg("Failed to copy board for highlighting")
		return document
	}

	for routeIndex := range annotated.Routes {
		for stopIndex := range annotated.Routes[routeIndex].Stops {
			stopBoard := &annotated.Routes[routeIndex].Stops[stopIndex]
			stopBoard.Highlighted = stopBoard.Stop == highlight
		}
	}

	return &annotated
}
