package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kajtavla/kajtavla/pkg/api/routes"
	"github.com/kajtavla/kajtavla/pkg/board"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/kajtavla/kajtavla/pkg/http_server"
	"github.com/kajtavla/kajtavla/pkg/stats"
)

type ServerEnv struct {
	Timetable *btdf.TimetableDocument
	Generator *board.Generator
	Cache     *board.Cache
	Stats     *stats.Collector

	DefaultHighlightStop string
}

func NewServer(env *ServerEnv) *fiber.App {
	webApp := fiber.New()
	webApp.Use(http_server.NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.BoardRouter(group.Group("/board"), &routes.BoardEnv{
		Generator:            env.Generator,
		Cache:                env.Cache,
		Stats:                env.Stats,
		DefaultHighlightStop: env.DefaultHighlightStop,
	})

	routes.TimetableRouter(group.Group("/timetable"), &routes.TimetableEnv{
		Timetable: env.Timetable,
	})

	return webApp
}

func SetupServer(listen string, env *ServerEnv) error {
	return NewServer(env).Listen(listen)
}
