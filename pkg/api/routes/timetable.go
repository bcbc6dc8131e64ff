package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/kajtavla/kajtavla/pkg/btdf"
	"github.com/liip/sheriff"
)

type TimetableEnv struct {
	Timetable *btdf.TimetableDocument
}

func TimetableRouter(router fiber.Router, env *TimetableEnv) {
	router.Get("/", env.getTimetable)
	router.Get("/routes/:route", env.getTimetableRoute)
}

func (env *TimetableEnv) getTimetable(c *fiber.Ctx) error {
	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, env.Timetable)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce TimetableDocument",
		})
	}

	return c.JSON(reduced)
}

func (env *TimetableEnv) getTimetableRoute(c *fiber.Ctx) error {
	route := env.Timetable.GetRoute(c.Params("route"))

	if route == nil {
		c.SendStatus(fiber.StatusNotFound)
		return c.JSON(fiber.Map{
			"error": "Could not find Route matching Route Identifier",
		})
	}

	reduced, err := sheriff.Marshal(&sheriff.Options{
		Groups: []string{"basic"},
	}, route)

	if err != nil {
		c.SendStatus(fiber.StatusInternalServerError)
		return c.JSON(fiber.Map{
			"error": "Sheriff could not reduce Route",
		})
	}

	return c.JSON(reduced)
}
