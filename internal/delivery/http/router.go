package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/quakeapi/server/internal/service"
)

// SetupRoutes configures all HTTP routes.
// Path constraints reject malformed ids and magnitudes before any handler runs.
func SetupRoutes(app *fiber.App, quakeSvc *service.EarthquakeService, banner string) {
	handler := NewHandler(quakeSvc, banner)

	// Health check
	app.Get("/", handler.Index)

	quakes := app.Group("/earthquakes")
	{
		quakes.Get("/magnitude/:magnitude<float>", handler.GetEarthquakesByMagnitude)
		quakes.Get("/:id<int>", handler.GetEarthquake)
	}
}
