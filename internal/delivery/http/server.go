package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/quakeapi/server/internal/service"
)

// Options controls app construction
type Options struct {
	Banner    string
	AccessLog bool
	Quiet     bool // suppress the startup banner
}

// NewApp builds the Fiber app with middleware and routes
func NewApp(quakeSvc *service.EarthquakeService, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Quake API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: ErrorHandler,

		DisableStartupMessage: opts.Quiet,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	SetupRoutes(app, quakeSvc, opts.Banner)

	return app
}
