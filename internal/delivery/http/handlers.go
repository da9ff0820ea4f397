package http

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/quakeapi/server/internal/domain"
	"github.com/quakeapi/server/internal/service"
)

// Handler contains all HTTP handlers
type Handler struct {
	quakeSvc *service.EarthquakeService
	banner   string
}

// NewHandler creates a new handler
func NewHandler(quakeSvc *service.EarthquakeService, banner string) *Handler {
	return &Handler{
		quakeSvc: quakeSvc,
		banner:   banner,
	}
}

// Index confirms the API is running
func (h *Handler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": h.banner,
	})
}

// GetEarthquake returns a single earthquake by id
func (h *Handler) GetEarthquake(c *fiber.Ctx) error {
	ctx := c.Context()

	id, err := c.ParamsInt("id")
	if err != nil {
		return fiber.ErrNotFound
	}

	quake, err := h.quakeSvc.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": fmt.Sprintf("Earthquake %d not found.", id),
		})
	}
	if err != nil {
		log.Printf("Failed to fetch earthquake %d: %v", id, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch earthquake data")
	}

	return c.JSON(quake)
}

// GetEarthquakesByMagnitude returns every earthquake at or above the path magnitude
func (h *Handler) GetEarthquakesByMagnitude(c *fiber.Ctx) error {
	ctx := c.Context()

	magnitude, err := strconv.ParseFloat(c.Params("magnitude"), 64)
	if err != nil {
		return fiber.ErrNotFound
	}

	list, err := h.quakeSvc.GetByMinMagnitude(ctx, magnitude)
	if err != nil {
		log.Printf("Failed to fetch earthquakes with magnitude >= %v: %v", magnitude, err)
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch earthquake data")
	}

	return c.JSON(list)
}
