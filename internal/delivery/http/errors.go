package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler renders every error as JSON. Messages of non-fiber errors are
// never sent to the client.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
