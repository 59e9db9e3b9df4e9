package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"careerpath/api/internal/repositories"
	"careerpath/api/internal/services"
)

// respondServiceError maps service-layer failures onto HTTP responses.
// The error taxonomy keeps the handlers free of pipeline internals: each
// error type carries enough detail to build its response here.
func respondServiceError(c *fiber.Ctx, err error) error {
	var precondition *services.PreconditionError
	if errors.As(err, &precondition) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":       err.Error(),
			"offersCount": precondition.OffersCount,
			"required":    precondition.Required,
		})
	}

	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": validation.Msg,
		})
	}

	if errors.Is(err, repositories.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resource not found",
		})
	}

	var parsing *services.ParsingError
	if errors.As(err, &parsing) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    "Model response could not be parsed",
			"attempts": parsing.Attempts,
		})
	}

	var provider *services.ProviderError
	if errors.As(err, &provider) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Model provider failure",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Internal server error",
	})
}
