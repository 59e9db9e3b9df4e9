package handlers

import (
	"github.com/gofiber/fiber/v2"

	"careerpath/api/internal/models"
	"careerpath/api/internal/services"
)

type StatsHandler struct {
	statsService services.PopularStatsService
}

func NewStatsHandler(statsService services.PopularStatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// HandlePopularStats handles POST /popular-stats. The stats pipeline
// degrades to empty sections instead of failing, so this endpoint only
// rejects unparseable payloads.
func (h *StatsHandler) HandlePopularStats(c *fiber.Ctx) error {
	var req models.PopularStatsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	resp, err := h.statsService.PopularStats(c.Context(), req)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(resp)
}
