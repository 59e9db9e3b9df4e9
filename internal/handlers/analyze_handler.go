package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpath/api/internal/middleware"
	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
	"careerpath/api/internal/services"
)

type AnalyzeHandler struct {
	analysisService services.JobAnalysisService
}

func NewAnalyzeHandler(analysisService services.JobAnalysisService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analysisService: analysisService,
	}
}

// HandleJobAnalyze handles POST /job-analyze
func (h *AnalyzeHandler) HandleJobAnalyze(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.JobAnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobOfferID == "" || req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jobOfferId and jobDescription are required",
		})
	}

	offerID, err := uuid.Parse(req.JobOfferID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid jobOfferId format",
		})
	}

	resp, err := h.analysisService.AnalyzeOffer(c.Context(), userID, offerID, req.JobDescription)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Job offer not found or access denied",
			})
		}
		return respondServiceError(c, err)
	}

	return c.JSON(resp)
}
