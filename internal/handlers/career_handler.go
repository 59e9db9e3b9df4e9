package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpath/api/internal/middleware"
	"careerpath/api/internal/models"
	"careerpath/api/internal/services"
)

type CareerHandler struct {
	careerService services.CareerService
}

func NewCareerHandler(careerService services.CareerService) *CareerHandler {
	return &CareerHandler{
		careerService: careerService,
	}
}

// HandleCareerAnalysis handles POST /career-analysis
func (h *CareerHandler) HandleCareerAnalysis(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CareerAnalysisRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	stage, err := services.ParseStageRequest(req.Step, req.SelectedPosition)
	if err != nil {
		return respondServiceError(c, err)
	}

	switch stage.Stage {
	case services.StageDetailed:
		resp, err := h.careerService.DetailedPlan(c.Context(), userID, stage.SelectedPosition)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(resp)
	default:
		resp, err := h.careerService.Overview(c.Context(), userID)
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(resp)
	}
}
