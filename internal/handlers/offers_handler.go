package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"careerpath/api/internal/middleware"
	"careerpath/api/internal/models"
	"careerpath/api/internal/repositories"
	"careerpath/api/internal/services"
)

// minImportedDescriptionLength rejects documents whose extracted text is
// too short to analyse.
const minImportedDescriptionLength = 20

type OffersHandler struct {
	offerRepo repositories.JobOfferRepository
	storage   services.StorageService
	pdfParser services.PDFParserService
}

func NewOffersHandler(
	offerRepo repositories.JobOfferRepository,
	storage services.StorageService,
	pdfParser services.PDFParserService,
) *OffersHandler {
	return &OffersHandler{
		offerRepo: offerRepo,
		storage:   storage,
		pdfParser: pdfParser,
	}
}

// HandleCreateOffer handles POST /job-offers
func (h *OffersHandler) HandleCreateOffer(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	var req models.CreateOfferRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "title is required",
		})
	}

	status := models.OfferStatus(req.Status)
	if req.Status == "" {
		status = models.StatusSaved
	}
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer status",
		})
	}

	offer := &models.JobOffer{
		ID:              uuid.New(),
		UserID:          userID,
		Title:           req.Title,
		Company:         req.Company,
		Status:          status,
		FullDescription: req.FullDescription,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.offerRepo.Create(offer); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create job offer",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(offer)
}

// HandleOfferCount handles GET /job-offers/count
func (h *OffersHandler) HandleOfferCount(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	count, err := h.offerRepo.CountByUser(userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to count job offers",
		})
	}

	return c.JSON(fiber.Map{
		"count": count,
	})
}

// HandleUpdateStatus handles PATCH /job-offers/:id/status
func (h *OffersHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer ID format",
		})
	}

	var req models.UpdateOfferStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	status := models.OfferStatus(req.Status)
	if !status.Valid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer status",
		})
	}

	if err := h.offerRepo.UpdateStatus(offerID, userID, status); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job offer not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update offer status",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"status":  status,
	})
}

// HandleImportDocument handles POST /job-offers/:id/document. The uploaded
// PDF is held only until its text is extracted and stored as the offer's
// description.
func (h *OffersHandler) HandleImportDocument(c *fiber.Ctx) error {
	userID := middleware.UserID(c)
	if userID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Authentication required",
		})
	}

	offerID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid offer ID format",
		})
	}

	if _, err := h.offerRepo.FindByIDForUser(offerID, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Job offer not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load job offer",
		})
	}

	file, err := c.FormFile("document")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "document file is required",
		})
	}

	filename, filePath, err := h.storage.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to save file, only PDF documents are accepted",
		})
	}

	text, err := h.pdfParser.ExtractText(filePath)
	if delErr := h.storage.DeleteFile(filename); delErr != nil {
		log.Printf("⚠️ Failed to delete temporary file %s: %v", filename, delErr)
	}
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Failed to extract text from document",
		})
	}

	description := services.CleanText(text)
	if len(description) < minImportedDescriptionLength {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Extracted text is too short to store as a job description",
		})
	}

	if err := h.offerRepo.UpdateDescription(offerID, userID, description); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to store job description",
		})
	}

	return c.JSON(fiber.Map{
		"success":           true,
		"descriptionLength": len(description),
	})
}
