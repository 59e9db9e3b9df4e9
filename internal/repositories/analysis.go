package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpath/api/internal/models"
)

type AnalysisRepository interface {
	Create(result *models.JobAnalysisResult) error
	FindByOfferID(offerID uuid.UUID) (*models.JobAnalysisResult, error)
	FindByOfferIDs(offerIDs []uuid.UUID) ([]models.JobAnalysisResult, error)
}

type analysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

func (r *analysisRepository) Create(result *models.JobAnalysisResult) error {
	if err := r.db.Create(result).Error; err != nil {
		return fmt.Errorf("failed to create analysis result: %w", err)
	}
	return nil
}

func (r *analysisRepository) FindByOfferID(offerID uuid.UUID) (*models.JobAnalysisResult, error) {
	var analysis models.JobAnalysisResult
	if err := r.db.Where("job_offer_id = ?", offerID).First(&analysis).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find analysis result: %w", err)
	}
	return &analysis, nil
}

func (r *analysisRepository) FindByOfferIDs(offerIDs []uuid.UUID) ([]models.JobAnalysisResult, error) {
	if len(offerIDs) == 0 {
		return nil, nil
	}

	var analyses []models.JobAnalysisResult
	if err := r.db.Where("job_offer_id IN ?", offerIDs).Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to find analysis results: %w", err)
	}

	return analyses, nil
}
