package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpath/api/internal/models"
)

// ErrNotFound is returned when a record does not exist or belongs to a
// different user. Callers treat the two cases identically.
var ErrNotFound = errors.New("record not found")

type JobOfferRepository interface {
	Create(offer *models.JobOffer) error
	FindByIDForUser(id, userID uuid.UUID) (*models.JobOffer, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]models.JobOffer, error)
	CountByUser(userID uuid.UUID) (int64, error)
	UpdateStatus(id, userID uuid.UUID, status models.OfferStatus) error
	UpdateDescription(id, userID uuid.UUID, description string) error
}

type jobOfferRepository struct {
	db *gorm.DB
}

func NewJobOfferRepository(db *gorm.DB) JobOfferRepository {
	return &jobOfferRepository{db: db}
}

func (r *jobOfferRepository) Create(offer *models.JobOffer) error {
	if err := r.db.Create(offer).Error; err != nil {
		return fmt.Errorf("failed to create job offer: %w", err)
	}
	return nil
}

func (r *jobOfferRepository) FindByIDForUser(id, userID uuid.UUID) (*models.JobOffer, error) {
	var offer models.JobOffer
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&offer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find job offer: %w", err)
	}
	return &offer, nil
}

func (r *jobOfferRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]models.JobOffer, error) {
	var offers []models.JobOffer
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&offers).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find job offers: %w", err)
	}

	return offers, nil
}

func (r *jobOfferRepository) CountByUser(userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.Model(&models.JobOffer{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count job offers: %w", err)
	}
	return count, nil
}

func (r *jobOfferRepository) UpdateStatus(id, userID uuid.UUID, status models.OfferStatus) error {
	result := r.db.Model(&models.JobOffer{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *jobOfferRepository) UpdateDescription(id, userID uuid.UUID, description string) error {
	result := r.db.Model(&models.JobOffer{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"full_description": description,
			"updated_at":       time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update description: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
