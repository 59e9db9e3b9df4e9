package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"careerpath/api/internal/models"
)

type UserCVRepository interface {
	FindLatestByUser(userID uuid.UUID) (*models.UserCV, error)
}

type userCVRepository struct {
	db *gorm.DB
}

func NewUserCVRepository(db *gorm.DB) UserCVRepository {
	return &userCVRepository{db: db}
}

func (r *userCVRepository) FindLatestByUser(userID uuid.UUID) (*models.UserCV, error) {
	var cv models.UserCV
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&cv).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user CV: %w", err)
	}

	return &cv, nil
}
