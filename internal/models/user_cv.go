package models

import (
	"time"

	"github.com/google/uuid"
)

type UserCV struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"type:text" json:"name"`
	CVData    map[string]any `gorm:"serializer:json" json:"cv_data"`
	CreatedAt time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (UserCV) TableName() string {
	return "user_cvs"
}

// UserProfile is the read-only slice of CV data the planning prompts embed.
type UserProfile struct {
	PersonalInfo any `json:"personalInfo"`
	Experience   any `json:"experience"`
	Education    any `json:"education"`
	Skills       any `json:"skills"`
	Languages    any `json:"languages"`
}

func BuildUserProfile(cvData map[string]any) UserProfile {
	pick := func(key string, fallback any) any {
		if cvData == nil {
			return fallback
		}
		if v, ok := cvData[key]; ok && v != nil {
			return v
		}
		return fallback
	}

	return UserProfile{
		PersonalInfo: pick("personalInfo", map[string]any{}),
		Experience:   pick("experience", []any{}),
		Education:    pick("education", []any{}),
		Skills:       pick("skills", []any{}),
		Languages:    pick("languages", []any{}),
	}
}
