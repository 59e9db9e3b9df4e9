package models

import (
	"time"

	"github.com/google/uuid"
)

// RequirementSet is the six-category extraction of a job offer's stated
// requirements. Every category holds at least one entry; categories the
// analysis said nothing about carry the "Brak informacji" sentinel.
type RequirementSet struct {
	Skills            []string `json:"skills"`
	Technologies      []string `json:"technologies"`
	Experience        []string `json:"experience"`
	Education         []string `json:"education"`
	Languages         []string `json:"languages"`
	OtherRequirements []string `json:"other_requirements"`
}

type JobAnalysisResult struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobOfferID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"job_offer_id"`
	Skills            []string  `gorm:"serializer:json" json:"skills"`
	Technologies      []string  `gorm:"serializer:json" json:"technologies"`
	Experience        []string  `gorm:"serializer:json" json:"experience"`
	Education         []string  `gorm:"serializer:json" json:"education"`
	Languages         []string  `gorm:"serializer:json" json:"languages"`
	OtherRequirements []string  `gorm:"serializer:json" json:"other_requirements"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (JobAnalysisResult) TableName() string {
	return "job_analysis_results"
}

func (a *JobAnalysisResult) RequirementSet() RequirementSet {
	return RequirementSet{
		Skills:            a.Skills,
		Technologies:      a.Technologies,
		Experience:        a.Experience,
		Education:         a.Education,
		Languages:         a.Languages,
		OtherRequirements: a.OtherRequirements,
	}
}
