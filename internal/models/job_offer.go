package models

import (
	"time"

	"github.com/google/uuid"
)

type OfferStatus string

const (
	StatusSaved      OfferStatus = "saved"
	StatusSend       OfferStatus = "send"
	StatusInterested OfferStatus = "interested"
	StatusContact    OfferStatus = "contact"
	StatusInterview  OfferStatus = "interview"
	StatusOffer      OfferStatus = "offer"
	StatusRejected   OfferStatus = "rejected"
)

func (s OfferStatus) Valid() bool {
	switch s {
	case StatusSaved, StatusSend, StatusInterested, StatusContact, StatusInterview, StatusOffer, StatusRejected:
		return true
	}
	return false
}

type JobOffer struct {
	ID              uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID   `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string      `gorm:"type:text;not null" json:"title"`
	Company         string      `gorm:"type:text" json:"company"`
	Status          OfferStatus `gorm:"not null;default:'saved'" json:"status"`
	FullDescription string      `gorm:"type:text" json:"full_description,omitempty"`
	CreatedAt       time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobOffer) TableName() string {
	return "job_offers"
}
