package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NewsletterSubscription is one email address signed up for the newsletter.
// The partial unique index keeps a single active row per normalized email.
type NewsletterSubscription struct {
	StorageID    uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID           string    `json:"id" gorm:"type:varchar(36);not null;uniqueIndex"`
	Email        string    `json:"email" gorm:"type:text;not null;uniqueIndex:idx_newsletter_active_email,where:status = 'active'"`
	Status       string    `json:"status" gorm:"type:text;not null;index"`
	SubscribedAt time.Time `json:"subscribedAt" gorm:"not null;index"`
}

func (NewsletterSubscription) TableName() string {
	return "newsletter"
}

func (s *NewsletterSubscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = StatusActive
	}
	return nil
}
