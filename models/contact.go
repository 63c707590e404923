package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactSubmission is a message sent through the public contact form.
type ContactSubmission struct {
	StorageID uint      `json:"-" gorm:"primaryKey;autoIncrement"`
	ID        string    `json:"id" gorm:"type:varchar(36);not null;uniqueIndex"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;not null;index"`
	Phone     *string   `json:"phone" gorm:"type:text"`
	Subject   string    `json:"subject" gorm:"type:text;not null"`
	Service   *string   `json:"service" gorm:"type:text"`
	Message   string    `json:"message" gorm:"type:text;not null"`
	Status    string    `json:"status" gorm:"type:text;not null;index"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;index"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (ContactSubmission) TableName() string {
	return "contacts"
}

func (c *ContactSubmission) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = StatusNew
	}
	return nil
}
