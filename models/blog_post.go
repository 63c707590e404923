package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BlogPost is an article shown on the blog. Only published posts leave the backend.
type BlogPost struct {
	StorageID   uint                        `json:"-" gorm:"primaryKey;autoIncrement"`
	ID          string                      `json:"id" gorm:"type:varchar(36);not null;uniqueIndex"`
	Slug        string                      `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title       string                      `json:"title" gorm:"type:text;not null"`
	Excerpt     string                      `json:"excerpt" gorm:"type:text"`
	Content     string                      `json:"content" gorm:"type:text"`
	Image       *string                     `json:"image,omitempty" gorm:"type:text"`
	Category    string                      `json:"category" gorm:"type:text"`
	Author      string                      `json:"author" gorm:"type:text"`
	Date        string                      `json:"date" gorm:"type:text"`
	ReadTime    string                      `json:"readTime" gorm:"type:text"`
	Tags        datatypes.JSONSlice[string] `json:"tags"`
	Featured    bool                        `json:"featured" gorm:"not null;default:false"`
	Status      string                      `json:"status" gorm:"type:text;not null;index"`
	PublishedAt *time.Time                  `json:"publishedAt,omitempty" gorm:"index"`
}

func (BlogPost) TableName() string {
	return "blog_posts"
}

func (p *BlogPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Tags == nil {
		p.Tags = datatypes.JSONSlice[string]{}
	}
	return nil
}

func (p BlogPost) IsPublished() bool {
	return p.Status == StatusPublished
}
