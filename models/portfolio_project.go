package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectResult is one headline number on a case study, e.g. {"200%", "Increase in Sales"}.
type ProjectResult struct {
	Metric string `json:"metric"`
	Label  string `json:"label"`
}

// PortfolioProject is a case study shown on the portfolio page, sorted by Order.
type PortfolioProject struct {
	StorageID    uint                               `json:"-" gorm:"primaryKey;autoIncrement"`
	ID           string                             `json:"id" gorm:"type:varchar(36);not null;uniqueIndex"`
	Slug         string                             `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Title        string                             `json:"title" gorm:"type:text;not null"`
	Category     string                             `json:"category" gorm:"type:text"`
	Client       string                             `json:"client,omitempty" gorm:"type:text"`
	Image        *string                            `json:"image,omitempty" gorm:"type:text"`
	Problem      string                             `json:"problem" gorm:"type:text"`
	Solution     string                             `json:"solution" gorm:"type:text"`
	Results      datatypes.JSONSlice[ProjectResult] `json:"results"`
	Technologies datatypes.JSONSlice[string]        `json:"technologies"`
	Featured     bool                               `json:"featured" gorm:"not null;default:false"`
	Order        int                                `json:"order" gorm:"column:sort_order;not null;default:0;index"`
	Status       string                             `json:"status" gorm:"type:text;not null;index"`
}

func (PortfolioProject) TableName() string {
	return "portfolio"
}

func (p *PortfolioProject) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Results == nil {
		p.Results = datatypes.JSONSlice[ProjectResult]{}
	}
	if p.Technologies == nil {
		p.Technologies = datatypes.JSONSlice[string]{}
	}
	return nil
}

func (p PortfolioProject) IsPublished() bool {
	return p.Status == StatusPublished
}
