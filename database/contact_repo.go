package database

import (
	"context"

	"github.com/rpupo63/agency-site-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindRecent returns at most limit submissions, newest first.
func (r *ContactRepo) FindRecent(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	submissions := []models.ContactSubmission{}
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("storage_id DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

// Add inserts a new contact submission into the database
func (r *ContactRepo) Add(ctx context.Context, submission *models.ContactSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

func (r *ContactRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ContactSubmission{}).Count(&count).Error
	return count, err
}
