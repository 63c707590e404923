package database

import (
	"context"

	"github.com/rpupo63/agency-site-backend/models"
	"gorm.io/gorm"
)

type PortfolioRepo struct {
	db *gorm.DB
}

func NewPortfolioRepo(db *gorm.DB) *PortfolioRepo {
	return &PortfolioRepo{db}
}

// FindPublished returns every published project in ascending display order.
// Projects sharing an order value keep their creation order.
func (r *PortfolioRepo) FindPublished(ctx context.Context) ([]models.PortfolioProject, error) {
	projects := []models.PortfolioProject{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Order("sort_order ASC").
		Order("storage_id ASC").
		Find(&projects).Error
	return projects, err
}

// Add inserts a new project into the database
func (r *PortfolioRepo) Add(ctx context.Context, project *models.PortfolioProject) error {
	return r.db.WithContext(ctx).Create(project).Error
}
