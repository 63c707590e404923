package database

import (
	"context"
	"errors"

	"github.com/rpupo63/agency-site-backend/models"
	"gorm.io/gorm"
)

type BlogPostRepo struct {
	db *gorm.DB
}

func NewBlogPostRepo(db *gorm.DB) *BlogPostRepo {
	return &BlogPostRepo{db}
}

// FindPublished returns every published post, most recently published first.
// Posts without a publish time sort last.
func (r *BlogPostRepo) FindPublished(ctx context.Context) ([]models.BlogPost, error) {
	posts := []models.BlogPost{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusPublished).
		Order("published_at DESC NULLS LAST").
		Order("storage_id DESC").
		Find(&posts).Error
	return posts, err
}

// FindPublishedBySlug returns the published post with the given slug, or nil
// when no such post exists or it is not published.
func (r *BlogPostRepo) FindPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.WithContext(ctx).
		Where("slug = ? AND status = ?", slug, models.StatusPublished).
		Take(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Add inserts a new blog post into the database
func (r *BlogPostRepo) Add(ctx context.Context, post *models.BlogPost) error {
	return r.db.WithContext(ctx).Create(post).Error
}
