package database

import (
	"context"
	"errors"

	"github.com/rpupo63/agency-site-backend/models"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type NewsletterRepo struct {
	db *gorm.DB
}

func NewNewsletterRepo(db *gorm.DB) *NewsletterRepo {
	return &NewsletterRepo{db}
}

// FindActiveByEmail returns the active subscription for an already normalized
// email, or nil when there is none. Always served by the primary.
func (r *NewsletterRepo) FindActiveByEmail(ctx context.Context, email string) (*models.NewsletterSubscription, error) {
	var subscription models.NewsletterSubscription
	err := r.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("email = ? AND status = ?", email, models.StatusActive).
		Take(&subscription).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subscription, nil
}

// FindActive returns every active subscription, most recent first.
func (r *NewsletterRepo) FindActive(ctx context.Context) ([]models.NewsletterSubscription, error) {
	subscriptions := []models.NewsletterSubscription{}
	err := r.db.WithContext(ctx).
		Where("status = ?", models.StatusActive).
		Order("subscribed_at DESC").
		Order("storage_id DESC").
		Find(&subscriptions).Error
	return subscriptions, err
}

// Add inserts a new subscription. A second active row for the same email
// fails with gorm.ErrDuplicatedKey.
func (r *NewsletterRepo) Add(ctx context.Context, subscription *models.NewsletterSubscription) error {
	return r.db.WithContext(ctx).Create(subscription).Error
}

func (r *NewsletterRepo) CountActiveByEmail(ctx context.Context, email string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.NewsletterSubscription{}).
		Where("email = ? AND status = ?", email, models.StatusActive).
		Count(&count).Error
	return count, err
}
