package database

import (
	"gorm.io/gorm"
)

// Database is a handle on the four collections, all sharing one GORM connection.
type Database struct {
	conn           *gorm.DB
	contactRepo    *ContactRepo
	newsletterRepo *NewsletterRepo
	blogPostRepo   *BlogPostRepo
	portfolioRepo  *PortfolioRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		conn:           db,
		contactRepo:    NewContactRepo(db),
		newsletterRepo: NewNewsletterRepo(db),
		blogPostRepo:   NewBlogPostRepo(db),
		portfolioRepo:  NewPortfolioRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) NewsletterRepo() *NewsletterRepo {
	return d.newsletterRepo
}

func (d Database) BlogPostRepo() *BlogPostRepo {
	return d.blogPostRepo
}

func (d Database) PortfolioRepo() *PortfolioRepo {
	return d.portfolioRepo
}

// Conn returns the underlying connection for developer tooling.
func (d Database) Conn() *gorm.DB {
	return d.conn
}
