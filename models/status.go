package models

const (
	// ContactSubmission
	StatusNew = "new"

	// NewsletterSubscription
	StatusActive = "active"

	// BlogPost and PortfolioProject
	StatusPublished = "published"
	StatusDraft     = "draft"
)

const DefaultContactSubject = "General Inquiry"
