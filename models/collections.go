package models

// Collections lists every persisted model, one table each.
func Collections() []any {
	return []any{
		&ContactSubmission{},
		&NewsletterSubscription{},
		&BlogPost{},
		&PortfolioProject{},
	}
}
