package api

import (
	"context"

	"github.com/rpupo63/agency-site-backend/database"
	"github.com/rpupo63/agency-site-backend/errs"
)

// databaseProvider hands out the shared store handle, connecting on first use.
type databaseProvider interface {
	Get(ctx context.Context) (database.Database, error)
}

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	systemHandler     systemHandler
	contactHandler    contactHandler
	newsletterHandler newsletterHandler
	blogPostHandler   blogPostHandler
	portfolioHandler  portfolioHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(provider databaseProvider) *routeHandlers {
	return &routeHandlers{
		systemHandler:     newSystemHandler(),
		contactHandler:    newContactHandler(provider),
		newsletterHandler: newNewsletterHandler(provider),
		blogPostHandler:   newBlogPostHandler(provider),
		portfolioHandler:  newPortfolioHandler(provider),
	}
}

// storeFor returns the store handle, reporting a failed connection as an infrastructure error.
func storeFor(ctx context.Context, provider databaseProvider) (database.Database, error) {
	db, err := provider.Get(ctx)
	if err != nil {
		return database.Database{}, errs.NewConnectionError(err)
	}
	return db, nil
}
