package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/agency-site-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const blogPostNotFoundMessage = "Blog post not found"

type blogPostHandler struct {
	logger   zerolog.Logger
	provider databaseProvider
}

func newBlogPostHandler(provider databaseProvider) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		logger:   logger,
		provider: provider,
	}
}

// listBlogPosts retrieves every published post, most recently published first.
func (h blogPostHandler) listBlogPosts() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		posts, err := db.BlogPostRepo().FindPublished(ctx)
		if err != nil {
			return nil, wrapDatabaseError("find", "blog posts", err)
		}
		return posts, nil
	}
}

// getBlogPost retrieves one published post by slug. Drafts are reported as missing.
func (h blogPostHandler) getBlogPost() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		slug := chi.URLParam(r, "slug")

		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		post, err := db.BlogPostRepo().FindPublishedBySlug(ctx, slug)
		if err != nil {
			return nil, wrapDatabaseError("find", "blog post", err)
		}
		if post == nil {
			h.logger.Debug().Str("slug", slug).Msg("blog post not found")
			return nil, errs.NewNotFoundError(blogPostNotFoundMessage)
		}
		return post, nil
	}
}
