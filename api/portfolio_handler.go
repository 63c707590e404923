package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type portfolioHandler struct {
	logger   zerolog.Logger
	provider databaseProvider
}

func newPortfolioHandler(provider databaseProvider) portfolioHandler {
	logger := log.With().Str("handlerName", "portfolioHandler").Logger()

	return portfolioHandler{
		logger:   logger,
		provider: provider,
	}
}

// listProjects retrieves every published project in display order.
func (h portfolioHandler) listProjects() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		projects, err := db.PortfolioRepo().FindPublished(ctx)
		if err != nil {
			return nil, wrapDatabaseError("find", "portfolio projects", err)
		}
		h.logger.Debug().Int("count", len(projects)).Msg("portfolio listed")
		return projects, nil
	}
}
