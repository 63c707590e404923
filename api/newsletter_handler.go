package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/agency-site-backend/errs"
	"github.com/rpupo63/agency-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

const subscribedMessage = "Successfully subscribed to our newsletter!"

type newsletterHandler struct {
	logger   zerolog.Logger
	provider databaseProvider
}

func newNewsletterHandler(provider databaseProvider) newsletterHandler {
	logger := log.With().Str("handlerName", "newsletterHandler").Logger()

	return newsletterHandler{
		logger:   logger,
		provider: provider,
	}
}

// subscribe adds an active subscription unless the normalized email already has one.
func (h newsletterHandler) subscribe() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		var req NewsletterRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}

		req.normalize()
		if err := req.validate(); err != nil {
			return nil, err
		}

		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		existing, err := db.NewsletterRepo().FindActiveByEmail(ctx, req.Email)
		if err != nil {
			return nil, wrapDatabaseError("find", "newsletter subscription", err)
		}
		if existing != nil {
			return nil, errs.NewAlreadySubscribedError(nil)
		}

		subscription := &models.NewsletterSubscription{
			ID:           uuid.NewString(),
			Email:        req.Email,
			Status:       models.StatusActive,
			SubscribedAt: time.Now().UTC(),
		}
		if err := db.NewsletterRepo().Add(ctx, subscription); err != nil {
			// Lost a race with a concurrent request for the same email.
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, errs.NewAlreadySubscribedError(err)
			}
			return nil, wrapDatabaseError("insert", "newsletter subscription", err)
		}

		h.logger.Info().Str("id", subscription.ID).Msg("newsletter subscription stored")
		return SubmissionResponse{Success: true, Message: subscribedMessage}, nil
	}
}

// listSubscriptions returns every active subscription, most recent first.
func (h newsletterHandler) listSubscriptions() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		subscriptions, err := db.NewsletterRepo().FindActive(ctx)
		if err != nil {
			return nil, wrapDatabaseError("find", "newsletter subscriptions", err)
		}
		return subscriptions, nil
	}
}
