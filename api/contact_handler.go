package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rpupo63/agency-site-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	contactReceivedMessage = "Thank you for your message! We will get back to you within 24 hours."
	honeypotMessage        = "Thank you for your message!"

	contactListLimit = 100
)

type contactHandler struct {
	logger   zerolog.Logger
	provider databaseProvider
}

func newContactHandler(provider databaseProvider) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		logger:   logger,
		provider: provider,
	}
}

// createSubmission stores a contact form submission. A filled honeypot field
// gets the usual success answer and nothing is stored.
func (h contactHandler) createSubmission() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		var req ContactRequest
		if err := decodeJSON(w, r, &req); err != nil {
			return nil, err
		}

		if req.isSpam() {
			h.logger.Info().Str("remote_addr", r.RemoteAddr).Msg("honeypot filled, submission dropped")
			return SubmissionResponse{Success: true, Message: honeypotMessage}, nil
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

		now := time.Now().UTC()
		submission := &models.ContactSubmission{
			ID:        uuid.NewString(),
			Name:      req.Name,
			Email:     req.Email,
			Phone:     optionalString(req.Phone),
			Subject:   req.Subject,
			Service:   optionalString(req.Service),
			Message:   req.Message,
			Status:    models.StatusNew,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if submission.Subject == "" {
			submission.Subject = models.DefaultContactSubject
		}

		if err := db.ContactRepo().Add(ctx, submission); err != nil {
			return nil, wrapDatabaseError("insert", "contact submission", err)
		}

		h.logger.Info().Str("id", submission.ID).Msg("contact submission stored")
		return SubmissionResponse{
			Success: true,
			Message: contactReceivedMessage,
			ID:      submission.ID,
		}, nil
	}
}

// listSubmissions returns the most recent submissions, newest first.
func (h contactHandler) listSubmissions() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		ctx := context.WithoutCancel(r.Context())
		db, err := storeFor(ctx, h.provider)
		if err != nil {
			return nil, err
		}

		submissions, err := db.ContactRepo().FindRecent(ctx, contactListLimit)
		if err != nil {
			return nil, wrapDatabaseError("find", "contact submissions", err)
		}
		return submissions, nil
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
