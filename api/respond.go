package api

import (
	"encoding/json"
	"net/http"

	"github.com/rpupo63/agency-site-backend/errs"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		r.writeInternal(w)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps err onto its status code and public message. Infrastructure
// failures are logged with their full cause chain and never shown to the caller.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	apiErr := errs.AsApiErr(err)
	status := apiErr.StatusCode()

	if status >= http.StatusInternalServerError {
		r.logger.Error().
			Str("kind", apiErr.Kind.String()).
			Str("error", apiErr.GetFullError()).
			Msg("request failed")
	} else {
		r.logger.Debug().
			Int("status", status).
			Str("error", apiErr.GetFullError()).
			Msg("request rejected")
	}

	r.WriteJSON(w, status, ErrorResponse{Error: apiErr.PublicMessage()})
}

func (r Responder) writeInternal(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write([]byte(`{"error":"` + errs.InternalMessage + `"}`))
}

// wrapDatabaseError wraps a database error with context information
func wrapDatabaseError(operation, entity string, cause error) error {
	return errs.NewDatabaseError(operation, entity, cause)
}
