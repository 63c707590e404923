package api

import (
	"net/http"
	"time"
)

const (
	apiName    = "Agency Website API"
	apiVersion = "1.0.0"

	// ISO 8601 in UTC with millisecond precision.
	healthTimestampFormat = "2006-01-02T15:04:05.000Z"
)

// systemHandler serves the routes that never touch the store.
type systemHandler struct {
	now func() time.Time
}

func newSystemHandler() systemHandler {
	return systemHandler{now: time.Now}
}

func (h systemHandler) index() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		return IndexResponse{Message: apiName, Version: apiVersion}, nil
	}
}

func (h systemHandler) health() endpoint {
	return func(w http.ResponseWriter, r *http.Request) (any, error) {
		return HealthResponse{
			Status:    "healthy",
			Timestamp: h.now().UTC().Format(healthTimestampFormat),
		}, nil
	}
}
