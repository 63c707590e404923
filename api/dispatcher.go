package api

import (
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/rpupo63/agency-site-backend/errs"
	"github.com/rs/zerolog"
)

// endpoint serves one route. The returned payload is written as a 200 JSON
// body; a returned error goes through Responder.WriteError.
type endpoint func(w http.ResponseWriter, r *http.Request) (any, error)

type route struct {
	method  string
	pattern string
	handle  endpoint
	admin   bool
}

type dispatcher struct {
	prefix    string
	gate      adminGate
	responder Responder
	logger    zerolog.Logger
}

func newDispatcher(prefix string, gate adminGate, logger zerolog.Logger) dispatcher {
	return dispatcher{
		prefix:    prefix,
		gate:      gate,
		responder: NewResponder(logger),
		logger:    logger,
	}
}

// wrap runs rt inside a guarded region: a panic becomes a 500 with the
// generic message, provided nothing has been written yet.
func (d dispatcher) wrap(rt route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		srw := &statusResponseWriter{ResponseWriter: w, status: http.StatusOK}

		defer func() {
			if rec := recover(); rec != nil {
				d.logger.Error().
					Str("method", r.Method).
					Str("route", logicalRoute(d.prefix, r.URL.Path)).
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("Recovered from panic")

				if !srw.wroteHeader {
					d.responder.WriteError(srw, errs.NewPanicError(rec))
				}
			}
		}()

		if rt.admin {
			if err := d.gate.Allow(r); err != nil {
				d.responder.WriteError(srw, err)
				return
			}
		}

		payload, err := rt.handle(srw, r)
		if err != nil {
			d.responder.WriteError(srw, err)
			return
		}
		d.responder.WriteJSON(srw, http.StatusOK, payload)
	}
}

// notFound answers unmatched paths and unsupported methods alike.
func (d dispatcher) notFound(w http.ResponseWriter, r *http.Request) {
	d.responder.WriteError(w, errs.NewRouteNotFoundError(logicalRoute(d.prefix, r.URL.Path)))
}

// logicalRoute is path below prefix with empty segments dropped, e.g.
// ("/api", "/api//blog/") -> "/blog". A path outside prefix is used whole.
func logicalRoute(prefix, path string) string {
	if prefix != "" && prefix != "/" {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			path = strings.TrimPrefix(path, prefix)
		}
	}

	segments := make([]string, 0, strings.Count(path, "/")+1)
	for _, segment := range strings.Split(path, "/") {
		if segment != "" {
			segments = append(segments, segment)
		}
	}
	return "/" + strings.Join(segments, "/")
}
