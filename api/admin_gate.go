package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/rpupo63/agency-site-backend/errs"
)

// adminGate decides whether a request may read the admin listings.
// Access control proper lives outside this service; the gate is where it plugs in.
type adminGate interface {
	Allow(r *http.Request) error
}

type openGate struct{}

func (openGate) Allow(*http.Request) error {
	return nil
}

// bearerGate admits requests carrying "Authorization: Bearer <token>".
type bearerGate struct {
	token []byte
}

func (g bearerGate) Allow(r *http.Request) error {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return errs.NewUnauthorizedError()
	}

	presented := []byte(strings.TrimPrefix(authHeader, "Bearer "))
	if subtle.ConstantTimeCompare(presented, g.token) != 1 {
		return errs.NewUnauthorizedError()
	}
	return nil
}

func newAdminGate(token string) adminGate {
	if token == "" {
		return openGate{}
	}
	return bearerGate{token: []byte(token)}
}
