package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gorm.io/gorm"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnauthorized, http.StatusUnauthorized},
		{KindInfrastructure, http.StatusInternalServerError},
		{Kind(42), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := StatusFor(tt.kind); got != tt.want {
			t.Errorf("StatusFor(%v) = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestPublicMessageHidesInfrastructureDetail(t *testing.T) {
	err := NewDatabaseError("insert", "contact submission", errors.New("pq: password authentication failed"))

	if got := err.PublicMessage(); got != InternalMessage {
		t.Errorf("PublicMessage = %q, want %q", got, InternalMessage)
	}
	if err.StatusCode() != http.StatusInternalServerError {
		t.Errorf("StatusCode = %d, want 500", err.StatusCode())
	}
	if got := err.GetFullError(); got != "database query failed: Failed to insert contact submission -> pq: password authentication failed" {
		t.Errorf("GetFullError = %q", got)
	}
}

func TestValidationErrorsAreShown(t *testing.T) {
	tests := []struct {
		name string
		err  *ApiErr
		want string
		is   func(error) bool
	}{
		{"missing fields", NewMissingContactFieldsError("name"), MissingContactFieldsMessage, IsMissingRequiredFieldError},
		{"invalid email", NewInvalidEmailError(), InvalidEmailMessage, IsInvalidEmailError},
		{"already subscribed", NewAlreadySubscribedError(nil), AlreadySubscribedMessage, IsAlreadySubscribedError},
		{"malformed body", NewMalformedPayloadError(errors.New("unexpected EOF")), MalformedPayloadMessage, IsMalformedPayloadError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != http.StatusBadRequest {
				t.Errorf("StatusCode = %d, want 400", tt.err.StatusCode())
			}
			if got := tt.err.PublicMessage(); got != tt.want {
				t.Errorf("PublicMessage = %q, want %q", got, tt.want)
			}
			if !tt.is(tt.err) {
				t.Errorf("%s predicate rejected %v", tt.name, tt.err)
			}
			if !tt.is(fmt.Errorf("wrapped: %w", tt.err)) {
				t.Errorf("%s predicate rejected a wrapped %v", tt.name, tt.err)
			}
			if !IsValidation(tt.err) {
				t.Error("IsValidation = false")
			}
		})
	}
}

func TestRouteNotFoundMessage(t *testing.T) {
	err := NewRouteNotFoundError("/foo")

	if got := err.PublicMessage(); got != "Route /foo not found" {
		t.Errorf("PublicMessage = %q", got)
	}
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode = %d, want 404", err.StatusCode())
	}
	if !IsRouteNotFound(err) || !IsNotFound(NewNotFoundError("Blog post not found")) {
		t.Error("not-found helpers should match")
	}
}

func TestAsApiErrWrapsUnknownErrors(t *testing.T) {
	plain := errors.New("boom")
	apiErr := AsApiErr(plain)

	if apiErr.Kind != KindInfrastructure {
		t.Errorf("Kind = %v, want infrastructure", apiErr.Kind)
	}
	if !errors.Is(apiErr.Cause, plain) {
		t.Error("cause should be preserved")
	}

	wrapped := fmt.Errorf("handler: %w", NewInvalidEmailError())
	if AsApiErr(wrapped).Kind != KindValidation {
		t.Error("wrapped ApiErr should be unwrapped")
	}
}

func TestNewDatabaseErrorClassifiesCauses(t *testing.T) {
	dup := NewDatabaseError("insert", "newsletter subscription", gorm.ErrDuplicatedKey)
	if !IsDuplicateKeyError(dup) {
		t.Error("duplicate key cause should map to ErrDuplicateKey")
	}

	conn := NewDatabaseError("find", "blog posts", errors.New("dial tcp: connection refused"))
	if !IsDatabaseConnectionError(conn) {
		t.Error("connection cause should map to ErrDatabaseConnection")
	}

	if !IsInternal(dup) || !IsInternal(conn) {
		t.Error("database errors are infrastructure errors")
	}
}
