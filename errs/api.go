package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an ApiErr. The kind alone decides the HTTP status and
// whether the message may be shown to the caller.
type Kind int

const (
	KindInfrastructure Kind = iota
	KindValidation
	KindNotFound
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "infrastructure"
	}
}

var statusByKind = map[Kind]int{
	KindInfrastructure: http.StatusInternalServerError,
	KindValidation:     http.StatusBadRequest,
	KindNotFound:       http.StatusNotFound,
	KindUnauthorized:   http.StatusUnauthorized,
}

// StatusFor maps a kind to its HTTP status code.
func StatusFor(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// InternalMessage is the only message callers ever see for infrastructure failures.
const InternalMessage = "Internal server error"

// Common error sentinel values
var (
	ErrInternal     = errors.New("internal server error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrPanic        = errors.New("recovered panic")
)

type ApiErr struct {
	Kind    Kind
	Message string // shown to the caller unless Kind is KindInfrastructure
	err     error
	Details string // logged, never serialized
	Cause   error  // The underlying cause of the error
}

func newApiErr(kind Kind, sentinel error, message string) *ApiErr {
	return &ApiErr{Kind: kind, Message: message, err: sentinel}
}

// implements error interface. this allows us to pass an instance of ApiErr as an argument of type `error`
func (e *ApiErr) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.err.Error(), e.Details)
	}
	return e.err.Error()
}

func (e *ApiErr) StatusCode() int {
	return StatusFor(e.Kind)
}

// PublicMessage is what the response body carries under "error".
func (e *ApiErr) PublicMessage() string {
	if e.Kind == KindInfrastructure || e.Message == "" {
		return InternalMessage
	}
	return e.Message
}

// GetFullError returns a recursive error message including all causes
func (e *ApiErr) GetFullError() string {
	msg := e.Error()
	if e.Cause != nil {
		var apiErr *ApiErr
		if errors.As(e.Cause, &apiErr) {
			msg = fmt.Sprintf("%s -> %s", msg, apiErr.GetFullError())
		} else {
			msg = fmt.Sprintf("%s -> %s", msg, e.Cause.Error())
		}
	}
	return msg
}

// errors.Is(err, someSentinelError) evaluates to true for the sentinel the ApiErr was built from
func (e *ApiErr) Unwrap() error {
	return e.err
}

func NewValidationError(message string) *ApiErr {
	return newApiErr(KindValidation, ErrInvalidField, message)
}

func NewNotFoundError(message string) *ApiErr {
	return newApiErr(KindNotFound, ErrNotFound, message)
}

func NewUnauthorizedError() *ApiErr {
	return newApiErr(KindUnauthorized, ErrUnauthorized, "Unauthorized")
}

func NewInternalErrorWithCause(details string, cause error) *ApiErr {
	return &ApiErr{
		Kind:    KindInfrastructure,
		err:     ErrInternal,
		Details: details,
		Cause:   cause,
	}
}

// NewPanicError wraps a value recovered from a panicking handler.
func NewPanicError(recovered any) *ApiErr {
	return &ApiErr{
		Kind:    KindInfrastructure,
		err:     ErrPanic,
		Details: fmt.Sprintf("%v", recovered),
	}
}

// AsApiErr returns err as an *ApiErr, treating anything else as an infrastructure failure.
func AsApiErr(err error) *ApiErr {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewInternalErrorWithCause("unexpected error", err)
}

func IsValidation(err error) bool {
	var apiErr *ApiErr
	return errors.As(err, &apiErr) && apiErr.Kind == KindValidation
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

func IsInternal(err error) bool {
	var apiErr *ApiErr
	if errors.As(err, &apiErr) {
		return apiErr.Kind == KindInfrastructure
	}
	return err != nil
}
