package errs

import (
	"errors"
	"strings"
)

// Request & Input-Validation Errors
var (
	ErrMalformedPayload     = errors.New("malformed payload")
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidField         = errors.New("invalid field")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrAlreadySubscribed    = errors.New("already subscribed")
)

const (
	MissingContactFieldsMessage = "Name, email, and message are required"
	InvalidEmailMessage         = "Please provide a valid email address"
	AlreadySubscribedMessage    = "This email is already subscribed"
	MalformedPayloadMessage     = "Invalid request body"
)

func NewMalformedPayloadError(cause error) *ApiErr {
	return &ApiErr{
		Kind:    KindValidation,
		Message: MalformedPayloadMessage,
		err:     ErrMalformedPayload,
		Cause:   cause,
	}
}

func NewMissingContactFieldsError(fields ...string) *ApiErr {
	e := newApiErr(KindValidation, ErrMissingRequiredField, MissingContactFieldsMessage)
	if len(fields) > 0 {
		e.Details = strings.Join(fields, ", ")
	}
	return e
}

func NewInvalidEmailError() *ApiErr {
	return newApiErr(KindValidation, ErrInvalidEmail, InvalidEmailMessage)
}

func NewAlreadySubscribedError(cause error) *ApiErr {
	e := newApiErr(KindValidation, ErrAlreadySubscribed, AlreadySubscribedMessage)
	e.Cause = cause
	return e
}

func IsMalformedPayloadError(err error) bool {
	return errors.Is(err, ErrMalformedPayload)
}

func IsMissingRequiredFieldError(err error) bool {
	return errors.Is(err, ErrMissingRequiredField)
}

func IsInvalidEmailError(err error) bool {
	return errors.Is(err, ErrInvalidEmail)
}

func IsAlreadySubscribedError(err error) bool {
	return errors.Is(err, ErrAlreadySubscribed)
}
