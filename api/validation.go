package api

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/agency-site-backend/errs"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// isValidEmail reports whether s looks like local@domain.tld. It does not trim or lowercase.
func isValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.RegisterValidation("basic_email", func(fl validator.FieldLevel) bool {
		return isValidEmail(fl.Field().String())
	})
	if err != nil {
		panic("api: register basic_email validation: " + err.Error())
	}
	return v
}

var requestValidator = newRequestValidator()

// validateRequest runs the struct tags of req and maps the first class of
// failure onto the matching API error. Missing fields win over a bad email.
func validateRequest(req any, missing func(fields ...string) error) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errs.NewInternalErrorWithCause("validate request", err)
	}

	var missingFields []string
	invalidEmail := false
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			missingFields = append(missingFields, fieldErr.Field())
		case "basic_email":
			invalidEmail = true
		}
	}

	switch {
	case len(missingFields) > 0:
		return missing(missingFields...)
	case invalidEmail:
		return errs.NewInvalidEmailError()
	default:
		return errs.NewValidationError(validationErrs.Error())
	}
}
