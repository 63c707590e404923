package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/rpupo63/agency-site-backend/errs"
)

const maxRequestBodyBytes = 1 << 20

// ContactRequest is the body of POST /contact. Website is the honeypot field
// and is never stored.
type ContactRequest struct {
	Name    string          `json:"name" validate:"required"`
	Email   string          `json:"email" validate:"required,basic_email"`
	Phone   string          `json:"phone"`
	Subject string          `json:"subject"`
	Service string          `json:"service"`
	Message string          `json:"message" validate:"required"`
	Website json.RawMessage `json:"website"`
}

// isSpam reports whether the honeypot holds anything a browser form would
// leave out: any value other than null, "", false or 0.
func (req *ContactRequest) isSpam() bool {
	if len(req.Website) == 0 {
		return false
	}
	var value any
	if err := json.Unmarshal(req.Website, &value); err != nil {
		return true
	}
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case float64:
		return v != 0
	default:
		return true
	}
}

// normalize trims every free-text field and lowercases the email.
func (req *ContactRequest) normalize() {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)
	req.Subject = strings.TrimSpace(req.Subject)
	req.Service = strings.TrimSpace(req.Service)
	req.Message = strings.TrimSpace(req.Message)
}

func (req *ContactRequest) validate() error {
	return validateRequest(req, func(fields ...string) error {
		return errs.NewMissingContactFieldsError(fields...)
	})
}

// NewsletterRequest is the body of POST /newsletter.
type NewsletterRequest struct {
	Email string `json:"email" validate:"required,basic_email"`
}

func (req *NewsletterRequest) normalize() {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
}

// A missing newsletter email is reported the same way as a malformed one.
func (req *NewsletterRequest) validate() error {
	return validateRequest(req, func(...string) error {
		return errs.NewInvalidEmailError()
	})
}

// decodeJSON reads a single JSON object from the request body into dst.
// Anything unreadable, oversized, or of the wrong shape is a malformed payload.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)
	defer body.Close()

	decoder := json.NewDecoder(body)
	if err := decoder.Decode(dst); err != nil {
		return errs.NewMalformedPayloadError(err)
	}
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errs.NewMalformedPayloadError(errors.New("request body must contain a single JSON object"))
	}
	return nil
}
