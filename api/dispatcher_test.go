package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rpupo63/agency-site-backend/errs"
)

func TestLogicalRoute(t *testing.T) {
	tests := []struct {
		prefix string
		path   string
		want   string
	}{
		{"/api", "/api", "/"},
		{"/api", "/api/", "/"},
		{"/api", "/api/contact", "/contact"},
		{"/api", "/api//blog//my-post/", "/blog/my-post"},
		{"/api", "/apiary", "/apiary"},
		{"/api", "/other/place", "/other/place"},
		{"/", "/health", "/health"},
		{"", "", "/"},
	}
	for _, tt := range tests {
		if got := logicalRoute(tt.prefix, tt.path); got != tt.want {
			t.Errorf("logicalRoute(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"jane@test.com", true},
		{"first.last+tag@sub.example.co", true},
		{"Jane@Test.COM", true},
		{"", false},
		{"plainaddress", false},
		{"@example.com", false},
		{"jane@", false},
		{"jane@example", false},
		{"jane doe@example.com", false},
		{" jane@test.com", false},
		{"jane@@test.com", false},
	}
	for _, tt := range tests {
		if got := isValidEmail(tt.email); got != tt.want {
			t.Errorf("isValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestContactRequestNormalize(t *testing.T) {
	req := ContactRequest{
		Name:    "  Jane Doe ",
		Email:   " Jane@Test.COM ",
		Phone:   "   ",
		Subject: " Pricing ",
		Message: "\tHello\n",
	}
	req.normalize()

	if req.Name != "Jane Doe" || req.Email != "jane@test.com" || req.Subject != "Pricing" || req.Message != "Hello" {
		t.Errorf("normalize() = %+v", req)
	}
	if req.Phone != "" {
		t.Errorf("Phone = %q, want empty", req.Phone)
	}
	if err := req.validate(); err != nil {
		t.Errorf("validate() = %v, want nil", err)
	}
}

func TestBearerGate(t *testing.T) {
	gate := newAdminGate("token")
	tests := []struct {
		header string
		ok     bool
	}{
		{"", false},
		{"token", false},
		{"Bearer ", false},
		{"Bearer nope", false},
		{"Bearer token", true},
	}
	for _, tt := range tests {
		req := httptest.NewRequest("GET", "/api/contact", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		err := gate.Allow(req)
		if (err == nil) != tt.ok {
			t.Errorf("Allow(%q) = %v, want ok=%v", tt.header, err, tt.ok)
		}
		if err != nil && !errs.IsUnauthorized(err) {
			t.Errorf("Allow(%q) = %v, want an unauthorized error", tt.header, err)
		}
	}

	if err := newAdminGate("").Allow(httptest.NewRequest("GET", "/api/contact", nil)); err != nil {
		t.Errorf("open gate rejected a request: %v", err)
	}
}

func TestContactRequestIsSpam(t *testing.T) {
	tests := []struct {
		body string
		spam bool
	}{
		{`{}`, false},
		{`{"website":null}`, false},
		{`{"website":""}`, false},
		{`{"website":false}`, false},
		{`{"website":0}`, false},
		{`{"website":"http://spam.example"}`, true},
		{`{"website":"   "}`, true},
		{`{"website":1}`, true},
		{`{"website":true}`, true},
		{`{"website":["x"]}`, true},
		{`{"website":{"url":"x"}}`, true},
	}
	for _, tt := range tests {
		var req ContactRequest
		r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(tt.body))
		if err := decodeJSON(httptest.NewRecorder(), r, &req); err != nil {
			t.Fatalf("decodeJSON(%s) failed: %v", tt.body, err)
		}
		if got := req.isSpam(); got != tt.spam {
			t.Errorf("isSpam(%s) = %v, want %v", tt.body, got, tt.spam)
		}
	}
}

func TestContactRequestValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		req  ContactRequest
		is   func(error) bool
	}{
		{"missing name", ContactRequest{Email: "a@b.co", Message: "hi"}, errs.IsMissingRequiredFieldError},
		{"missing everything", ContactRequest{}, errs.IsMissingRequiredFieldError},
		{"bad email", ContactRequest{Name: "A", Email: "a@b", Message: "hi"}, errs.IsInvalidEmailError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.validate()
			if !tt.is(err) {
				t.Errorf("validate() = %v", err)
			}
		})
	}

	var newsletter NewsletterRequest
	if err := newsletter.validate(); !errs.IsInvalidEmailError(err) {
		t.Errorf("empty newsletter validate() = %v, want an invalid email error", err)
	}
}

func TestDecodeJSONRejectsMalformedBodies(t *testing.T) {
	bodies := []string{``, `{"name":`, `[]`, `{"name":1}`, `{} {}`, `{"name":"` + strings.Repeat("x", maxRequestBodyBytes) + `"}`}
	for _, body := range bodies {
		var req ContactRequest
		r := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		if err := decodeJSON(httptest.NewRecorder(), r, &req); !errs.IsMalformedPayloadError(err) {
			t.Errorf("decodeJSON(%.20q) = %v, want a malformed payload error", body, err)
		}
	}
}
