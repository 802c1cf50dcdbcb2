// Package errors provides RFC 7807 Problem Details for the storefront API.
package errors

import (
	"fmt"
	"net/http"
)

// ProblemDetail represents an RFC 7807 Problem Details response.
// See: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	// Extensions carries the storefront keys below (fields, link, ...).
	Extensions map[string]any `json:"extensions,omitempty"`
}

// Error implements the error interface.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return fmt.Sprintf("%s: %s", p.Title, p.Detail)
	}
	return p.Title
}

// WithDetail returns a copy with the given detail message.
func (p ProblemDetail) WithDetail(detail string) ProblemDetail {
	p.Detail = detail
	return p
}

// WithExtension returns a copy with an additional extension property.
func (p ProblemDetail) WithExtension(key string, value any) ProblemDetail {
	ext := make(map[string]any, len(p.Extensions)+1)
	for k, v := range p.Extensions {
		ext[k] = v
	}
	ext[key] = value
	p.Extensions = ext
	return p
}

// Problem type URI references.
const (
	TypeValidation   = "/problems/validation-error"
	TypeNotFound     = "/problems/not-found"
	TypeInternal     = "/problems/internal-error"
	TypeUnauthorized = "/problems/unauthorized"
	TypeBadRequest   = "/problems/bad-request"
)

// Extension keys understood by the storefront client.
const (
	// ExtensionFields maps form field names to their inline message.
	ExtensionFields = "fields"
	// ExtensionLink is the view path the client offers as a way out.
	ExtensionLink         = "link"
	ExtensionResourceType = "resourceType"
	ExtensionRetryable    = "retryable"
)

var (
	ErrNotFound = ProblemDetail{
		Type:   TypeNotFound,
		Title:  "Resource Not Found",
		Status: http.StatusNotFound,
	}

	ErrValidation = ProblemDetail{
		Type:   TypeValidation,
		Title:  "Validation Error",
		Status: http.StatusBadRequest,
	}

	ErrBadRequest = ProblemDetail{
		Type:   TypeBadRequest,
		Title:  "Bad Request",
		Status: http.StatusBadRequest,
	}

	ErrInternal = ProblemDetail{
		Type:   TypeInternal,
		Title:  "Internal Server Error",
		Status: http.StatusInternalServerError,
	}

	ErrUnauthorized = ProblemDetail{
		Type:   TypeUnauthorized,
		Title:  "Unauthorized",
		Status: http.StatusUnauthorized,
	}
)

// NewValidationProblem reports inline form messages keyed by field.
func NewValidationProblem(fieldErrors map[string]string) ProblemDetail {
	return ErrValidation.WithExtension(ExtensionFields, fieldErrors)
}

// NewMissingResourceProblem is the "not found" page: a message plus the view
// the shopper can navigate back to.
func NewMissingResourceProblem(resourceType, detail, link string) ProblemDetail {
	return ErrNotFound.
		WithDetail(detail).
		WithExtension(ExtensionResourceType, resourceType).
		WithExtension(ExtensionLink, link)
}

// NewLoginRequiredProblem points an anonymous session at the login view.
func NewLoginRequiredProblem(detail, link string) ProblemDetail {
	return ErrUnauthorized.
		WithDetail(detail).
		WithExtension(ExtensionLink, link)
}

// NewRetryableProblem marks a server failure the client may repeat safely.
func NewRetryableProblem(detail string) ProblemDetail {
	return ErrInternal.
		WithDetail(detail).
		WithExtension(ExtensionRetryable, true)
}

// StatusProblem picks the template for a transport-level status, falling
// back to internal error.
func StatusProblem(status int, detail string) ProblemDetail {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest.WithDetail(detail)
	case http.StatusNotFound:
		return ErrNotFound.WithDetail(detail)
	case http.StatusUnauthorized:
		return ErrUnauthorized.WithDetail(detail)
	default:
		return ErrInternal.WithDetail(detail)
	}
}
