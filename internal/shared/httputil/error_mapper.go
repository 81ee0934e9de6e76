package httputil

import (
	"context"
	"errors"
	"net/http"
)

// ErrorMapping represents a single error to HTTP status mapping.
type ErrorMapping struct {
	Error  error
	Status int
}

// ErrorMapper maps domain errors to HTTP status codes. It provides a
// centralized way to handle error mapping across handlers.
type ErrorMapper struct {
	mappings      []ErrorMapping
	defaultStatus int
}

// NewErrorMapper creates a new ErrorMapper with default settings.
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{
		mappings:      make([]ErrorMapping, 0),
		defaultStatus: http.StatusInternalServerError,
	}
}

// WithMapping adds an error mapping to the mapper.
func (m *ErrorMapper) WithMapping(err error, status int) *ErrorMapper {
	m.mappings = append(m.mappings, ErrorMapping{Error: err, Status: status})
	return m
}

// WithDefault sets the default status for unmatched errors.
func (m *ErrorMapper) WithDefault(status int) *ErrorMapper {
	m.defaultStatus = status
	return m
}

// Map converts an error to an HTTP status. The error's own message travels
// unchanged into the response body so downstream diagnostics survive.
func (m *ErrorMapper) Map(err error) int {
	if err == nil {
		return http.StatusOK
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	if errors.Is(err, context.Canceled) {
		return http.StatusServiceUnavailable
	}

	for _, mapping := range m.mappings {
		if errors.Is(err, mapping.Error) {
			return mapping.Status
		}
	}

	return m.defaultStatus
}
