package domain

import "errors"

// Error kinds produced by the downstream error translation. Handlers match
// them with errors.Is; the wrapped DownstreamError keeps the downstream's
// own message intact.
var (
	// ErrNotFound marks an entity the downstream does not know about.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput marks a payload the downstream rejected semantically.
	ErrInvalidInput = errors.New("invalid input")
)

// DownstreamError pairs an error kind with the human-readable message the
// downstream returned for it.
type DownstreamError struct {
	Kind    error
	Message string
}

func (e *DownstreamError) Error() string { return e.Message }

func (e *DownstreamError) Unwrap() error { return e.Kind }

// NewNotFoundError wraps a downstream 404 message as ErrNotFound.
func NewNotFoundError(message string) error {
	return &DownstreamError{Kind: ErrNotFound, Message: message}
}

// NewInvalidInputError wraps a downstream 422 message as ErrInvalidInput.
func NewInvalidInputError(message string) error {
	return &DownstreamError{Kind: ErrInvalidInput, Message: message}
}
