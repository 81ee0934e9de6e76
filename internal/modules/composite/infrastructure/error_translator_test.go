package infrastructure

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"productComposite/internal/modules/composite/domain"
)

func TestTranslateHTTPError_NotFound(t *testing.T) {
	body := []byte(`{"path":"/product/2","message":"NOT FOUND: 2","timestamp":"2026-08-26T10:00:00Z"}`)

	err := translateHTTPError(http.StatusNotFound, body, "http://product/product/2")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err.Error() != "NOT FOUND: 2" {
		t.Fatalf("expected downstream message, got %q", err.Error())
	}
}

func TestTranslateHTTPError_InvalidInput(t *testing.T) {
	body := []byte(`{"path":"/product/3","message":"INVALID: 3","timestamp":"2026-08-26T10:00:00Z"}`)

	err := translateHTTPError(http.StatusUnprocessableEntity, body, "http://product/product/3")

	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if err.Error() != "INVALID: 3" {
		t.Fatalf("expected downstream message, got %q", err.Error())
	}
}

func TestTranslateHTTPError_UnparsableBodyFallsBack(t *testing.T) {
	err := translateHTTPError(http.StatusNotFound, []byte("<html>nope</html>"), "http://product/product/2")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Fatalf("expected transport fallback message, got %q", err.Error())
	}
}

func TestTranslateHTTPError_OtherStatusPassesThrough(t *testing.T) {
	err := translateHTTPError(http.StatusServiceUnavailable, []byte("busy"), "http://review/review")

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("unexpected classification: %v", err)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Fatalf("expected status in message, got %q", err.Error())
	}
}
