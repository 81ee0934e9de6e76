package infrastructure

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"productComposite/internal/modules/composite/domain"
	"productComposite/internal/shared/httputil"
)

// translateHTTPError classifies a non-2xx downstream response into the
// domain error taxonomy. Only 404 and 422 get a distinct kind; everything
// else passes through as unexpected with its status and body preserved in
// the error text and the log. Statuses that look retryable (503 and
// friends) deliberately stay in the unexpected bucket: this layer performs
// no retries, so a finer split would only pretend at a policy it does not
// have.
func translateHTTPError(status int, body []byte, url string) error {
	switch status {
	case http.StatusNotFound:
		return domain.NewNotFoundError(errorMessage(body, fmt.Sprintf("%d from %s", status, url)))
	case http.StatusUnprocessableEntity:
		return domain.NewInvalidInputError(errorMessage(body, fmt.Sprintf("%d from %s", status, url)))
	default:
		slog.Warn("unexpected downstream status",
			slog.Int("status", status),
			slog.String("url", url),
			slog.String("body", string(body)),
		)
		return fmt.Errorf("unexpected downstream status %d from %s", status, url)
	}
}

// errorMessage pulls the message out of a structured error body. Bodies
// that do not parse fall back to the transport-level description; parsing
// never fails loudly.
func errorMessage(body []byte, fallback string) string {
	var info httputil.HTTPErrorInfo
	if err := json.Unmarshal(body, &info); err != nil || info.Message == "" {
		return fallback
	}
	return info.Message
}
