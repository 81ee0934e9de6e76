package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

const maxErrorBodyBytes = 2048

// fetchOne performs a single-entity GET against a downstream. Non-2xx
// responses go through the error translator; there is no fallback here
// because the primary entity is mandatory for a meaningful response.
func fetchOne[T any](ctx context.Context, rest *RESTClient, endpoint string) (T, error) {
	var zero T

	req, err := rest.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return zero, err
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("downstream request", slog.String("url", req.URL.String()))

	res, err := rest.Do(req)
	if err != nil {
		return zero, fmt.Errorf("downstream request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return zero, translateHTTPError(res.StatusCode, body, req.URL.String())
	}

	var entity T
	if err := json.NewDecoder(res.Body).Decode(&entity); err != nil {
		return zero, fmt.Errorf("decode downstream response: %w", err)
	}
	return entity, nil
}

// fetchMany performs a list GET against a downstream and decodes a JSON
// array. Failures surface to the caller; whether to degrade to an empty
// result is the call site's decision, not this helper's.
func fetchMany[T any](ctx context.Context, rest *RESTClient, endpoint string) ([]T, error) {
	req, err := rest.NewRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("downstream request", slog.String("url", req.URL.String()))

	res, err := rest.Do(req)
	if err != nil {
		return nil, fmt.Errorf("downstream request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, maxErrorBodyBytes))
		return nil, translateHTTPError(res.StatusCode, body, req.URL.String())
	}

	var entities []T
	if err := json.NewDecoder(res.Body).Decode(&entities); err != nil {
		return nil, fmt.Errorf("decode downstream response: %w", err)
	}
	return entities, nil
}
