package infrastructure

import (
	"context"
	"log/slog"
	"net/http"

	"productComposite/internal/modules/composite/domain"
)

// livenessPath is the well-known endpoint every downstream exposes.
const livenessPath = "/health"

// HealthProber issues lightweight liveness calls. Health is advisory: a
// probe never returns an error, it only reads UP or DOWN.
type HealthProber struct {
	rest *RESTClient
}

func NewHealthProber(rest *RESTClient) *HealthProber {
	return &HealthProber{rest: rest}
}

// Probe calls the downstream's liveness endpoint. Any 2xx is UP; timeouts,
// refused connections and error statuses all read as DOWN.
func (p *HealthProber) Probe(ctx context.Context) domain.HealthStatus {
	req, err := p.rest.NewRequest(ctx, http.MethodGet, livenessPath, nil)
	if err != nil {
		slog.Warn("health probe request build failed", slog.String("base", p.rest.BaseURL()), slog.Any("error", err))
		return domain.StatusDown
	}

	res, err := p.rest.Do(req)
	if err != nil {
		slog.Debug("health probe failed", slog.String("url", req.URL.String()), slog.Any("error", err))
		return domain.StatusDown
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		slog.Debug("health probe unhealthy status", slog.String("url", req.URL.String()), slog.Int("status", res.StatusCode))
		return domain.StatusDown
	}
	return domain.StatusUp
}
