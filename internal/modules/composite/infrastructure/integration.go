package infrastructure

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"productComposite/internal/modules/composite/application/port"
	"productComposite/internal/modules/composite/domain"
)

// One logical topic per entity kind.
const (
	ProductTopic        = "products-events"
	RecommendationTopic = "recommendations-events"
	ReviewTopic         = "reviews-events"
)

// CompositeIntegration is the facade the layer above talks to. Writes turn
// into change events handed to the dispatcher; reads call the downstream
// REST endpoints and run failures through the error translator. Satellite
// list reads degrade to empty so the aggregator can render a partial view.
type CompositeIntegration struct {
	dispatcher *Dispatcher

	product        *RESTClient
	recommendation *RESTClient
	review         *RESTClient

	probers []*HealthProber

	timeout time.Duration
}

// NewCompositeIntegration resolves the three downstream base URLs once; they
// stay immutable for the facade's lifetime.
func NewCompositeIntegration(dispatcher *Dispatcher, productURL, recommendationURL, reviewURL string, timeout time.Duration, client *http.Client) *CompositeIntegration {
	i := &CompositeIntegration{
		dispatcher:     dispatcher,
		product:        NewRESTClient(productURL, timeout, client),
		recommendation: NewRESTClient(recommendationURL, timeout, client),
		review:         NewRESTClient(reviewURL, timeout, client),
		timeout:        timeoutOrDefault(timeout),
	}
	i.probers = []*HealthProber{
		NewHealthProber(i.product),
		NewHealthProber(i.recommendation),
		NewHealthProber(i.review),
	}
	return i
}

func (i *CompositeIntegration) CreateProduct(ctx context.Context, product domain.Product) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, ProductTopic, product.ProductID, domain.NewCreateEvent(product.ProductID, product))
}

func (i *CompositeIntegration) GetProduct(ctx context.Context, productID int) (domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()
	return fetchOne[domain.Product](ctx, i.product, fmt.Sprintf("/product/%d", productID))
}

func (i *CompositeIntegration) DeleteProduct(ctx context.Context, productID int) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, ProductTopic, productID, domain.NewDeleteEvent[domain.Product](productID))
}

func (i *CompositeIntegration) CreateRecommendation(ctx context.Context, recommendation domain.Recommendation) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, RecommendationTopic, recommendation.ProductID, domain.NewCreateEvent(recommendation.ProductID, recommendation))
}

// GetRecommendations returns every recommendation for a product. A failing
// recommendation service yields an empty slice, not an error: the composite
// view is rendered partially instead of not at all.
func (i *CompositeIntegration) GetRecommendations(ctx context.Context, productID int) ([]domain.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	recommendations, err := fetchMany[domain.Recommendation](ctx, i.recommendation, fmt.Sprintf("/recommendation?productId=%d", productID))
	if err != nil {
		slog.Warn("recommendation fetch degraded to empty", slog.Int("productId", productID), slog.Any("error", err))
		return []domain.Recommendation{}, nil
	}
	return recommendations, nil
}

func (i *CompositeIntegration) DeleteRecommendations(ctx context.Context, productID int) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, RecommendationTopic, productID, domain.NewDeleteEvent[domain.Recommendation](productID))
}

func (i *CompositeIntegration) CreateReview(ctx context.Context, review domain.Review) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, ReviewTopic, review.ProductID, domain.NewCreateEvent(review.ProductID, review))
}

// GetReviews applies the same degrade-to-empty fallback as GetRecommendations.
func (i *CompositeIntegration) GetReviews(ctx context.Context, productID int) ([]domain.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	reviews, err := fetchMany[domain.Review](ctx, i.review, fmt.Sprintf("/review?productId=%d", productID))
	if err != nil {
		slog.Warn("review fetch degraded to empty", slog.Int("productId", productID), slog.Any("error", err))
		return []domain.Review{}, nil
	}
	return reviews, nil
}

func (i *CompositeIntegration) DeleteReviews(ctx context.Context, productID int) (<-chan error, error) {
	return i.dispatcher.Dispatch(ctx, ReviewTopic, productID, domain.NewDeleteEvent[domain.Review](productID))
}

// Health probes the three downstreams concurrently and never fails.
func (i *CompositeIntegration) Health(ctx context.Context) domain.SystemHealth {
	ctx, cancel := context.WithTimeout(ctx, i.timeout)
	defer cancel()

	statuses := make([]domain.HealthStatus, len(i.probers))
	var wg sync.WaitGroup
	for n, prober := range i.probers {
		wg.Add(1)
		go func(n int, prober *HealthProber) {
			defer wg.Done()
			statuses[n] = prober.Probe(ctx)
		}(n, prober)
	}
	wg.Wait()

	health := domain.SystemHealth{
		Product:        statuses[0],
		Recommendation: statuses[1],
		Review:         statuses[2],
	}
	health.Status = health.Aggregate()
	return health
}

var _ port.CompositeGateway = (*CompositeIntegration)(nil)
