package port

import (
	"context"

	"productComposite/internal/modules/composite/domain"
)

// ProductGateway is the capability set the composite needs from the product
// service. Reads are synchronous from the caller's point of view; writes are
// accepted for asynchronous delivery and resolve on the returned completion.
type ProductGateway interface {
	CreateProduct(ctx context.Context, product domain.Product) (<-chan error, error)
	GetProduct(ctx context.Context, productID int) (domain.Product, error)
	DeleteProduct(ctx context.Context, productID int) (<-chan error, error)
}

// RecommendationGateway mirrors ProductGateway for the recommendation
// service. List reads never fail: a broken downstream yields an empty slice.
type RecommendationGateway interface {
	CreateRecommendation(ctx context.Context, recommendation domain.Recommendation) (<-chan error, error)
	GetRecommendations(ctx context.Context, productID int) ([]domain.Recommendation, error)
	DeleteRecommendations(ctx context.Context, productID int) (<-chan error, error)
}

// ReviewGateway mirrors RecommendationGateway for the review service.
type ReviewGateway interface {
	CreateReview(ctx context.Context, review domain.Review) (<-chan error, error)
	GetReviews(ctx context.Context, productID int) ([]domain.Review, error)
	DeleteReviews(ctx context.Context, productID int) (<-chan error, error)
}

// HealthGateway reports downstream liveness. Probes never return an error;
// anything that goes wrong reads as DOWN.
type HealthGateway interface {
	Health(ctx context.Context) domain.SystemHealth
}

// CompositeGateway is the full integration facade consumed by the layer above.
type CompositeGateway interface {
	ProductGateway
	RecommendationGateway
	ReviewGateway
	HealthGateway
}
