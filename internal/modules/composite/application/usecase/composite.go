package usecase

import (
	"context"
	"log/slog"

	"productComposite/internal/modules/composite/application/port"
	"productComposite/internal/modules/composite/domain"
)

// CompositeUseCase assembles the client-facing aggregate view and fans
// aggregate writes out to the per-entity write paths. It adds no transport
// or translation logic of its own; that lives behind the gateway.
type CompositeUseCase struct {
	gateway        port.CompositeGateway
	serviceAddress string
}

func NewCompositeUseCase(gateway port.CompositeGateway, serviceAddress string) *CompositeUseCase {
	return &CompositeUseCase{gateway: gateway, serviceAddress: serviceAddress}
}

// GetProductAggregate builds the composite view for one product. A missing
// or broken product service fails the call; broken satellites only shrink
// the view, because their reads degrade to empty inside the gateway.
func (uc *CompositeUseCase) GetProductAggregate(ctx context.Context, productID int) (domain.ProductAggregate, error) {
	product, err := uc.gateway.GetProduct(ctx, productID)
	if err != nil {
		return domain.ProductAggregate{}, err
	}

	recommendations, err := uc.gateway.GetRecommendations(ctx, productID)
	if err != nil {
		return domain.ProductAggregate{}, err
	}
	reviews, err := uc.gateway.GetReviews(ctx, productID)
	if err != nil {
		return domain.ProductAggregate{}, err
	}

	return uc.assemble(product, recommendations, reviews), nil
}

// CreateProductAggregate accepts an aggregate for asynchronous creation.
// It returns once every change event is accepted for dispatch; delivery
// outcomes are watched in the background, matching the 202 semantics of
// the write path.
func (uc *CompositeUseCase) CreateProductAggregate(ctx context.Context, aggregate domain.ProductAggregate) error {
	product := domain.Product{
		ProductID: aggregate.ProductID,
		Name:      aggregate.Name,
		Weight:    aggregate.Weight,
	}
	done, err := uc.gateway.CreateProduct(ctx, product)
	if err != nil {
		return err
	}
	uc.watch("product create", aggregate.ProductID, done)

	for _, summary := range aggregate.Recommendations {
		recommendation := domain.Recommendation{
			ProductID:        aggregate.ProductID,
			RecommendationID: summary.RecommendationID,
			Author:           summary.Author,
			Rate:             summary.Rate,
			Content:          summary.Content,
		}
		done, err := uc.gateway.CreateRecommendation(ctx, recommendation)
		if err != nil {
			return err
		}
		uc.watch("recommendation create", aggregate.ProductID, done)
	}

	for _, summary := range aggregate.Reviews {
		review := domain.Review{
			ProductID: aggregate.ProductID,
			ReviewID:  summary.ReviewID,
			Author:    summary.Author,
			Subject:   summary.Subject,
			Content:   summary.Content,
		}
		done, err := uc.gateway.CreateReview(ctx, review)
		if err != nil {
			return err
		}
		uc.watch("review create", aggregate.ProductID, done)
	}

	return nil
}

// DeleteProductAggregate accepts deletion of a product and everything
// hanging off it. Same acceptance semantics as CreateProductAggregate.
func (uc *CompositeUseCase) DeleteProductAggregate(ctx context.Context, productID int) error {
	done, err := uc.gateway.DeleteProduct(ctx, productID)
	if err != nil {
		return err
	}
	uc.watch("product delete", productID, done)

	done, err = uc.gateway.DeleteRecommendations(ctx, productID)
	if err != nil {
		return err
	}
	uc.watch("recommendation delete", productID, done)

	done, err = uc.gateway.DeleteReviews(ctx, productID)
	if err != nil {
		return err
	}
	uc.watch("review delete", productID, done)

	return nil
}

// Health reports the downstream liveness as the gateway sees it.
func (uc *CompositeUseCase) Health(ctx context.Context) domain.SystemHealth {
	return uc.gateway.Health(ctx)
}

func (uc *CompositeUseCase) assemble(product domain.Product, recommendations []domain.Recommendation, reviews []domain.Review) domain.ProductAggregate {
	aggregate := domain.ProductAggregate{
		ProductID:       product.ProductID,
		Name:            product.Name,
		Weight:          product.Weight,
		Recommendations: make([]domain.RecommendationSummary, 0, len(recommendations)),
		Reviews:         make([]domain.ReviewSummary, 0, len(reviews)),
		ServiceAddresses: domain.ServiceAddresses{
			Composite: uc.serviceAddress,
			Product:   product.ServiceAddress,
		},
	}

	for _, recommendation := range recommendations {
		aggregate.Recommendations = append(aggregate.Recommendations, domain.RecommendationSummary{
			RecommendationID: recommendation.RecommendationID,
			Author:           recommendation.Author,
			Rate:             recommendation.Rate,
			Content:          recommendation.Content,
		})
		aggregate.ServiceAddresses.Recommendation = recommendation.ServiceAddress
	}

	for _, review := range reviews {
		aggregate.Reviews = append(aggregate.Reviews, domain.ReviewSummary{
			ReviewID: review.ReviewID,
			Author:   review.Author,
			Subject:  review.Subject,
			Content:  review.Content,
		})
		aggregate.ServiceAddresses.Review = review.ServiceAddress
	}

	return aggregate
}

// watch drains one completion handle off the request path. Dispatch failures
// cannot reach the caller anymore once the write was accepted, so they are
// surfaced here.
func (uc *CompositeUseCase) watch(operation string, productID int, done <-chan error) {
	go func() {
		if err := <-done; err != nil {
			slog.Error("event dispatch failed", slog.String("operation", operation), slog.Int("productId", productID), slog.Any("error", err))
		}
	}()
}
