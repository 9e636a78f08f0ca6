package contract

import (
	"context"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
)

// RecommendationRepository is append-only: rows are inserted and read,
// never updated or deleted.
type RecommendationRepository interface {
	Create(ctx context.Context, rec *entity.Recommendation) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Recommendation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
