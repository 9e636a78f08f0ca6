package contract

import (
	"context"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"

	"github.com/google/uuid"
)

// ProfileRepository reads and writes the single profile row per user.
// Upsert is keyed by id (= user id) and is safe to retry.
type ProfileRepository interface {
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error)
	Upsert(ctx context.Context, profile *entity.Profile) error

	// UpdateField writes a single column for the guided onboarding flow.
	// Only body_shape, height and skin_tone are accepted.
	UpdateField(ctx context.Context, userId uuid.UUID, field string, value string) error
}
