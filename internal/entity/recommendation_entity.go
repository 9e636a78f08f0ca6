// FILE: internal/entity/recommendation_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recommendation is an append-only record of generated outfit advice.
// The client never updates or deletes these rows.
type Recommendation struct {
	Id                 uuid.UUID
	UserId             uuid.UUID
	RecommendationText string
	CreatedAt          time.Time
}
