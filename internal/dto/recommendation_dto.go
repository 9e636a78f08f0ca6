package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecommendationResponse struct {
	Id                 uuid.UUID `json:"id"`
	UserId             uuid.UUID `json:"user_id"`
	RecommendationText string    `json:"recommendation_text"`
	CreatedAt          time.Time `json:"created_at"`
}

type NavigationStateResponse struct {
	State string `json:"state"`
}

// PublishGenerateRecommendationMessage is the payload queued after a
// successful profile save. The consumer generates the recommendation
// asynchronously so the save never waits on the model.
type PublishGenerateRecommendationMessage struct {
	UserId uuid.UUID `json:"user_id"`
}
