package model

import (
	"time"

	"github.com/google/uuid"
)

type Recommendation struct {
	Id                 uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId             uuid.UUID `gorm:"type:uuid;not null;index"`
	RecommendationText string    `gorm:"type:text;not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
