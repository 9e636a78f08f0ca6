package model

import (
	"time"

	"github.com/google/uuid"
)

// Profile maps to the profiles table. The primary key is the auth user id,
// so writes are upserts by id.
type Profile struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email            string    `gorm:"type:varchar(255)"`
	FullName         string    `gorm:"type:varchar(255)"`
	Gender           string    `gorm:"type:varchar(10)"`
	SkinTone         string    `gorm:"type:varchar(50)"`
	TopSize          string    `gorm:"type:varchar(10)"`
	BottomSize       string    `gorm:"type:varchar(10)"`
	Bio              string    `gorm:"type:text"`
	Style            string    `gorm:"type:varchar(50)"`
	BodyShape        *string   `gorm:"type:varchar(100)"`
	Height           *string   `gorm:"type:varchar(50)"`
	ProfileCompleted bool      `gorm:"default:false"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}
