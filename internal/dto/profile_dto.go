package dto

import (
	"github.com/google/uuid"
)

type SaveProfileRequest struct {
	FullName   string `json:"full_name" validate:"required,min=2"`
	Gender     string `json:"gender" validate:"required,oneof=male female"`
	SkinTone   string `json:"skin_tone" validate:"required"`
	TopSize    string `json:"top_size"`
	BottomSize string `json:"bottom_size"`
	Bio        string `json:"bio" validate:"max=500"`
	Style      string `json:"style"`
}

type ProfileResponse struct {
	Id               uuid.UUID `json:"id"`
	Email            string    `json:"email"`
	FullName         string    `json:"full_name"`
	Gender           string    `json:"gender"`
	SkinTone         string    `json:"skin_tone"`
	TopSize          string    `json:"top_size"`
	BottomSize       string    `json:"bottom_size"`
	Bio              string    `json:"bio"`
	Style            string    `json:"style"`
	BodyShape        *string   `json:"body_shape,omitempty"`
	Height           *string   `json:"height,omitempty"`
	ProfileCompleted bool      `json:"profile_completed"`
}

// ProfileOptionsResponse feeds the profile-setup form: valid choices per
// field, with sizes keyed by gender.
type ProfileOptionsResponse struct {
	Genders   []string            `json:"genders"`
	SkinTones []string            `json:"skin_tones"`
	Styles    []string            `json:"styles"`
	Sizes     map[string][]string `json:"sizes"`
}
