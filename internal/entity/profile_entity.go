// FILE: internal/entity/profile_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnset  Gender = ""
)

// Profile holds the fashion attributes used to personalize recommendations.
// One row per user; the primary key equals the auth user id.
type Profile struct {
	Id               uuid.UUID
	Email            string
	FullName         string
	Gender           Gender
	SkinTone         string
	TopSize          string
	BottomSize       string
	Bio              string
	Style            string
	BodyShape        *string
	Height           *string
	ProfileCompleted bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

var (
	SkinToneOptions = []string{"Fair", "Light", "Medium", "Olive", "Tan", "Dark", "Deep"}
	StyleOptions    = []string{"Minimal", "Casual", "Vintage"}
)

// SizesFor returns the clothing sizes allowed for a gender. A stored size is
// always a member of the current gender's set; callers must clear sizes when
// the gender changes.
func SizesFor(g Gender) []string {
	switch g {
	case GenderMale:
		return []string{"L", "XL", "XXL"}
	case GenderFemale:
		return []string{"S", "M"}
	}
	return nil
}

// ValidSize reports whether size is allowed for gender. The empty size is
// always valid (sizes are optional).
func ValidSize(g Gender, size string) bool {
	if size == "" {
		return true
	}
	for _, s := range SizesFor(g) {
		if s == size {
			return true
		}
	}
	return false
}

// NeedsGuidedOnboarding reports whether the guided chat flow should run:
// any of body shape, height or skin tone is still missing.
func (p *Profile) NeedsGuidedOnboarding() bool {
	return p.BodyShape == nil || *p.BodyShape == "" ||
		p.Height == nil || *p.Height == "" ||
		p.SkinTone == ""
}

// MissingChatFields lists, in a fixed order, the fields that must be present
// before free-form chat is routed to the recommendation generator. The names
// are user-facing and reported back verbatim.
func (p *Profile) MissingChatFields() []string {
	var missing []string
	if p.Style == "" {
		missing = append(missing, "style")
	}
	if p.TopSize == "" {
		missing = append(missing, "top size")
	}
	if p.BottomSize == "" {
		missing = append(missing, "bottom size")
	}
	if p.Gender == GenderUnset {
		missing = append(missing, "gender")
	}
	if p.SkinTone == "" {
		missing = append(missing, "skin tone")
	}
	return missing
}
