package mapper

import (
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/model"
)

type ProfileMapper struct{}

func NewProfileMapper() *ProfileMapper {
	return &ProfileMapper{}
}

func (m *ProfileMapper) ToEntity(p *model.Profile) *entity.Profile {
	if p == nil {
		return nil
	}
	return &entity.Profile{
		Id:               p.Id,
		Email:            p.Email,
		FullName:         p.FullName,
		Gender:           entity.Gender(p.Gender),
		SkinTone:         p.SkinTone,
		TopSize:          p.TopSize,
		BottomSize:       p.BottomSize,
		Bio:              p.Bio,
		Style:            p.Style,
		BodyShape:        p.BodyShape,
		Height:           p.Height,
		ProfileCompleted: p.ProfileCompleted,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func (m *ProfileMapper) ToModel(p *entity.Profile) *model.Profile {
	if p == nil {
		return nil
	}
	return &model.Profile{
		Id:               p.Id,
		Email:            p.Email,
		FullName:         p.FullName,
		Gender:           string(p.Gender),
		SkinTone:         p.SkinTone,
		TopSize:          p.TopSize,
		BottomSize:       p.BottomSize,
		Bio:              p.Bio,
		Style:            p.Style,
		BodyShape:        p.BodyShape,
		Height:           p.Height,
		ProfileCompleted: p.ProfileCompleted,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
