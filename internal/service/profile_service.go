package service

import (
	"context"
	"encoding/json"
	"fmt"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

var ErrProfileNotFound = fmt.Errorf("profile not found")

type IProfileService interface {
	Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error)
	Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error)
	Options() *dto.ProfileOptionsResponse
	// IsCompleted reports the stored profile_completed flag; false when no
	// profile row exists yet.
	IsCompleted(ctx context.Context, userId uuid.UUID) (bool, error)
}

type profileService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	onProfileSaved   func()
}

// NewProfileService wires the profile workflow. onProfileSaved is invoked
// after every successful save so the navigation controller can advance; a
// nil callback is allowed.
func NewProfileService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	onProfileSaved func(),
) IProfileService {
	return &profileService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		onProfileSaved:   onProfileSaved,
	}
}

func (s *profileService) Get(ctx context.Context, userId uuid.UUID) (*dto.ProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return toProfileResponse(profile), nil
}

func (s *profileService) Save(ctx context.Context, userId uuid.UUID, req *dto.SaveProfileRequest) (*dto.ProfileResponse, error) {
	gender := entity.Gender(req.Gender)

	if !entity.ValidSize(gender, req.TopSize) {
		return nil, fmt.Errorf("top size %q is not valid for gender %q", req.TopSize, req.Gender)
	}
	if !entity.ValidSize(gender, req.BottomSize) {
		return nil, fmt.Errorf("bottom size %q is not valid for gender %q", req.BottomSize, req.Gender)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	existing, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		Id:               userId,
		Email:            user.Email,
		FullName:         req.FullName,
		Gender:           gender,
		SkinTone:         req.SkinTone,
		TopSize:          req.TopSize,
		BottomSize:       req.BottomSize,
		Bio:              req.Bio,
		Style:            req.Style,
		ProfileCompleted: true,
	}

	if existing != nil {
		// Guided-flow answers survive a profile re-save. Sizes are not
		// carried over: they always come from the request, validated
		// against the submitted gender, so a gender switch drops any
		// size the caller did not re-state.
		profile.BodyShape = existing.BodyShape
		profile.Height = existing.Height
	}

	if err := uow.ProfileRepository().Upsert(ctx, profile); err != nil {
		return nil, err
	}

	// Queue recommendation generation; the save itself never waits on the
	// model and a publish failure is not an error the caller sees.
	if s.publisherService != nil {
		payload, marshalErr := json.Marshal(dto.PublishGenerateRecommendationMessage{UserId: userId})
		if marshalErr == nil {
			if pubErr := s.publisherService.Publish(ctx, payload); pubErr != nil {
				fmt.Printf("[WARN] Failed to queue recommendation generation: %v\n", pubErr)
			}
		}
	}

	if s.onProfileSaved != nil {
		s.onProfileSaved()
	}

	return toProfileResponse(profile), nil
}

func (s *profileService) Options() *dto.ProfileOptionsResponse {
	return &dto.ProfileOptionsResponse{
		Genders:   []string{string(entity.GenderMale), string(entity.GenderFemale)},
		SkinTones: entity.SkinToneOptions,
		Styles:    entity.StyleOptions,
		Sizes: map[string][]string{
			string(entity.GenderMale):   entity.SizesFor(entity.GenderMale),
			string(entity.GenderFemale): entity.SizesFor(entity.GenderFemale),
		},
	}
}

func (s *profileService) IsCompleted(ctx context.Context, userId uuid.UUID) (bool, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	profile, err := uow.ProfileRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return false, err
	}
	if profile == nil {
		return false, nil
	}
	return profile.ProfileCompleted, nil
}

func toProfileResponse(p *entity.Profile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
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
	}
}
