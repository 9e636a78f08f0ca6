package service

import (
	"context"
	"errors"

	"ai-stylist-be/internal/dto"
	"ai-stylist-be/internal/repository/specification"
	"ai-stylist-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IRecommendationService interface {
	List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error)
	Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.RecommendationResponse, error)
}

type recommendationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRecommendationService(uowFactory unitofwork.RepositoryFactory) IRecommendationService {
	return &recommendationService{uowFactory: uowFactory}
}

func (s *recommendationService) List(ctx context.Context, userId uuid.UUID) ([]*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	recs, err := uow.RecommendationRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.NewestFirst{},
	)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.RecommendationResponse, 0, len(recs))
	for _, r := range recs {
		res = append(res, &dto.RecommendationResponse{
			Id:                 r.Id,
			UserId:             r.UserId,
			RecommendationText: r.RecommendationText,
			CreatedAt:          r.CreatedAt,
		})
	}
	return res, nil
}

func (s *recommendationService) Show(ctx context.Context, userId uuid.UUID, id uuid.UUID) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	rec, err := uow.RecommendationRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("recommendation not found")
	}

	return &dto.RecommendationResponse{
		Id:                 rec.Id,
		UserId:             rec.UserId,
		RecommendationText: rec.RecommendationText,
		CreatedAt:          rec.CreatedAt,
	}, nil
}
