package implementation

import (
	"context"
	"errors"
	"fmt"

	"ai-stylist-be/internal/entity"
	"ai-stylist-be/internal/mapper"
	"ai-stylist-be/internal/model"
	"ai-stylist-be/internal/repository/contract"
	"ai-stylist-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Profile, error) {
	var m model.Profile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&m), nil
}

func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, profile *entity.Profile) error {
	m := r.mapper.ToModel(profile)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email", "full_name", "gender", "skin_tone", "top_size",
			"bottom_size", "bio", "style", "profile_completed", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

// guidedFields are the only columns the guided onboarding flow may touch.
var guidedFields = map[string]bool{
	"body_shape": true,
	"height":     true,
	"skin_tone":  true,
}

func (r *ProfileRepositoryImpl) UpdateField(ctx context.Context, userId uuid.UUID, field string, value string) error {
	if !guidedFields[field] {
		return fmt.Errorf("field %q is not writable via guided onboarding", field)
	}
	return r.db.WithContext(ctx).Model(&model.Profile{}).
		Where("id = ?", userId).
		Update(field, value).Error
}
