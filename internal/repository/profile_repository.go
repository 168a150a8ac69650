package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devconnect/internal/model"
)

// ProfileRepository defines profile persistence operations. Read methods
// preload the owning user so responses can embed name and avatar.
type ProfileRepository interface {
	Create(ctx context.Context, profile *model.Profile) error
	Update(ctx context.Context, profile *model.Profile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	FindByHandle(ctx context.Context, handle string) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Preload("User").
		Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Preload("User").
		Where("handle = ?", handle).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]model.Profile, error) {
	var profiles []model.Profile
	if err := r.db.WithContext(ctx).Preload("User").Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.Profile{}).Error
}
