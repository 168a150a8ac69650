package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	errs "devconnect/internal/errors"
	"devconnect/internal/model"
	"devconnect/internal/repository"
)

// ProfileInput carries the fields a caller may set on their own profile.
// The owning user is always taken from the verified token, never from the
// request body.
type ProfileInput struct {
	Handle    string
	Username  string
	Bio       string
	YouTube   string
	Twitter   string
	Facebook  string
	LinkedIn  string
	Instagram string
	Snapchat  string
}

// ProfileService handles profile reads, the create-or-update flow, and
// account deletion.
type ProfileService interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error)
	GetByHandle(ctx context.Context, handle string) (*model.Profile, error)
	List(ctx context.Context) ([]model.Profile, error)
	Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error)
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

type profileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

func (s *profileService) GetByUserID(ctx context.Context, userID uuid.UUID) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) GetByHandle(ctx context.Context, handle string) (*model.Profile, error) {
	profile, err := s.profileRepo.FindByHandle(ctx, handle)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrProfileNotFound
		}
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) List(ctx context.Context) ([]model.Profile, error) {
	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return profiles, nil
}

// Upsert creates the caller's profile or updates it in place. The handle
// must not already belong to a different profile.
func (s *profileService) Upsert(ctx context.Context, userID uuid.UUID, input ProfileInput) (*model.Profile, error) {
	byHandle, err := s.profileRepo.FindByHandle(ctx, input.Handle)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check handle: %w", err)
	}
	if byHandle != nil && byHandle.UserID != userID {
		return nil, errs.ErrHandleTaken
	}

	existing, err := s.profileRepo.FindByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find profile: %w", err)
	}

	if existing != nil {
		applyInput(existing, input)
		if err := s.profileRepo.Update(ctx, existing); err != nil {
			return nil, fmt.Errorf("update profile: %w", err)
		}
		return s.GetByUserID(ctx, userID)
	}

	profile := &model.Profile{
		ID:     uuid.New(),
		UserID: userID,
	}
	applyInput(profile, input)
	if err := s.profileRepo.Create(ctx, profile); err != nil {
		// A claim on the handle racing the check trips the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.ErrHandleTaken
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return s.GetByUserID(ctx, userID)
}

// DeleteAccount removes the caller's profile and user record.
func (s *profileService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("delete profile: %w", err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func applyInput(profile *model.Profile, input ProfileInput) {
	profile.Handle = input.Handle
	profile.Username = input.Username
	profile.Bio = input.Bio
	profile.YouTube = input.YouTube
	profile.Twitter = input.Twitter
	profile.Facebook = input.Facebook
	profile.LinkedIn = input.LinkedIn
	profile.Instagram = input.Instagram
	profile.Snapchat = input.Snapchat
}
