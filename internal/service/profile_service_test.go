package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	errs "devconnect/internal/errors"
	"devconnect/internal/model"
)

func TestProfileService_Upsert(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	input := ProfileInput{Handle: "ada", Username: "Ada", Bio: "First programmer."}

	t.Run("creates when no profile exists", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		userRepo := new(MockUserRepository)

		profileRepo.On("FindByHandle", mock.Anything, "ada").Return(nil, gorm.ErrRecordNotFound).Once()
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound).Once()
		profileRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.UserID == userID && p.Handle == "ada" && p.Bio == "First programmer."
		})).Return(nil)
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(&model.Profile{
			UserID: userID, Handle: "ada",
		}, nil)

		service := NewProfileService(profileRepo, userRepo)
		profile, err := service.Upsert(context.Background(), userID, input)
		assert.NoError(t, err)
		assert.Equal(t, "ada", profile.Handle)
		profileRepo.AssertExpectations(t)
	})

	t.Run("updates own profile in place", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		userRepo := new(MockUserRepository)
		existing := &model.Profile{ID: uuid.New(), UserID: userID, Handle: "ada", Bio: "old bio"}

		profileRepo.On("FindByHandle", mock.Anything, "ada").Return(existing, nil).Once()
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(existing, nil).Once()
		profileRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
			return p.ID == existing.ID && p.Bio == "First programmer."
		})).Return(nil)
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(existing, nil)

		service := NewProfileService(profileRepo, userRepo)
		_, err := service.Upsert(context.Background(), userID, input)
		assert.NoError(t, err)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("handle owned by another profile is rejected", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		userRepo := new(MockUserRepository)

		profileRepo.On("FindByHandle", mock.Anything, "ada").Return(&model.Profile{
			UserID: otherID, Handle: "ada",
		}, nil)

		service := NewProfileService(profileRepo, userRepo)
		profile, err := service.Upsert(context.Background(), userID, input)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrHandleTaken)
		profileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		profileRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("handle claim racing the check is rejected", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		userRepo := new(MockUserRepository)

		profileRepo.On("FindByHandle", mock.Anything, "ada").Return(nil, gorm.ErrRecordNotFound)
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
		profileRepo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		service := NewProfileService(profileRepo, userRepo)
		profile, err := service.Upsert(context.Background(), userID, input)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrHandleTaken)
	})
}

func TestProfileService_GetByUserID(t *testing.T) {
	userID := uuid.New()

	t.Run("missing profile maps to domain error", func(t *testing.T) {
		profileRepo := new(MockProfileRepository)
		userRepo := new(MockUserRepository)
		profileRepo.On("FindByUserID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		service := NewProfileService(profileRepo, userRepo)
		profile, err := service.GetByUserID(context.Background(), userID)
		assert.Nil(t, profile)
		assert.ErrorIs(t, err, errs.ErrProfileNotFound)
	})
}

func TestProfileService_DeleteAccount(t *testing.T) {
	userID := uuid.New()

	profileRepo := new(MockProfileRepository)
	userRepo := new(MockUserRepository)
	profileRepo.On("DeleteByUserID", mock.Anything, userID).Return(nil)
	userRepo.On("Delete", mock.Anything, userID).Return(nil)

	service := NewProfileService(profileRepo, userRepo)
	err := service.DeleteAccount(context.Background(), userID)
	assert.NoError(t, err)
	profileRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}
