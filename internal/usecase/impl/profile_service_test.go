package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewProfileService(ProfileServiceParams{
		UserRepo: userRepo,
		Logger:   logger,
	})

	return profileServiceFixtures{
		service:  svc,
		userRepo: userRepo,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	expected := &entity.User{ID: userID, Username: "alice", Role: entity.RoleCustomer}

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(expected, nil)

	user, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, user)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_UpdateProfile_OwnerOnly(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := policy.Actor{ID: uuid.New(), Role: entity.RoleCustomer} // different user

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleCustomer}, nil)

	location := "Berlin"
	_, err := fx.service.UpdateProfile(ctx, actor, userID, usecase.UpdateProfileInput{
		Location: &location,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestProfileService_UpdateProfile_CreatesProfileOnFirstWrite(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()
	actor := policy.Actor{ID: userID, Role: entity.RoleBusiness}

	fx.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Role: entity.RoleBusiness}, nil)
	fx.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	location := "Berlin"
	hours := "9-17"
	user, err := fx.service.UpdateProfile(ctx, actor, userID, usecase.UpdateProfileInput{
		Location:     &location,
		WorkingHours: &hours,
	})

	require.NoError(t, err)
	require.NotNil(t, user.Profile)
	assert.Equal(t, "Berlin", user.Profile.Location)
	assert.Equal(t, "9-17", user.Profile.WorkingHours)
}

func TestProfileService_ListBusinessProfiles(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		ListByRole(ctx, entity.RoleBusiness).
		Return([]*entity.User{{Role: entity.RoleBusiness}}, nil)

	users, err := fx.service.ListBusinessProfiles(ctx)

	require.NoError(t, err)
	assert.Len(t, users, 1)
}
