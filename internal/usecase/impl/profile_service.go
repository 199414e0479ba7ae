package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/policy"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns a user with their profile by ID.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

// UpdateProfile applies the input to the user's profile. Only the profile's
// own user may update it; the role and staff flag never change here.
func (srv *profileService) UpdateProfile(ctx context.Context, actor policy.Actor, userID uuid.UUID, input usecase.UpdateProfileInput) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.String("userID", userID.String()))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !policy.Decide(actor, policy.ActionUpdateProfile, policy.Resource{Owner: user.ID}) {
		return nil, domainerrors.ErrForbidden.WrapMessage("only the profile's user may update it")
	}

	if user.Profile == nil {
		user.Profile = &entity.Profile{UserID: user.ID}
	}

	applyProfileInput(user, input)
	user.Profile.UpdatedAt = time.Now()

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrEmailAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return user, nil
}

// ListBusinessProfiles returns every business account with its profile.
func (srv *profileService) ListBusinessProfiles(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRole(ctx, entity.RoleBusiness)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list business profiles")
	}

	return users, nil
}

// ListCustomerProfiles returns every customer account with its profile.
func (srv *profileService) ListCustomerProfiles(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.ListByRole(ctx, entity.RoleCustomer)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customer profiles")
	}

	return users, nil
}

func applyProfileInput(user *entity.User, input usecase.UpdateProfileInput) {
	if input.FirstName != nil {
		user.Profile.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.Profile.LastName = *input.LastName
	}
	if input.File != nil {
		user.Profile.File = *input.File
	}
	if input.Location != nil {
		user.Profile.Location = *input.Location
	}
	if input.Tel != nil {
		user.Profile.Tel = *input.Tel
	}
	if input.Description != nil {
		user.Profile.Description = *input.Description
	}
	if input.WorkingHours != nil {
		user.Profile.WorkingHours = *input.WorkingHours
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
}
