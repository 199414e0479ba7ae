package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeHasher is a deterministic PasswordHasher for tests.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues a fixed token for any user.
type fakeTokenService struct{}

func (fakeTokenService) GenerateAccessToken(_ *entity.User) (string, error) {
	return "test-token", nil
}

func (fakeTokenService) ValidateToken(_ string) (*service.Claims, error) {
	return nil, errors.New("not implemented")
}

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       fakeHasher{},
		TokenService: fakeTokenService{},
		Logger:       logger,
	})

	return userServiceFixtures{
		service:  svc,
		userRepo: userRepo,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			assert.Equal(t, "alice", user.Username)
			assert.Equal(t, "alice@example.com", user.Email)
			assert.Equal(t, entity.RoleCustomer, user.Role)
			assert.Equal(t, "hashed:secret123", user.PasswordHash)
		}).
		Return(nil)

	out, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
		Role:             entity.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", out.AccessToken)
	assert.Equal(t, "alice", out.User.Username)
}

func TestUserService_Register_PasswordMismatch(t *testing.T) {
	fx := createTestUserService(t)

	out, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret124",
		Role:             entity.RoleCustomer,
	})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordMismatch)
}

func TestUserService_Register_InvalidRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Register(context.Background(), usecase.RegisterInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
		Role:             entity.Role("admin"),
	})

	require.Error(t, err)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
		Role:             entity.RoleBusiness,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyExists)
}

func TestUserService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUsername)

	_, err := fx.service.Register(ctx, usecase.RegisterInput{
		Username:         "alice",
		Email:            "alice@example.com",
		Password:         "secret123",
		RepeatedPassword: "secret123",
		Role:             entity.RoleBusiness,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{
			Username:     "alice",
			PasswordHash: "hashed:secret123",
			Role:         entity.RoleCustomer,
		}, nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{
		Username: "alice",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "test-token", out.AccessToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "alice").
		Return(&entity.User{
			Username:     "alice",
			PasswordHash: "hashed:secret123",
		}, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Username: "alice",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{
		Username: "ghost",
		Password: "whatever",
	})

	require.Error(t, err)
	// Unknown users and wrong passwords must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}
