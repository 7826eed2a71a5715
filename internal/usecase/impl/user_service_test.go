package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	mockrepo "cinelog/internal/mocks/repository"
	mocksvc "cinelog/internal/mocks/service"
	"cinelog/internal/usecase"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockrepo.MockUserRepository
	hasher       *mocksvc.MockPasswordHasher
	tokenService *mocksvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockrepo.MockUserRepository{}
	hasher := &mocksvc.MockPasswordHasher{}
	tokenService := &mocksvc.MockTokenService{}

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	t.Cleanup(func() {
		userRepo.AssertExpectations(t)
		hasher.AssertExpectations(t)
		tokenService.AssertExpectations(t)
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	input := usecase.SignupInput{Username: "alice", FullName: "Alice", Password: "secret"}

	fx.userRepo.On("FindByUsername", mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.On("Hash", "secret").Return("hashed_password", nil)
	fx.userRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = uuid.New()
		}).
		Return(nil)

	output, err := fx.service.Signup(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "Alice", output.User.FullName)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Signup_UsernameTaken(t *testing.T) {
	fx := createTestUserService(t)

	existing := &entity.User{ID: uuid.New(), Username: "alice"}
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(existing, nil)

	output, err := fx.service.Signup(context.Background(), usecase.SignupInput{
		Username: "alice", FullName: "Alice", Password: "secret",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", FullName: "Alice", PasswordHash: "hashed_password"}

	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	fx.hasher.On("Check", "secret", "hashed_password").Return(true)
	fx.tokenService.On("Issue", "alice").Return("signed.jwt.token", nil)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "alice", Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, userID, output.UserID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	user := &entity.User{ID: uuid.New(), Username: "alice", PasswordHash: "hashed_password"}
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)
	fx.hasher.On("Check", "wrong", "hashed_password").Return(false)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "alice", Password: "wrong",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	fx := createTestUserService(t)

	fx.userRepo.On("FindByUsername", mock.Anything, "nobody").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "nobody", Password: "anything",
	})

	// Unknown user and wrong password collapse into the same outward error.
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_StoreFailureIsNotCredentialFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.userRepo.On("FindByUsername", mock.Anything, "alice").
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.Login(context.Background(), usecase.LoginInput{
		Username: "alice", Password: "secret",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Resolve_Success(t *testing.T) {
	fx := createTestUserService(t)

	userID := uuid.New()
	user := &entity.User{ID: userID, Username: "alice", FullName: "Alice", PasswordHash: "hashed_password"}

	fx.tokenService.On("Verify", "signed.jwt.token").Return("alice", nil)
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

	identity, err := fx.service.Resolve(context.Background(), "signed.jwt.token")

	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "alice", identity.Username)
}

func TestUserService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.On("Verify", "tampered.token").
		Return("", errors.New("invalid or expired token"))

	_, err := fx.service.Resolve(context.Background(), "tampered.token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestUserService_Resolve_UserDeletedAfterIssuance(t *testing.T) {
	fx := createTestUserService(t)

	fx.tokenService.On("Verify", "signed.jwt.token").Return("alice", nil)
	fx.userRepo.On("FindByUsername", mock.Anything, "alice").
		Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Resolve(context.Background(), "signed.jwt.token")

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}
