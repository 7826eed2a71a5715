// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"cinelog/config"
	deliverycontext "cinelog/internal/delivery/context"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/domain/service"
	"cinelog/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	storeTimeout time.Duration
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	storeTimeout := 5 * time.Second
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.QueryTimeout > 0 {
		storeTimeout = params.Config.Store.QueryTimeout
	}

	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeCtx bounds store round trips within a request.
func (srv *userService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.storeTimeout)
}

// Signup registers a new user. A taken username fails with the
// username-taken error both on the pre-check and, should two signups race,
// on the unique constraint at insert time.
func (srv *userService) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	srv.log(ctx).Info("Registering user", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err == nil {
		srv.log(ctx).Warn("Username already registered", slog.String("username", input.Username))

		return nil, errors.WithStack(domainerrors.ErrUsernameTaken)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check username availability")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during signup")
	}

	newUser := &entity.User{
		Username:     input.Username,
		FullName:     input.FullName,
		PasswordHash: hashedPassword,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		return nil, errors.Wrap(err, "failed to create user during signup")
	}

	srv.log(ctx).Info("User registered", slog.Any("userID", newUser.ID))

	return &usecase.SignupOutput{User: newUser.Identity()}, nil
}

// Login authenticates a user and mints a bearer token. Unknown usernames and
// wrong passwords produce the same client-facing error; the distinction is
// logged for operators only.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown username", slog.String("username", input.Username))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		// A store failure is an infrastructure fault, never an
		// authentication failure.
		return nil, errors.Wrap(err, "failed to look up user during login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("username", input.Username))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	accessToken, err := srv.tokenService.Issue(user.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Info("User authenticated", slog.String("username", user.Username))

	return &usecase.LoginOutput{
		AccessToken: accessToken,
		TokenType:   "bearer",
		UserID:      user.ID,
	}, nil
}

// Resolve verifies a bearer token and loads the caller's identity. A user
// deleted after token issuance resolves to unauthenticated, like any other
// invalid token.
func (srv *userService) Resolve(ctx context.Context, token string) (entity.Identity, error) {
	subject, err := srv.tokenService.Verify(token)
	if err != nil {
		srv.log(ctx).Warn("Bearer token rejected", slog.Any("error", err))

		return entity.Identity{}, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	user, err := srv.userRepo.FindByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Token subject no longer exists", slog.String("username", subject))

			return entity.Identity{}, errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return entity.Identity{}, errors.Wrap(err, "failed to load user for token subject")
	}

	return user.Identity(), nil
}
