package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
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

// movieService implements the MovieUsecase interface.
type movieService struct {
	movieRepo    repository.MovieRepository
	txManager    repository.TransactionManager
	defaultLimit int
	maxLimit     int
	storeTimeout time.Duration
	logger       *slog.Logger
}

// MovieServiceParams holds dependencies for movieService, injected by Fx.
type MovieServiceParams struct {
	fx.In

	MovieRepo repository.MovieRepository
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewMovieService is the constructor for movieService.
func NewMovieService(params MovieServiceParams) usecase.MovieUsecase {
	defaultLimit, maxLimit := 5, 100
	if params.Config != nil && params.Config.Pagination != nil {
		if params.Config.Pagination.DefaultLimit > 0 {
			defaultLimit = params.Config.Pagination.DefaultLimit
		}
		if params.Config.Pagination.MaxLimit > 0 {
			maxLimit = params.Config.Pagination.MaxLimit
		}
	}

	storeTimeout := 5 * time.Second
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.QueryTimeout > 0 {
		storeTimeout = params.Config.Store.QueryTimeout
	}

	return &movieService{
		movieRepo:    params.MovieRepo,
		txManager:    params.TxManager,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *movieService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeCtx bounds store round trips within a request.
func (srv *movieService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.storeTimeout)
}

// Create records a new movie. Ownership is assigned here, once, from the
// authenticated caller; it is not accepted from the request body.
func (srv *movieService) Create(ctx context.Context, caller entity.Identity, input usecase.CreateMovieInput) (*entity.Movie, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	movie := &entity.Movie{
		Title:       input.Title,
		Description: input.Description,
		OwnerID:     caller.ID,
	}

	if err := srv.movieRepo.Create(ctx, movie); err != nil {
		return nil, errors.Wrap(err, "failed to create movie")
	}

	srv.log(ctx).Info("Movie created", slog.Any("movieID", movie.ID), slog.Any("ownerID", movie.OwnerID))

	return movie, nil
}

// List retrieves a page of movies. A non-positive limit falls back to the
// configured default; oversized limits are capped.
func (srv *movieService) List(ctx context.Context, skip, limit int) ([]*entity.Movie, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = srv.defaultLimit
	}
	if limit > srv.maxLimit {
		limit = srv.maxLimit
	}

	movies, err := srv.movieRepo.List(ctx, skip, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list movies")
	}

	return movies, nil
}

// Get retrieves a single movie by ID.
func (srv *movieService) Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	movie, err := srv.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMovieNotFound)
		}

		return nil, errors.Wrap(err, "failed to find movie")
	}

	return movie, nil
}

// Update applies a partial update to a movie the caller owns. Absence wins
// over authorization: the guard is never consulted for a missing movie.
func (srv *movieService) Update(ctx context.Context, caller entity.Identity, id uuid.UUID, input usecase.UpdateMovieInput) (*entity.Movie, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	movie, err := srv.movieRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return nil, errors.WithStack(domainerrors.ErrMovieNotFound)
		}

		return nil, errors.Wrap(err, "failed to find movie for update")
	}

	if service.AuthorizeMutation(movie.OwnerID, caller) != service.Allowed {
		srv.log(ctx).Warn("Movie update denied",
			slog.Any("movieID", id), slog.Any("ownerID", movie.OwnerID), slog.Any("callerID", caller.ID))

		return nil, errors.WithStack(domainerrors.ErrMovieUpdateForbidden)
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.Description != nil {
		movie.Description = *input.Description
	}

	if err := srv.movieRepo.Update(ctx, movie); err != nil {
		return nil, errors.Wrap(err, "failed to update movie")
	}

	srv.log(ctx).Info("Movie updated", slog.Any("movieID", id))

	return movie, nil
}

// Delete removes a movie the caller owns, together with its comments and
// ratings, in one transaction.
func (srv *movieService) Delete(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		movieRepo := repoFactory.MovieRepo()

		movie, err := movieRepo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrMovieNotFound) {
				return errors.WithStack(domainerrors.ErrMovieNotFound)
			}

			return errors.Wrap(err, "failed to find movie for delete")
		}

		if service.AuthorizeMutation(movie.OwnerID, caller) != service.Allowed {
			srv.log(ctx).Warn("Movie delete denied",
				slog.Any("movieID", id), slog.Any("ownerID", movie.OwnerID), slog.Any("callerID", caller.ID))

			return errors.WithStack(domainerrors.ErrMovieDeleteForbidden)
		}

		if err := repoFactory.CommentRepo().DeleteByMovie(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete movie comments")
		}
		if err := repoFactory.RatingRepo().DeleteByMovie(ctx, id); err != nil {
			return errors.Wrap(err, "failed to delete movie ratings")
		}

		return errors.Wrap(movieRepo.Delete(ctx, id), "failed to delete movie")
	})
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Movie deleted", slog.Any("movieID", id))

	return nil
}
