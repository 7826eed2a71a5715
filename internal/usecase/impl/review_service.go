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
	"cinelog/internal/usecase"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	movieRepo    repository.MovieRepository
	commentRepo  repository.CommentRepository
	ratingRepo   repository.RatingRepository
	storeTimeout time.Duration
	logger       *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	MovieRepo   repository.MovieRepository
	CommentRepo repository.CommentRepository
	RatingRepo  repository.RatingRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	storeTimeout := 5 * time.Second
	if params.Config != nil && params.Config.Store != nil && params.Config.Store.QueryTimeout > 0 {
		storeTimeout = params.Config.Store.QueryTimeout
	}

	return &reviewService{
		movieRepo:    params.MovieRepo,
		commentRepo:  params.CommentRepo,
		ratingRepo:   params.RatingRepo,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// storeCtx bounds store round trips within a request.
func (srv *reviewService) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, srv.storeTimeout)
}

// ensureMovieExists maps an absent movie onto the domain's not-found error.
func (srv *reviewService) ensureMovieExists(ctx context.Context, movieID uuid.UUID) error {
	if _, err := srv.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrMovieNotFound) {
			return errors.WithStack(domainerrors.ErrMovieNotFound)
		}

		return errors.Wrap(err, "failed to find movie for review")
	}

	return nil
}

// AddComment attaches a comment to an existing movie. Any authenticated
// user may comment; ownership is not consulted.
func (srv *reviewService) AddComment(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input usecase.AddCommentInput) (*entity.Comment, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	if err := srv.ensureMovieExists(ctx, movieID); err != nil {
		return nil, err
	}

	comment := &entity.Comment{
		MovieID: movieID,
		UserID:  caller.ID,
		Body:    input.Body,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	srv.log(ctx).Info("Comment created", slog.Any("movieID", movieID), slog.Any("userID", caller.ID))

	return comment, nil
}

// ListComments retrieves all comments for a movie.
func (srv *reviewService) ListComments(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	comments, err := srv.commentRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// AddRating attaches a rating to an existing movie.
func (srv *reviewService) AddRating(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input usecase.AddRatingInput) (*entity.Rating, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	if err := srv.ensureMovieExists(ctx, movieID); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		MovieID: movieID,
		UserID:  caller.ID,
		Score:   input.Score,
	}

	if err := srv.ratingRepo.Create(ctx, rating); err != nil {
		return nil, errors.Wrap(err, "failed to create rating")
	}

	srv.log(ctx).Info("Rating created", slog.Any("movieID", movieID), slog.Any("userID", caller.ID))

	return rating, nil
}

// ListRatings retrieves all ratings for a movie and their arithmetic mean.
func (srv *reviewService) ListRatings(ctx context.Context, movieID uuid.UUID) (*usecase.RatingSummary, error) {
	ctx, cancel := srv.storeCtx(ctx)
	defer cancel()

	ratings, err := srv.ratingRepo.ListByMovie(ctx, movieID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ratings")
	}

	summary := &usecase.RatingSummary{Ratings: ratings}
	if len(ratings) > 0 {
		var sum float64
		for _, rating := range ratings {
			sum += rating.Score
		}
		summary.Average = sum / float64(len(ratings))
	}

	return summary, nil
}
