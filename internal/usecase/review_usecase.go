package usecase

import (
	"context"

	"github.com/google/uuid"

	"cinelog/internal/domain/entity"
)

// AddCommentInput defines the data required to attach a comment to a movie.
type AddCommentInput struct {
	Body string `json:"comment" validate:"required"`
}

// AddRatingInput defines the data required to attach a rating to a movie.
type AddRatingInput struct {
	Score float64 `json:"rating" validate:"gte=0,lte=10"`
}

// RatingSummary aggregates a movie's ratings into an arithmetic mean.
// Average is meaningful only when Ratings is non-empty.
type RatingSummary struct {
	Ratings []*entity.Rating
	Average float64
}

// ReviewUsecase defines the interface for comment and rating operations.
// Any authenticated user may review any existing movie; reviews are not
// gated on movie ownership.
type ReviewUsecase interface {
	// AddComment attaches a comment to an existing movie.
	AddComment(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input AddCommentInput) (*entity.Comment, error)

	// ListComments retrieves all comments for a movie.
	ListComments(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error)

	// AddRating attaches a rating to an existing movie.
	AddRating(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input AddRatingInput) (*entity.Rating, error)

	// ListRatings retrieves all ratings for a movie with their average.
	ListRatings(ctx context.Context, movieID uuid.UUID) (*RatingSummary, error)
}
