package repository

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	// Create persists a new comment entity to the storage.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByMovie retrieves all comments attached to a movie.
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error)

	// DeleteByMovie removes all comments attached to a movie.
	DeleteByMovie(ctx context.Context, movieID uuid.UUID) error
}

// RatingRepository defines the standard operations for rating persistence.
type RatingRepository interface {
	// Create persists a new rating entity to the storage.
	Create(ctx context.Context, rating *entity.Rating) error

	// ListByMovie retrieves all ratings attached to a movie.
	ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Rating, error)

	// DeleteByMovie removes all ratings attached to a movie.
	DeleteByMovie(ctx context.Context, movieID uuid.UUID) error
}
