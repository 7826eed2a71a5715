package usecase

import (
	"context"

	"github.com/google/uuid"

	"cinelog/internal/domain/entity"
)

// CreateMovieInput defines the data required to create a movie record.
// Ownership is not part of the input: it is set from the authenticated caller.
type CreateMovieInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// UpdateMovieInput defines a partial update of a movie record. Nil fields
// keep their current values; ownership cannot be patched.
type UpdateMovieInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// MovieUsecase defines the interface for movie catalogue operations.
type MovieUsecase interface {
	// Create records a new movie owned by the caller.
	Create(ctx context.Context, caller entity.Identity, input CreateMovieInput) (*entity.Movie, error)

	// List retrieves a page of movies.
	List(ctx context.Context, skip, limit int) ([]*entity.Movie, error)

	// Get retrieves a single movie by ID.
	Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// Update applies a partial update, gated on ownership.
	Update(ctx context.Context, caller entity.Identity, id uuid.UUID, input UpdateMovieInput) (*entity.Movie, error)

	// Delete removes a movie and its reviews, gated on ownership.
	Delete(ctx context.Context, caller entity.Identity, id uuid.UUID) error
}
