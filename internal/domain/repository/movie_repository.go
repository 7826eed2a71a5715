package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrMovieNotFound is a domain-specific error returned when a movie is not found.
var ErrMovieNotFound = errors.New("movie not found")

// MovieRepository defines the standard operations for movie persistence.
type MovieRepository interface {
	// FindByID retrieves a single movie by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)

	// List retrieves a page of movies ordered by creation time.
	List(ctx context.Context, offset, limit int) ([]*entity.Movie, error)

	// Create persists a new movie entity to the storage.
	Create(ctx context.Context, movie *entity.Movie) error

	// Update modifies an existing movie entity in the storage.
	Update(ctx context.Context, movie *entity.Movie) error

	// Delete removes a movie by its unique ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
