package entity

import (
	"time"

	"github.com/google/uuid"
)

// Movie is an owned catalogue record. OwnerID is set once at creation time
// from the authenticated caller and is immutable afterwards; only the
// ownership guard may gate mutation based on it.
type Movie struct {
	ID          uuid.UUID // The unique identifier for this movie record.
	Title       string    // The movie title.
	Description string    // A free-form description of the movie.
	OwnerID     uuid.UUID // The ID of the user who created this record.
	CreatedAt   time.Time // Timestamp of when this record was created.
	UpdatedAt   time.Time // Timestamp of the last modification to this record.
}
