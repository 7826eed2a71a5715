package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a free-form remark attached to a movie by any authenticated
// user. Comments are not owned resources: they are never mutated after
// creation, so no ownership guard applies to them.
type Comment struct {
	ID        uuid.UUID // The unique identifier for this comment.
	MovieID   uuid.UUID // The movie this comment is attached to.
	UserID    uuid.UUID // The user who wrote this comment.
	Body      string    // The comment text.
	CreatedAt time.Time // Timestamp of when this comment was created.
}

// Rating is a numeric score attached to a movie by any authenticated user.
// Individual ratings are aggregated into an arithmetic mean when listed.
type Rating struct {
	ID        uuid.UUID // The unique identifier for this rating.
	MovieID   uuid.UUID // The movie this rating is attached to.
	UserID    uuid.UUID // The user who submitted this rating.
	Score     float64   // The numeric score, 0 through 10.
	CreatedAt time.Time // Timestamp of when this rating was created.
}
