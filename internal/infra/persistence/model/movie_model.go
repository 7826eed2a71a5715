package model

import (
	"time"

	"github.com/google/uuid"
)

// MovieModel mirrors the 'movies' table. OwnerID references users.id and is
// never updated after insert.
type MovieModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Comments []CommentModel `gorm:"foreignKey:MovieID"`
	Ratings  []RatingModel  `gorm:"foreignKey:MovieID"`
}

// TableName explicitly sets the table name for GORM.
func (MovieModel) TableName() string {
	return "movies"
}
