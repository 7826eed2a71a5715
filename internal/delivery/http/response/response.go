// Package response defines the JSON bodies the API emits. Success bodies
// carry a message with an optional payload; errors are rendered centrally
// by the error middleware as a detail body.
package response

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"cinelog/internal/domain/entity"
)

// Body is the common success envelope. Absent fields are omitted, so a
// bare confirmation serializes as {"message": ...} only.
type Body struct {
	Message string `json:"message,omitempty"`
	User    any    `json:"user,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// Detail is the error body shape. The error middleware is its only writer.
type Detail struct {
	Detail string `json:"detail"`
}

// MovieView is the wire representation of a movie record.
type MovieView struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CommentView is the wire representation of a comment.
type CommentView struct {
	ID        uuid.UUID `json:"id"`
	MovieID   uuid.UUID `json:"movie_id"`
	UserID    uuid.UUID `json:"user_id"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingView is the wire representation of a rating.
type RatingView struct {
	ID        uuid.UUID `json:"id"`
	MovieID   uuid.UUID `json:"movie_id"`
	UserID    uuid.UUID `json:"user_id"`
	Rating    float64   `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// RatingList carries a movie's ratings and their average. The average is
// omitted entirely when there are no ratings to aggregate.
type RatingList struct {
	Data          []RatingView `json:"data"`
	AverageRating *float64     `json:"average_rating,omitempty"`
}

// NewMovieView maps a movie entity onto its wire shape.
func NewMovieView(movie *entity.Movie) MovieView {
	return MovieView{
		ID:          movie.ID,
		Title:       movie.Title,
		Description: movie.Description,
		UserID:      movie.OwnerID,
		CreatedAt:   movie.CreatedAt,
		UpdatedAt:   movie.UpdatedAt,
	}
}

// NewMovieViews maps a page of movies. The result is never nil, so an
// empty page serializes as [] rather than null.
func NewMovieViews(movies []*entity.Movie) []MovieView {
	views := make([]MovieView, 0, len(movies))
	for _, movie := range movies {
		views = append(views, NewMovieView(movie))
	}

	return views
}

// NewCommentView maps a comment entity onto its wire shape.
func NewCommentView(comment *entity.Comment) CommentView {
	return CommentView{
		ID:        comment.ID,
		MovieID:   comment.MovieID,
		UserID:    comment.UserID,
		Comment:   comment.Body,
		CreatedAt: comment.CreatedAt,
	}
}

// NewCommentViews maps a list of comments, never returning nil.
func NewCommentViews(comments []*entity.Comment) []CommentView {
	views := make([]CommentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, NewCommentView(comment))
	}

	return views
}

// NewRatingView maps a rating entity onto its wire shape.
func NewRatingView(rating *entity.Rating) RatingView {
	return RatingView{
		ID:        rating.ID,
		MovieID:   rating.MovieID,
		UserID:    rating.UserID,
		Rating:    rating.Score,
		CreatedAt: rating.CreatedAt,
	}
}

// NewRatingViews maps a list of ratings, never returning nil.
func NewRatingViews(ratings []*entity.Rating) []RatingView {
	views := make([]RatingView, 0, len(ratings))
	for _, rating := range ratings {
		views = append(views, NewRatingView(rating))
	}

	return views
}

// Message writes a bare confirmation body.
func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, Body{Message: message})
}

// WithUser writes a confirmation carrying a user payload.
func WithUser(c echo.Context, message string, user any) error {
	return c.JSON(http.StatusOK, Body{Message: message, User: user})
}

// WithData writes a confirmation carrying a data payload.
func WithData(c echo.Context, message string, data any) error {
	return c.JSON(http.StatusOK, Body{Message: message, Data: data})
}

// Data writes a payload without a confirmation message.
func Data(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, Body{Data: data})
}
