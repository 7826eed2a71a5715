package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"
)

// commentRepository implements the repository.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// Create persists a new comment entity to the database.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMovieNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt

	return nil
}

// ListByMovie retrieves all comments attached to a movie, oldest first.
func (repo *commentRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	var commentMs []model.CommentModel
	if err := repo.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at").
		Find(&commentMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list comments")
	}

	comments := make([]*entity.Comment, 0, len(commentMs))
	for i := range commentMs {
		comments = append(comments, toCommentDomain(&commentMs[i]))
	}

	return comments, nil
}

// DeleteByMovie removes all comments attached to a movie.
func (repo *commentRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Delete(&model.CommentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete comments")
	}

	return nil
}

// ratingRepository implements the repository.RatingRepository interface using GORM.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Create persists a new rating entity to the database.
func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrMovieNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// ListByMovie retrieves all ratings attached to a movie, oldest first.
func (repo *ratingRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Rating, error) {
	var ratingMs []model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Order("created_at").
		Find(&ratingMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list ratings")
	}

	ratings := make([]*entity.Rating, 0, len(ratingMs))
	for i := range ratingMs {
		ratings = append(ratings, toRatingDomain(&ratingMs[i]))
	}

	return ratings, nil
}

// DeleteByMovie removes all ratings attached to a movie.
func (repo *ratingRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("movie_id = ?", movieID).
		Delete(&model.RatingModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ratings")
	}

	return nil
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		MovieID:   data.MovieID,
		UserID:    data.UserID,
		Body:      data.Body,
		CreatedAt: data.CreatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:      data.ID,
		MovieID: data.MovieID,
		UserID:  data.UserID,
		Body:    data.Body,
	}
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	if data == nil {
		return nil
	}

	return &entity.Rating{
		ID:        data.ID,
		MovieID:   data.MovieID,
		UserID:    data.UserID,
		Score:     data.Score,
		CreatedAt: data.CreatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	if data == nil {
		return nil
	}

	return &model.RatingModel{
		ID:      data.ID,
		MovieID: data.MovieID,
		UserID:  data.UserID,
		Score:   data.Score,
	}
}
