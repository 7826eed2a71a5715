package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"
)

// movieRepository implements the repository.MovieRepository interface using GORM.
type movieRepository struct {
	db *gorm.DB
}

// NewMovieRepository is the constructor for movieRepository.
func NewMovieRepository(db *gorm.DB) repository.MovieRepository {
	return &movieRepository{db: db}
}

// FindByID retrieves a single movie by its unique ID.
func (repo *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	var movieM model.MovieModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&movieM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMovieNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find movie by id")
	}

	return toMovieDomain(&movieM), nil
}

// List retrieves a page of movies ordered by creation time.
func (repo *movieRepository) List(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	var movieMs []model.MovieModel
	if err := repo.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&movieMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list movies")
	}

	movies := make([]*entity.Movie, 0, len(movieMs))
	for i := range movieMs {
		movies = append(movies, toMovieDomain(&movieMs[i]))
	}

	return movies, nil
}

// Create persists a new movie entity to the database.
func (repo *movieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	movieM := fromMovieDomain(movie)

	if err := repo.db.WithContext(ctx).Create(movieM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "invalid owner reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create movie")
	}

	movie.ID = movieM.ID
	movie.CreatedAt = movieM.CreatedAt
	movie.UpdatedAt = movieM.UpdatedAt

	return nil
}

// Update modifies the mutable columns of an existing movie. OwnerID is
// deliberately excluded: ownership is immutable after creation.
func (repo *movieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MovieModel{}).
		Where("id = ?", movie.ID).
		Updates(map[string]any{
			"title":       movie.Title,
			"description": movie.Description,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// Delete removes a movie by its unique ID.
func (repo *movieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.MovieModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete movie")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMovieNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toMovieDomain converts a GORM MovieModel to a domain Movie entity.
func toMovieDomain(data *model.MovieModel) *entity.Movie {
	if data == nil {
		return nil
	}

	return &entity.Movie{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromMovieDomain converts a domain Movie entity to a GORM MovieModel for persistence.
func fromMovieDomain(data *entity.Movie) *model.MovieModel {
	if data == nil {
		return nil
	}

	return &model.MovieModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		OwnerID:     data.OwnerID,
	}
}
