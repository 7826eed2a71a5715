// Package mockrepo provides testify mocks for the domain repository interfaces.
package mockrepo

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
)

// MockUserRepository is a testify mock of repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}

// MockMovieRepository is a testify mock of repository.MovieRepository.
type MockMovieRepository struct {
	mock.Mock
}

func (m *MockMovieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) List(ctx context.Context, offset, limit int) ([]*entity.Movie, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieRepository) Create(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)

	return args.Error(0)
}

func (m *MockMovieRepository) Update(ctx context.Context, movie *entity.Movie) error {
	args := m.Called(ctx, movie)

	return args.Error(0)
}

func (m *MockMovieRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

// MockCommentRepository is a testify mock of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	args := m.Called(ctx, comment)

	return args.Error(0)
}

func (m *MockCommentRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	args := m.Called(ctx, movieID)

	return args.Error(0)
}

// MockRatingRepository is a testify mock of repository.RatingRepository.
type MockRatingRepository struct {
	mock.Mock
}

func (m *MockRatingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	args := m.Called(ctx, rating)

	return args.Error(0)
}

func (m *MockRatingRepository) ListByMovie(ctx context.Context, movieID uuid.UUID) ([]*entity.Rating, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Rating), args.Error(1)
}

func (m *MockRatingRepository) DeleteByMovie(ctx context.Context, movieID uuid.UUID) error {
	args := m.Called(ctx, movieID)

	return args.Error(0)
}

// MockRepositoryFactory is a testify mock of repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) MovieRepo() repository.MovieRepository {
	args := m.Called()

	return args.Get(0).(repository.MovieRepository)
}

func (m *MockRepositoryFactory) CommentRepo() repository.CommentRepository {
	args := m.Called()

	return args.Get(0).(repository.CommentRepository)
}

func (m *MockRepositoryFactory) RatingRepo() repository.RatingRepository {
	args := m.Called()

	return args.Get(0).(repository.RatingRepository)
}

// FakeTransactionManager satisfies repository.TransactionManager by invoking
// the callback with a fixed factory, without any real transaction. The error
// returned by the callback is passed through, as a real manager would after
// rolling back.
type FakeTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (m *FakeTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(m.Factory)
}
