// Package mockuc provides testify mocks for the usecase interfaces.
package mockuc

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"
)

// MockUserUsecase is a testify mock of usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Signup(ctx context.Context, input usecase.SignupInput) (*usecase.SignupOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.SignupOutput), args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.LoginOutput), args.Error(1)
}

func (m *MockUserUsecase) Resolve(ctx context.Context, token string) (entity.Identity, error) {
	args := m.Called(ctx, token)

	return args.Get(0).(entity.Identity), args.Error(1)
}

// MockMovieUsecase is a testify mock of usecase.MovieUsecase.
type MockMovieUsecase struct {
	mock.Mock
}

func (m *MockMovieUsecase) Create(ctx context.Context, caller entity.Identity, input usecase.CreateMovieInput) (*entity.Movie, error) {
	args := m.Called(ctx, caller, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieUsecase) List(ctx context.Context, skip, limit int) ([]*entity.Movie, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Movie), args.Error(1)
}

func (m *MockMovieUsecase) Get(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieUsecase) Update(ctx context.Context, caller entity.Identity, id uuid.UUID, input usecase.UpdateMovieInput) (*entity.Movie, error) {
	args := m.Called(ctx, caller, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Movie), args.Error(1)
}

func (m *MockMovieUsecase) Delete(ctx context.Context, caller entity.Identity, id uuid.UUID) error {
	args := m.Called(ctx, caller, id)

	return args.Error(0)
}

// MockReviewUsecase is a testify mock of usecase.ReviewUsecase.
type MockReviewUsecase struct {
	mock.Mock
}

func (m *MockReviewUsecase) AddComment(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input usecase.AddCommentInput) (*entity.Comment, error) {
	args := m.Called(ctx, caller, movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockReviewUsecase) ListComments(ctx context.Context, movieID uuid.UUID) ([]*entity.Comment, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Comment), args.Error(1)
}

func (m *MockReviewUsecase) AddRating(ctx context.Context, caller entity.Identity, movieID uuid.UUID, input usecase.AddRatingInput) (*entity.Rating, error) {
	args := m.Called(ctx, caller, movieID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Rating), args.Error(1)
}

func (m *MockReviewUsecase) ListRatings(ctx context.Context, movieID uuid.UUID) (*usecase.RatingSummary, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.RatingSummary), args.Error(1)
}
