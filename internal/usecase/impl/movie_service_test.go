package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/repository"
	mockrepo "cinelog/internal/mocks/repository"
	"cinelog/internal/usecase"
)

// movieServiceFixtures holds all test dependencies for movie service tests.
type movieServiceFixtures struct {
	service     usecase.MovieUsecase
	movieRepo   *mockrepo.MockMovieRepository
	commentRepo *mockrepo.MockCommentRepository
	ratingRepo  *mockrepo.MockRatingRepository
	factory     *mockrepo.MockRepositoryFactory
}

func createTestMovieService(t *testing.T) movieServiceFixtures {
	t.Helper()

	movieRepo := &mockrepo.MockMovieRepository{}
	commentRepo := &mockrepo.MockCommentRepository{}
	ratingRepo := &mockrepo.MockRatingRepository{}
	factory := &mockrepo.MockRepositoryFactory{}

	service := NewMovieService(MovieServiceParams{
		MovieRepo: movieRepo,
		TxManager: &mockrepo.FakeTransactionManager{Factory: factory},
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	t.Cleanup(func() {
		movieRepo.AssertExpectations(t)
		commentRepo.AssertExpectations(t)
		ratingRepo.AssertExpectations(t)
	})

	return movieServiceFixtures{
		service:     service,
		movieRepo:   movieRepo,
		commentRepo: commentRepo,
		ratingRepo:  ratingRepo,
		factory:     factory,
	}
}

func TestMovieService_Create_AssignsOwnerFromCaller(t *testing.T) {
	fx := createTestMovieService(t)

	caller := entity.Identity{ID: uuid.New(), Username: "alice"}

	fx.movieRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Movie")).
		Run(func(args mock.Arguments) {
			movie := args.Get(1).(*entity.Movie)
			movie.ID = uuid.New()
		}).
		Return(nil)

	movie, err := fx.service.Create(context.Background(), caller, usecase.CreateMovieInput{
		Title:       "Stalker",
		Description: "A guide leads two men into the Zone.",
	})

	require.NoError(t, err)
	assert.Equal(t, caller.ID, movie.OwnerID)
	assert.Equal(t, "Stalker", movie.Title)
}

func TestMovieService_List_ClampsPagination(t *testing.T) {
	fx := createTestMovieService(t)

	// Negative skip and limit fall back to 0 and the configured default.
	fx.movieRepo.On("List", mock.Anything, 0, 5).
		Return([]*entity.Movie{}, nil).Once()
	// Oversized limit is capped at the configured maximum.
	fx.movieRepo.On("List", mock.Anything, 10, 100).
		Return([]*entity.Movie{}, nil).Once()

	_, err := fx.service.List(context.Background(), -3, -1)
	require.NoError(t, err)

	_, err = fx.service.List(context.Background(), 10, 5000)
	require.NoError(t, err)
}

func TestMovieService_Get_NotFound(t *testing.T) {
	fx := createTestMovieService(t)

	id := uuid.New()
	fx.movieRepo.On("FindByID", mock.Anything, id).
		Return(nil, repository.ErrMovieNotFound)

	movie, err := fx.service.Get(context.Background(), id)

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestMovieService_Update_Success(t *testing.T) {
	fx := createTestMovieService(t)

	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	id := uuid.New()
	stored := &entity.Movie{ID: id, Title: "Old title", Description: "Old description", OwnerID: caller.ID}

	fx.movieRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	fx.movieRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.Movie")).Return(nil)

	newTitle := "New title"
	movie, err := fx.service.Update(context.Background(), caller, id, usecase.UpdateMovieInput{
		Title: &newTitle,
	})

	require.NoError(t, err)
	assert.Equal(t, "New title", movie.Title)
	// Fields absent from the patch keep their stored values.
	assert.Equal(t, "Old description", movie.Description)
}

func TestMovieService_Update_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestMovieService(t)

	id := uuid.New()
	stored := &entity.Movie{ID: id, Title: "Stalker", OwnerID: uuid.New()}
	intruder := entity.Identity{ID: uuid.New(), Username: "mallory"}

	fx.movieRepo.On("FindByID", mock.Anything, id).Return(stored, nil)

	newTitle := "Hijacked"
	movie, err := fx.service.Update(context.Background(), intruder, id, usecase.UpdateMovieInput{
		Title: &newTitle,
	})

	assert.Nil(t, movie)
	assert.ErrorIs(t, err, domainerrors.ErrMovieUpdateForbidden)
	fx.movieRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestMovieService_Update_AbsenceWinsOverAuthorization(t *testing.T) {
	fx := createTestMovieService(t)

	id := uuid.New()
	intruder := entity.Identity{ID: uuid.New(), Username: "mallory"}

	fx.movieRepo.On("FindByID", mock.Anything, id).
		Return(nil, repository.ErrMovieNotFound)

	newTitle := "Anything"
	_, err := fx.service.Update(context.Background(), intruder, id, usecase.UpdateMovieInput{
		Title: &newTitle,
	})

	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestMovieService_Delete_RemovesMovieWithReviews(t *testing.T) {
	fx := createTestMovieService(t)

	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	id := uuid.New()
	stored := &entity.Movie{ID: id, Title: "Stalker", OwnerID: caller.ID}

	fx.factory.On("MovieRepo").Return(fx.movieRepo)
	fx.factory.On("CommentRepo").Return(fx.commentRepo)
	fx.factory.On("RatingRepo").Return(fx.ratingRepo)

	fx.movieRepo.On("FindByID", mock.Anything, id).Return(stored, nil)
	fx.commentRepo.On("DeleteByMovie", mock.Anything, id).Return(nil)
	fx.ratingRepo.On("DeleteByMovie", mock.Anything, id).Return(nil)
	fx.movieRepo.On("Delete", mock.Anything, id).Return(nil)

	err := fx.service.Delete(context.Background(), caller, id)

	require.NoError(t, err)
}

func TestMovieService_Delete_ForbiddenForNonOwner(t *testing.T) {
	fx := createTestMovieService(t)

	id := uuid.New()
	stored := &entity.Movie{ID: id, Title: "Stalker", OwnerID: uuid.New()}
	intruder := entity.Identity{ID: uuid.New(), Username: "mallory"}

	fx.factory.On("MovieRepo").Return(fx.movieRepo)
	fx.movieRepo.On("FindByID", mock.Anything, id).Return(stored, nil)

	err := fx.service.Delete(context.Background(), intruder, id)

	assert.ErrorIs(t, err, domainerrors.ErrMovieDeleteForbidden)
	fx.movieRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	fx.commentRepo.AssertNotCalled(t, "DeleteByMovie", mock.Anything, mock.Anything)
}

func TestMovieService_Delete_NotFound(t *testing.T) {
	fx := createTestMovieService(t)

	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	id := uuid.New()

	fx.factory.On("MovieRepo").Return(fx.movieRepo)
	fx.movieRepo.On("FindByID", mock.Anything, id).
		Return(nil, repository.ErrMovieNotFound)

	err := fx.service.Delete(context.Background(), caller, id)

	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}
