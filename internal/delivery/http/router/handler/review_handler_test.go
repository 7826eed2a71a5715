package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	mockuc "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"
)

func TestReviewHandler_AddComment_Success(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	movieID := uuid.New()

	uc.On("AddComment", mock.Anything, caller, movieID, usecase.AddCommentInput{
		Body: "Haunting.",
	}).Return(&entity.Comment{
		ID: uuid.New(), MovieID: movieID, UserID: caller.ID, Body: "Haunting.",
	}, nil)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies/"+movieID.String()+"/comments", `{"comment":"Haunting."}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())
	middleware.SetIdentity(c, caller)

	err := NewReviewHandler(uc, discardLogger()).AddComment(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Comment created successfully"`)
	assert.Contains(t, rec.Body.String(), `"comment":"Haunting."`)
}

func TestReviewHandler_AddComment_MovieMissing(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	movieID := uuid.New()

	uc.On("AddComment", mock.Anything, caller, movieID, mock.Anything).
		Return(nil, domainerrors.ErrMovieNotFound)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies/"+movieID.String()+"/comments", `{"comment":"Lost."}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())
	middleware.SetIdentity(c, caller)

	err := NewReviewHandler(uc, discardLogger()).AddComment(c)

	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
}

func TestReviewHandler_AddRating_OutOfRange(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	movieID := uuid.New()

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies/"+movieID.String()+"/ratings", `{"rating":11}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())
	middleware.SetIdentity(c, caller)

	err := NewReviewHandler(uc, discardLogger()).AddRating(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "AddRating", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_ListRatings_WithAverage(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	movieID := uuid.New()

	uc.On("ListRatings", mock.Anything, movieID).Return(&usecase.RatingSummary{
		Ratings: []*entity.Rating{
			{ID: uuid.New(), MovieID: movieID, Score: 5},
			{ID: uuid.New(), MovieID: movieID, Score: 4},
			{ID: uuid.New(), MovieID: movieID, Score: 3},
		},
		Average: 4,
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID.String()+"/ratings", nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())

	err := NewReviewHandler(uc, discardLogger()).ListRatings(c)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"average_rating":4`)
}

func TestReviewHandler_ListRatings_EmptyOmitsAverage(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	movieID := uuid.New()

	uc.On("ListRatings", mock.Anything, movieID).
		Return(&usecase.RatingSummary{Ratings: []*entity.Rating{}}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID.String()+"/ratings", nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())

	err := NewReviewHandler(uc, discardLogger()).ListRatings(c)

	require.NoError(t, err)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

func TestReviewHandler_ListComments_Success(t *testing.T) {
	uc := &mockuc.MockReviewUsecase{}
	movieID := uuid.New()

	uc.On("ListComments", mock.Anything, movieID).Return([]*entity.Comment{
		{ID: uuid.New(), MovieID: movieID, UserID: uuid.New(), Body: "First."},
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID.String()+"/comments", nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())

	err := NewReviewHandler(uc, discardLogger()).ListComments(c)

	require.NoError(t, err)
	assert.Contains(t, rec.Body.String(), `"comment":"First."`)
}
