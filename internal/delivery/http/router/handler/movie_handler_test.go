package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	mockuc "cinelog/internal/mocks/usecase"
	"cinelog/internal/usecase"
)

func newMovieContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, id string) echo.Context {
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetParamNames("id")
		c.SetParamValues(id)
	}

	return c
}

func TestMovieHandler_Create_Success(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	movieID := uuid.New()

	uc.On("Create", mock.Anything, caller, usecase.CreateMovieInput{
		Title: "Stalker", Description: "The Zone.",
	}).Return(&entity.Movie{
		ID: movieID, Title: "Stalker", Description: "The Zone.", OwnerID: caller.ID,
	}, nil)

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies", `{"title":"Stalker","description":"The Zone."}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, "")
	middleware.SetIdentity(c, caller)

	err := NewMovieHandler(uc, discardLogger()).Create(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"message":"Movie created successfully"`)
	assert.Contains(t, rec.Body.String(), movieID.String())
	assert.Contains(t, rec.Body.String(), caller.ID.String())
}

func TestMovieHandler_Create_MissingTitle(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies", `{"description":"No title."}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, "")
	middleware.SetIdentity(c, entity.Identity{ID: uuid.New(), Username: "alice"})

	err := NewMovieHandler(uc, discardLogger()).Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything, mock.Anything)
}

func TestMovieHandler_Create_WithoutIdentity(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}

	e := newTestEcho()
	req := jsonRequest(http.MethodPost, "/movies", `{"title":"Stalker"}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, "")

	err := NewMovieHandler(uc, discardLogger()).Create(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestMovieHandler_List_PassesPagination(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}
	uc.On("List", mock.Anything, 10, 20).Return([]*entity.Movie{}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies?skip=10&limit=20", nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, "")

	err := NewMovieHandler(uc, discardLogger()).List(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestMovieHandler_Get_Success(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}
	movieID := uuid.New()
	uc.On("Get", mock.Anything, movieID).Return(&entity.Movie{
		ID: movieID, Title: "Stalker", OwnerID: uuid.New(),
	}, nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies/"+movieID.String(), nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())

	err := NewMovieHandler(uc, discardLogger()).Get(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Stalker"`)
}

func TestMovieHandler_Get_MalformedIDIsNotFound(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/movies/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, "not-a-uuid")

	err := NewMovieHandler(uc, discardLogger()).Get(c)

	assert.ErrorIs(t, err, domainerrors.ErrMovieNotFound)
	uc.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestMovieHandler_Update_ForbiddenPropagates(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "mallory"}
	movieID := uuid.New()

	uc.On("Update", mock.Anything, caller, movieID, mock.Anything).
		Return(nil, domainerrors.ErrMovieUpdateForbidden)

	e := newTestEcho()
	req := jsonRequest(http.MethodPut, "/movies/"+movieID.String(), `{"title":"Hijacked"}`)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())
	middleware.SetIdentity(c, caller)

	err := NewMovieHandler(uc, discardLogger()).Update(c)

	assert.ErrorIs(t, err, domainerrors.ErrMovieUpdateForbidden)
}

func TestMovieHandler_Delete_Success(t *testing.T) {
	uc := &mockuc.MockMovieUsecase{}
	caller := entity.Identity{ID: uuid.New(), Username: "alice"}
	movieID := uuid.New()

	uc.On("Delete", mock.Anything, caller, movieID).Return(nil)

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/movies/"+movieID.String(), nil)
	rec := httptest.NewRecorder()
	c := newMovieContext(e, req, rec, movieID.String())
	middleware.SetIdentity(c, caller)

	err := NewMovieHandler(uc, discardLogger()).Delete(c)

	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"Movie deleted successfully"}`, rec.Body.String())
}
