package handler

import (
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"
)

// MovieHandler holds dependencies for the movie catalogue endpoints.
type MovieHandler struct {
	uc     usecase.MovieUsecase
	logger *slog.Logger
}

// NewMovieHandler is the constructor for MovieHandler, injected by Fx.
func NewMovieHandler(uc usecase.MovieUsecase, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{
		uc:     uc,
		logger: logger,
	}
}

// movieID parses the path parameter. A malformed ID cannot name any movie,
// so it reports the same not-found error as a missing one.
func movieID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, errors.WithStack(domainerrors.ErrMovieNotFound)
	}

	return id, nil
}

// Create handles the movie creation request.
func (h *MovieHandler) Create(c echo.Context) error {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input usecase.CreateMovieInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	movie, err := h.uc.Create(c.Request().Context(), caller, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithData(c, "Movie created successfully", response.NewMovieView(movie))
}

// List handles the paginated movie listing request.
func (h *MovieHandler) List(c echo.Context) error {
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	movies, err := h.uc.List(c.Request().Context(), skip, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, response.NewMovieViews(movies))
}

// Get handles the single movie lookup request.
func (h *MovieHandler) Get(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	movie, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, response.NewMovieView(movie))
}

// Update handles the partial movie update request.
func (h *MovieHandler) Update(c echo.Context) error {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateMovieInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	movie, err := h.uc.Update(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithData(c, "Movie updated successfully", response.NewMovieView(movie))
}

// Delete handles the movie deletion request.
func (h *MovieHandler) Delete(c echo.Context) error {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), caller, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, "Movie deleted successfully")
}
