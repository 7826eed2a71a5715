package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/usecase"
)

// ReviewHandler holds dependencies for the comment and rating endpoints.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddComment handles the comment creation request.
func (h *ReviewHandler) AddComment(c echo.Context) error {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	var input usecase.AddCommentInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	comment, err := h.uc.AddComment(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithData(c, "Comment created successfully", response.NewCommentView(comment))
}

// ListComments handles the comment listing request.
func (h *ReviewHandler) ListComments(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	comments, err := h.uc.ListComments(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Data(c, response.NewCommentViews(comments))
}

// AddRating handles the rating creation request.
func (h *ReviewHandler) AddRating(c echo.Context) error {
	caller, ok := middleware.CurrentIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	id, err := movieID(c)
	if err != nil {
		return err
	}

	var input usecase.AddRatingInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	rating, err := h.uc.AddRating(c.Request().Context(), caller, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.WithData(c, "Rating created successfully", response.NewRatingView(rating))
}

// ListRatings handles the rating listing request. The average appears only
// when at least one rating exists.
func (h *ReviewHandler) ListRatings(c echo.Context) error {
	id, err := movieID(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.ListRatings(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	list := response.RatingList{Data: response.NewRatingViews(summary.Ratings)}
	if len(summary.Ratings) > 0 {
		average := summary.Average
		list.AverageRating = &average
	}

	return c.JSON(http.StatusOK, list)
}
