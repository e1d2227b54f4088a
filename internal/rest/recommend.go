package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"crewFit/business/recommend"
	"crewFit/domain"
	"crewFit/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
	}

	RecommendService interface {
		RecommendBatch(ctx context.Context, users []domain.User, crews []domain.Crew) (domain.BatchSummary, error)
		LatestResult(ctx context.Context, userID int64) (*domain.RecommendationResult, error)
	}

	TotalUserData struct {
		Users []domain.User `json:"user_data" validate:"required,min=1"`
	}

	// Crews may be empty; every user then gets an empty recommendation list.
	TotalCrewData struct {
		Crews []domain.Crew `json:"crew_data"`
	}

	BatchRequest struct {
		TotalUsers TotalUserData `json:"total_users" validate:"required"`
		TotalCrews TotalCrewData `json:"total_crews"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// POST /api/v1/users/crew-recommendation
func (h *RecommendHandler) RecommendBatch(c echo.Context) error {
	var req BatchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.RecommendBatchRequests.Inc()
	timer := prometheus.NewTimer(metrics.RecommendBatchLatency)
	defer timer.ObserveDuration()

	summary, err := h.recommendService.RecommendBatch(c.Request().Context(), req.TotalUsers.Users, req.TotalCrews.Crews)
	if err != nil {
		if errors.Is(err, recommend.ErrInvalidSportID) || errors.Is(err, recommend.ErrMalformedProfile) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(summary))
}

// GET /api/v1/users/:id/crew-recommendation/latest
func (h *RecommendHandler) LatestResult(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	result, err := h.recommendService.LatestResult(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}
	if result == nil {
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no recommendation found"})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}
