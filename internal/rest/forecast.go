package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"crewFit/business/forecast"
	"crewFit/domain"
	"crewFit/pkg/metrics"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	ForecastHandler struct {
		validate        *validator.Validate
		forecastService ForecastService
	}

	ForecastService interface {
		Forecast(ctx context.Context, userID int64, days []domain.ExerciseDay) (domain.WeightPrediction, error)
		ForecastExtra(ctx context.Context, userID int64, days, extraDays []domain.ExerciseDay, detail domain.ExerciseDetail) (domain.WeightPrediction, error)
	}

	ForecastRequest struct {
		ExerciseData []domain.ExerciseDay `json:"exercise_data" validate:"required,min=1,max=7"`
	}

	ExtraForecastRequest struct {
		ExerciseDetail    domain.ExerciseDetail `json:"exercise_detail" validate:"required"`
		ExerciseData      []domain.ExerciseDay  `json:"exercise_data" validate:"required,min=1,max=7"`
		ExtraExerciseData []domain.ExerciseDay  `json:"extra_exercise_data" validate:"required,min=1"`
	}
)

func NewForecastHandler(svc ForecastService) *ForecastHandler {
	return &ForecastHandler{
		validate:        validator.New(),
		forecastService: svc,
	}
}

// POST /api/v1/users/:id/body/prediction
func (h *ForecastHandler) Predict(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	var req ForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.ForecastRequests.WithLabelValues("basic").Inc()

	prediction, err := h.forecastService.Forecast(c.Request().Context(), userID, req.ExerciseData)
	if err != nil {
		if errors.Is(err, forecast.ErrEmptyHistory) || errors.Is(err, forecast.ErrInvalidHistory) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}

// POST /api/v1/users/:id/body/prediction/extra
func (h *ForecastHandler) PredictExtra(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || userID <= 0 {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid user id"})
	}

	var req ExtraForecastRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	metrics.ForecastRequests.WithLabelValues("extra").Inc()

	prediction, err := h.forecastService.ForecastExtra(
		c.Request().Context(), userID, req.ExerciseData, req.ExtraExerciseData, req.ExerciseDetail,
	)
	if err != nil {
		if errors.Is(err, forecast.ErrEmptyHistory) || errors.Is(err, forecast.ErrInvalidHistory) {
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}
