package router

import (
	"crewFit/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/users/crew-recommendation", handler.RecommendBatch, authRequired)
	api.GET("/users/:id/crew-recommendation/latest", handler.LatestResult, authRequired)
}

func SetForecastRoutes(api *echo.Group, handler *rest.ForecastHandler, authRequired echo.MiddlewareFunc) {
	api.POST("/users/:id/body/prediction", handler.Predict, authRequired)
	api.POST("/users/:id/body/prediction/extra", handler.PredictExtra, authRequired)
}
