package controller

import (
	"errors"
	"net/http"

	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type SavedCityController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewSavedCityController(api *echo.Group, useCase weather.UseCase) *SavedCityController {
	return &SavedCityController{api: api, useCase: useCase}
}

// InitSavedCityRoutes initializes saved-city routes
func (controller *SavedCityController) InitSavedCityRoutes() {
	controller.api.GET("/users/:userId/cities", controller.GetSavedCitiesWeather)
	controller.api.POST("/users/:userId/cities", controller.AddSavedCity)
	controller.api.DELETE("/users/:userId/cities/:cityId", controller.RemoveSavedCity)
}

// GetSavedCitiesWeather godoc
// @Summary Get weather for a user's saved cities
// @Description Resolve the weather card for every city the user saved, most recently saved first
// @Tags saved-cities
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Success 200 {array} entity.CityWeather "Weather cards in save order"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/cities [get]
func (controller *SavedCityController) GetSavedCitiesWeather(c echo.Context) error {
	cities, err := controller.useCase.GetSavedCitiesWeather(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cities)
}

// AddSavedCity godoc
// @Summary Save a city for a user
// @Description Add a catalog city to the user's saved list
// @Tags saved-cities
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param city body model.SaveCityDTO true "City to save"
// @Success 201 {object} map[string]string "City saved"
// @Failure 400 {object} map[string]string "Invalid request body or missing required fields"
// @Failure 409 {object} map[string]string "City already saved"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/cities [post]
func (controller *SavedCityController) AddSavedCity(c echo.Context) error {
	var dto model.SaveCityDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}
	if err := c.Validate(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("saved-city.error.missing-ids")})
	}

	err := controller.useCase.AddSavedCity(c.Param("userId"), dto.CityID)
	if errors.Is(err, weather.ErrCityAlreadySaved) {
		return c.JSON(http.StatusConflict, map[string]string{"error": msg.GetMessage("saved-city.error.already-saved")})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, map[string]string{"message": msg.GetMessage("saved-city.saved")})
}

// RemoveSavedCity godoc
// @Summary Remove a saved city for a user
// @Description Remove a city from the user's saved list
// @Tags saved-cities
// @Accept json
// @Produce json
// @Param userId path string true "User id"
// @Param cityId path int true "City id"
// @Success 204 "City removed"
// @Failure 400 {object} map[string]string "Invalid city id"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /users/{userId}/cities/{cityId} [delete]
func (controller *SavedCityController) RemoveSavedCity(c echo.Context) error {
	cityID := numberutils.ToIntWithDefault(c.Param("cityId"), 0)
	if cityID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("city.error.invalid-id")})
	}

	if err := controller.useCase.RemoveSavedCity(c.Param("userId"), cityID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
