package controller

import (
	"net/http"

	"weather-dashboard/internal/domain/usecase/weather"

	"github.com/labstack/echo/v4"
)

type CityController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewCityController(api *echo.Group, useCase weather.UseCase) *CityController {
	return &CityController{api: api, useCase: useCase}
}

// InitCityRoutes initializes city catalog routes
func (controller *CityController) InitCityRoutes() {
	controller.api.GET("/cities", controller.GetCities)
	controller.api.GET("/cities/search", controller.SearchCities)
}

// GetCities godoc
// @Summary Get the city catalog
// @Description Retrieve all catalog cities with their stored coordinates
// @Tags cities
// @Accept json
// @Produce json
// @Success 200 {array} entity.City "City catalog"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities [get]
func (controller *CityController) GetCities(c echo.Context) error {
	cities, err := controller.useCase.GetCities()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cities)
}

// SearchCities godoc
// @Summary Search catalog cities by name
// @Description Case-insensitive substring search over city names, at most 10 results; queries under 2 characters return an empty list
// @Tags cities
// @Accept json
// @Produce json
// @Param query query string true "Name substring"
// @Success 200 {array} entity.City "Matching cities"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /cities/search [get]
func (controller *CityController) SearchCities(c echo.Context) error {
	cities, err := controller.useCase.SearchCities(c.QueryParam("query"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cities)
}
