package controller

import (
	"net/http"

	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type WeatherController struct {
	api     *echo.Group
	useCase weather.UseCase
}

func NewWeatherController(api *echo.Group, useCase weather.UseCase) *WeatherController {
	return &WeatherController{api: api, useCase: useCase}
}

// InitWeatherRoutes initializes weather routes
func (controller *WeatherController) InitWeatherRoutes() {
	controller.api.GET("/weather", controller.GetAllCitiesWeather)
	controller.api.GET("/weather/city/:id", controller.GetCityWeather)
}

// GetAllCitiesWeather godoc
// @Summary Get weather for all catalog cities
// @Description Resolve the current weather card for every city in the catalog; failed cities come back as degraded records with an error message
// @Tags weather
// @Accept json
// @Produce json
// @Success 200 {array} entity.CityWeather "Weather cards in catalog order"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /weather [get]
func (controller *WeatherController) GetAllCitiesWeather(c echo.Context) error {
	cities, err := controller.useCase.GetAllCitiesWeather()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, cities)
}

// GetCityWeather godoc
// @Summary Get weather for one city
// @Description Resolve the weather card for a single catalog city by id
// @Tags weather
// @Accept json
// @Produce json
// @Param id path int true "City id"
// @Success 200 {object} entity.CityWeather "Weather card"
// @Failure 400 {object} map[string]string "Invalid city id"
// @Failure 404 {object} map[string]string "City not found"
// @Router /weather/city/{id} [get]
func (controller *WeatherController) GetCityWeather(c echo.Context) error {
	cityID := numberutils.ToIntWithDefault(c.Param("id"), 0)
	if cityID <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg.GetMessage("city.error.invalid-id")})
	}

	cityWeather, err := controller.useCase.GetCityWeather(cityID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if cityWeather == nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("city.error.not-found", cityID)})
	}
	return c.JSON(http.StatusOK, cityWeather)
}
