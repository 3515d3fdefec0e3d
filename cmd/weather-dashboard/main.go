package main

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/application/controller"
	"weather-dashboard/internal/application/middleware"
	"weather-dashboard/internal/application/schedule"
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/health"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/internal/infra/database/gorm"
	"weather-dashboard/internal/infra/database/sqldb"
	"weather-dashboard/pkg/cache"
	pkghttp "weather-dashboard/pkg/http"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
	"weather-dashboard/pkg/resource"
)

// @title Weather Dashboard API
// @version 1.0
// @description City catalog, per-user saved cities and cached Open-Meteo weather resolution.
// @BasePath /weather-dashboard
func main() {
	log.Info(msg.GetMessage("app.start"))

	// Init infra
	e := echo.New()
	e.HideBanner = true
	middleware.SetupValidator(e)
	middleware.SetupRequestLogger(e)
	apiGroup := e.Group(resource.GetString("app.server.context-path"))

	// Init DB gateways
	var healthDBGateway db.HealthDBGateway
	var cityGateway db.CityGateway
	switch resource.GetString("app.db.engine") {
	case "sql":
		sqldb.Open()
		healthDBGateway = db.NewSQLHealthDBGateway(sqldb.Db)
		cityGateway = db.NewSQLCityGateway(sqldb.Db)
	default:
		gorm.Open()
		healthDBGateway = db.NewGormHealthDBGateway(gorm.Db)
		cityGateway = db.NewGormCityGateway(gorm.Db)
	}

	// Init API gateways
	forecastGateway := api.NewForecastGateway(resource.GetString("app.forecast.url"), pkghttp.ClientOptions{
		ConnectionTimeout: resource.GetDuration("app.forecast.connection-timeout"),
		ReadTimeout:       resource.GetDuration("app.forecast.read-timeout"),
	})
	authGateway := api.NewAuthGateway(
		resource.GetString("app.auth.url"),
		resource.GetString("app.auth.api-key"),
		pkghttp.ClientOptions{},
	)

	// Init cache tiers
	sweepChance := resource.GetFloat64("app.cache.sweep-chance")
	snapshots := cache.New[model.WeatherSnapshot](cache.WithSweepChance[model.WeatherSnapshot](sweepChance))
	cities := cache.New[entity.CityWeather](cache.WithSweepChance[entity.CityWeather](sweepChance))

	// Init UseCase
	weatherUseCase := weather.NewWeatherUseCase(
		resource.GetDuration("app.cache.ttl"),
		forecastGateway,
		cityGateway,
		snapshots,
		cities,
	)
	healthUseCase := health.NewHealthUseCase(healthDBGateway, weatherUseCase)

	// Init Controller
	healthController := controller.NewHealthController(apiGroup, healthUseCase)
	weatherController := controller.NewWeatherController(apiGroup, weatherUseCase)
	cityController := controller.NewCityController(apiGroup, weatherUseCase)
	savedCityController := controller.NewSavedCityController(apiGroup, weatherUseCase)
	authController := controller.NewAuthController(apiGroup, authGateway)

	// Init Routes
	healthController.InitHealthRoutes()
	weatherController.InitWeatherRoutes()
	cityController.InitCityRoutes()
	savedCityController.InitSavedCityRoutes()
	authController.InitAuthRoutes()
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// Init Schedule
	if resource.GetBool("app.cache.sweep.enabled") {
		sweepScheduler := schedule.NewCacheSweepScheduler(weatherUseCase)
		sweepScheduler.InitCacheSweepScheduleTasks()
	}
	if resource.GetBool("app.cache.warm.enabled") {
		warmScheduler, err := schedule.NewCacheWarmScheduler(weatherUseCase)
		if err != nil {
			log.Fatalf("Failed to create cache warm scheduler: %v", err)
		}
		if err := warmScheduler.InitCacheWarmScheduleTasks(); err != nil {
			log.Fatalf("Failed to start cache warm scheduler: %v", err)
		}
	}

	// Start Routes
	e.Logger.Fatal(e.Start(":" + resource.GetString("app.server.port")))
	log.Info(msg.GetMessage("app.started"))
}
