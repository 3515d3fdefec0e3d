package health

import (
	"strconv"

	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
)

type healthUseCase struct {
	dbGateway db.HealthDBGateway
	cache     CacheReporter
}

func NewHealthUseCase(dbGateway db.HealthDBGateway, cache CacheReporter) UseCase {
	return &healthUseCase{
		dbGateway: dbGateway,
		cache:     cache,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	dbHealth := useCase.dbGateway.Health()

	snapshots, cities := useCase.cache.CacheSizes()
	cacheHealth := model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"rawWeatherEntries":    strconv.Itoa(snapshots),
			"formattedCityEntries": strconv.Itoa(cities),
		},
	}

	overallStatus := model.StatusUp
	if dbHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:   overallStatus,
		Database: dbHealth,
		Cache:    cacheHealth,
	}
}
