package db

import "weather-dashboard/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
