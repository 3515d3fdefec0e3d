package health

import "weather-dashboard/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}

// CacheReporter exposes the cache tier sizes for the health report.
type CacheReporter interface {
	CacheSizes() (snapshots int, cities int)
}
