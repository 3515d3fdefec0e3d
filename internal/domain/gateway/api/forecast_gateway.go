package api

import (
	"weather-dashboard/internal/domain/model"
)

// ForecastGateway defines the interface for calls to the upstream forecast provider
type ForecastGateway interface {
	// GetForecast fetches current conditions and the 7-day daily forecast for
	// a coordinate pair, normalized into a WeatherSnapshot with absolute
	// timestamps. It fails when the upstream call errors or the response is
	// missing the current or daily block.
	GetForecast(lat float64, lon float64) (*model.WeatherSnapshot, error)
}
