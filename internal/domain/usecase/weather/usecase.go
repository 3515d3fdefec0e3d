package weather

import (
	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
)

type UseCase interface {
	// GetCurrentWeather returns the normalized forecast for a coordinate pair,
	// served from the raw-weather cache tier when a valid entry exists
	GetCurrentWeather(lat float64, lon float64) (model.WeatherSnapshot, error)

	// GetCities returns the full city catalog
	GetCities() ([]entity.City, error)

	// SearchCities returns catalog cities matching a name substring,
	// case-insensitive, capped at 10; queries under 2 characters return empty
	SearchCities(query string) ([]entity.City, error)

	// GetCityWeather resolves one city's formatted weather card; (nil, nil)
	// when the city id is not in the catalog
	GetCityWeather(cityID int) (*entity.CityWeather, error)

	// GetAllCitiesWeather resolves all catalog cities concurrently, degrading
	// failed cities to error records instead of failing the batch
	GetAllCitiesWeather() ([]entity.CityWeather, error)

	// GetSavedCitiesWeather resolves a user's saved cities, most recently
	// saved first, with the same per-city degradation
	GetSavedCitiesWeather(userID string) ([]entity.CityWeather, error)

	// AddSavedCity adds a city to the user's saved list; ErrCityAlreadySaved
	// when the pair already exists
	AddSavedCity(userID string, cityID int) error

	// RemoveSavedCity removes a city from the user's saved list
	RemoveSavedCity(userID string, cityID int) error

	// SweepCaches removes expired entries from both cache tiers and returns
	// the removed counts
	SweepCaches() (snapshots int, cities int)

	// CacheSizes returns the current entry counts of both cache tiers
	CacheSizes() (snapshots int, cities int)
}
