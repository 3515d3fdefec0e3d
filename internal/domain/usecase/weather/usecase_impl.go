package weather

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/api"
	"weather-dashboard/internal/domain/gateway/db"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/weathercode"
	"weather-dashboard/pkg/cache"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/util/numberutils"
)

// ErrCityAlreadySaved is returned by AddSavedCity for a duplicate favorite pair.
var ErrCityAlreadySaved = db.ErrCityAlreadySaved

const (
	rawWeatherKeyPrefix    = "raw_weather"
	formattedCityKeyPrefix = "formatted_city"

	// degradedIcon marks fallback records; it is deliberately not a code from
	// the translation table.
	degradedIcon = "cloud-question"

	searchMinQueryLength = 2
	searchResultLimit    = 10
)

type weatherUseCase struct {
	cacheTTL   time.Duration
	apiGateway api.ForecastGateway
	dbGateway  db.CityGateway

	// Two independent cache tiers with their own TTL windows. A formatted-city
	// hit short-circuits the catalog lookup entirely; a formatted-city miss
	// still benefits from a warm raw-weather entry.
	snapshots *cache.Store[model.WeatherSnapshot]
	cities    *cache.Store[entity.CityWeather]
}

func NewWeatherUseCase(
	cacheTTL time.Duration,
	apiGateway api.ForecastGateway,
	dbGateway db.CityGateway,
	snapshots *cache.Store[model.WeatherSnapshot],
	cities *cache.Store[entity.CityWeather],
) UseCase {
	return &weatherUseCase{
		cacheTTL:   cacheTTL,
		apiGateway: apiGateway,
		dbGateway:  dbGateway,
		snapshots:  snapshots,
		cities:     cities,
	}
}

// rawWeatherKey derives the raw-weather cache key from coordinates rounded to
// 4 decimal places (~11m), so repeated calls for the same city hit the same
// entry despite floating-point jitter in the stored coordinates.
func rawWeatherKey(lat float64, lon float64) string {
	return fmt.Sprintf("%s_%.4f_%.4f", rawWeatherKeyPrefix, lat, lon)
}

func formattedCityKey(cityID int) string {
	return fmt.Sprintf("%s_%d", formattedCityKeyPrefix, cityID)
}

// GetCurrentWeather returns the normalized forecast for a coordinate pair
func (uc *weatherUseCase) GetCurrentWeather(lat float64, lon float64) (model.WeatherSnapshot, error) {
	key := rawWeatherKey(lat, lon)

	if snapshot, ok := uc.snapshots.GetValid(key); ok {
		return snapshot, nil
	}

	snapshot, err := uc.apiGateway.GetForecast(lat, lon)
	if err != nil {
		return model.WeatherSnapshot{}, fmt.Errorf("failed to fetch weather data: %w", err)
	}

	uc.snapshots.Set(key, *snapshot, uc.cacheTTL)
	uc.snapshots.MaybeSweep()

	return *snapshot, nil
}

// GetCities returns the full city catalog
func (uc *weatherUseCase) GetCities() ([]entity.City, error) {
	cities, err := uc.dbGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cities from database: %w", err)
	}
	return cities, nil
}

// SearchCities returns catalog cities matching a name substring
func (uc *weatherUseCase) SearchCities(query string) ([]entity.City, error) {
	trimmed := strings.TrimSpace(query)
	if len(trimmed) < searchMinQueryLength {
		return []entity.City{}, nil
	}

	cities, err := uc.dbGateway.SearchByName(trimmed, searchResultLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to search cities: %w", err)
	}
	return cities, nil
}

// GetCityWeather resolves one city's formatted weather card
func (uc *weatherUseCase) GetCityWeather(cityID int) (*entity.CityWeather, error) {
	key := formattedCityKey(cityID)

	if cityWeather, ok := uc.cities.GetValid(key); ok {
		return &cityWeather, nil
	}

	city, err := uc.dbGateway.FindByID(cityID)
	if err != nil {
		// Lookup failure is treated as absence here so batch callers never
		// crash on one bad row; mutations propagate store errors instead.
		log.Warnf("Failed to fetch city %d from catalog: %v", cityID, err)
		return nil, nil
	}
	if city == nil {
		return nil, nil
	}

	snapshot, err := uc.GetCurrentWeather(city.Lat, city.Lon)
	if err != nil {
		// Degraded records are never cached, so the next call retries.
		degraded := degradedCityWeather(*city, fmt.Sprintf("Failed to load weather data: %v", err))
		return &degraded, nil
	}

	cityWeather := formatCityWeather(*city, snapshot)
	uc.cities.Set(key, cityWeather, uc.cacheTTL)

	return &cityWeather, nil
}

// GetAllCitiesWeather resolves all catalog cities concurrently
func (uc *weatherUseCase) GetAllCitiesWeather() ([]entity.CityWeather, error) {
	cities, err := uc.dbGateway.FindAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cities from database: %w", err)
	}

	return uc.resolveCitiesInParallel(cities), nil
}

// GetSavedCitiesWeather resolves a user's saved cities
func (uc *weatherUseCase) GetSavedCitiesWeather(userID string) ([]entity.CityWeather, error) {
	if userID == "" {
		return []entity.CityWeather{}, nil
	}

	cities, err := uc.dbGateway.FindSavedByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user's saved cities: %w", err)
	}

	return uc.resolveCitiesInParallel(cities), nil
}

// resolveCitiesInParallel fans out GetCityWeather over the city list, keeping
// the source order. One slow or failing city never blocks or fails siblings;
// batch latency is bounded by the slowest single resolution.
func (uc *weatherUseCase) resolveCitiesInParallel(cities []entity.City) []entity.CityWeather {
	results := make([]entity.CityWeather, len(cities))

	var wg sync.WaitGroup
	for i, city := range cities {
		wg.Add(1)
		go func(i int, city entity.City) {
			defer wg.Done()

			cityWeather, err := uc.GetCityWeather(city.ID)
			if err != nil || cityWeather == nil {
				results[i] = degradedCityWeather(city, fmt.Sprintf("Failed to load weather data for %s", city.Name))
				return
			}
			results[i] = *cityWeather
		}(i, city)
	}
	wg.Wait()

	return results
}

// AddSavedCity adds a city to the user's saved list
func (uc *weatherUseCase) AddSavedCity(userID string, cityID int) error {
	if userID == "" || cityID == 0 {
		return errors.New("user id and city id are required to save a city")
	}

	err := uc.dbGateway.SaveCity(userID, cityID)
	if errors.Is(err, db.ErrCityAlreadySaved) {
		return ErrCityAlreadySaved
	}
	if err != nil {
		return fmt.Errorf("failed to save city: %w", err)
	}

	log.Infof("City %d saved for user %s", cityID, userID)
	return nil
}

// RemoveSavedCity removes a city from the user's saved list
func (uc *weatherUseCase) RemoveSavedCity(userID string, cityID int) error {
	if userID == "" || cityID == 0 {
		return errors.New("user id and city id are required to remove a city")
	}

	if err := uc.dbGateway.DeleteSavedCity(userID, cityID); err != nil {
		return fmt.Errorf("failed to remove city: %w", err)
	}

	log.Infof("City %d removed for user %s", cityID, userID)
	return nil
}

// SweepCaches removes expired entries from both cache tiers
func (uc *weatherUseCase) SweepCaches() (int, int) {
	return uc.snapshots.Sweep(), uc.cities.Sweep()
}

// CacheSizes returns the current entry counts of both cache tiers
func (uc *weatherUseCase) CacheSizes() (int, int) {
	return uc.snapshots.Len(), uc.cities.Len()
}

// formatCityWeather builds the formatted weather card from a catalog city and
// a raw snapshot, rounding the numeric fields and translating the weather code.
func formatCityWeather(city entity.City, snapshot model.WeatherSnapshot) entity.CityWeather {
	details := weathercode.Lookup(snapshot.Current.WeatherCode, snapshot.Current.IsDay)
	daily := snapshot.Daily

	return entity.CityWeather{
		ID:          city.ID,
		Name:        city.Name,
		Country:     city.Country,
		Temperature: numberutils.RoundToInt(snapshot.Current.Temperature2m),
		Condition:   details.Condition,
		Humidity:    numberutils.RoundToInt(snapshot.Current.RelativeHumidity2m),
		WindSpeed:   numberutils.RoundToInt(snapshot.Current.WindSpeed10m),
		FeelsLike:   numberutils.RoundToInt(snapshot.Current.ApparentTemperature),
		Icon:        details.Icon,
		WeatherType: details.WeatherType,
		Loading:     false,
		Lat:         city.Lat,
		Lon:         city.Lon,
		Daily:       &daily,
	}
}

// degradedCityWeather builds the fallback record returned instead of
// propagating a weather fetch failure.
func degradedCityWeather(city entity.City, message string) entity.CityWeather {
	return entity.CityWeather{
		ID:          city.ID,
		Name:        city.Name,
		Country:     city.Country,
		Temperature: 0,
		Condition:   "Unknown",
		Humidity:    0,
		WindSpeed:   0,
		FeelsLike:   0,
		Icon:        degradedIcon,
		WeatherType: "default",
		Loading:     false,
		Error:       message,
		Lat:         city.Lat,
		Lon:         city.Lon,
	}
}
