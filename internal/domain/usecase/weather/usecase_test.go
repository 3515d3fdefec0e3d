package weather_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/weather"
	"weather-dashboard/pkg/cache"
)

type mockForecastGateway struct {
	mock.Mock
}

func (m *mockForecastGateway) GetForecast(lat float64, lon float64) (*model.WeatherSnapshot, error) {
	args := m.Called(lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.WeatherSnapshot), args.Error(1)
}

type mockCityGateway struct {
	mock.Mock
}

func (m *mockCityGateway) FindAll() ([]entity.City, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.City), args.Error(1)
}

func (m *mockCityGateway) FindByID(id int) (*entity.City, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.City), args.Error(1)
}

func (m *mockCityGateway) SearchByName(query string, limit int) ([]entity.City, error) {
	args := m.Called(query, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.City), args.Error(1)
}

func (m *mockCityGateway) FindSavedByUserID(userID string) ([]entity.City, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.City), args.Error(1)
}

func (m *mockCityGateway) SaveCity(userID string, cityID int) error {
	return m.Called(userID, cityID).Error(0)
}

func (m *mockCityGateway) DeleteSavedCity(userID string, cityID int) error {
	return m.Called(userID, cityID).Error(0)
}

func snapshotFixture(temperature float64, code int) *model.WeatherSnapshot {
	return &model.WeatherSnapshot{
		Current: model.CurrentConditions{
			Time:                time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC),
			Temperature2m:       temperature,
			RelativeHumidity2m:  64.3,
			ApparentTemperature: temperature - 1.2,
			IsDay:               true,
			WindSpeed10m:        12.6,
			WeatherCode:         code,
		},
		Daily: entity.DailyForecast{
			Time:             []time.Time{time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)},
			Temperature2mMax: []float64{24.1},
			Temperature2mMin: []float64{15.9},
			WeatherCode:      []int{code},
			PrecipitationSum: []float64{0},
		},
	}
}

func newUseCase(apiGateway *mockForecastGateway, dbGateway *mockCityGateway) weather.UseCase {
	return weather.NewWeatherUseCase(
		time.Hour,
		apiGateway,
		dbGateway,
		cache.New[model.WeatherSnapshot](cache.WithRand[model.WeatherSnapshot](func() float64 { return 1 })),
		cache.New[entity.CityWeather](cache.WithRand[entity.CityWeather](func() float64 { return 1 })),
	)
}

var lisbon = entity.City{ID: 1, Name: "Lisbon", Country: "Portugal", Lat: 38.7223, Lon: -9.1393}

func Test_GetCurrentWeather_CachesUpstreamResponse(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(snapshotFixture(21.7, 2), nil).Once()
	t.Cleanup(func() { apiGateway.AssertExpectations(t) })

	first, err := useCase.GetCurrentWeather(lisbon.Lat, lisbon.Lon)
	require.NoError(t, err)
	assert.Equal(t, 21.7, first.Current.Temperature2m)

	// second call within the TTL is served from cache, upstream is not hit again
	second, err := useCase.GetCurrentWeather(lisbon.Lat, lisbon.Lon)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func Test_GetCurrentWeather_KeyRoundsToFourDecimals(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	apiGateway.On("GetForecast", 38.72231, -9.13931).Return(snapshotFixture(21.7, 2), nil).Once()
	t.Cleanup(func() { apiGateway.AssertExpectations(t) })

	_, err := useCase.GetCurrentWeather(38.72231, -9.13931)
	require.NoError(t, err)

	// coordinates differing only past the 4th decimal map to the same entry
	second, err := useCase.GetCurrentWeather(38.72234, -9.13933)
	require.NoError(t, err)
	assert.Equal(t, 21.7, second.Current.Temperature2m)
}

func Test_GetCurrentWeather_UpstreamFailure(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(nil, errors.New("upstream down")).Once()
	t.Cleanup(func() { apiGateway.AssertExpectations(t) })

	_, err := useCase.GetCurrentWeather(lisbon.Lat, lisbon.Lon)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch weather data")
}

func Test_GetCityWeather_FormatsAndCaches(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindByID", lisbon.ID).Return(&lisbon, nil).Once()
	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(snapshotFixture(21.7, 2), nil).Once()
	t.Cleanup(func() {
		apiGateway.AssertExpectations(t)
		dbGateway.AssertExpectations(t)
	})

	card, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)
	require.NotNil(t, card)

	assert.Equal(t, "Lisbon", card.Name)
	assert.Equal(t, "Portugal", card.Country)
	assert.Equal(t, 22, card.Temperature)
	assert.Equal(t, 64, card.Humidity)
	assert.Equal(t, 13, card.WindSpeed)
	assert.Equal(t, 21, card.FeelsLike)
	assert.Equal(t, "Partly cloudy", card.Condition)
	assert.Equal(t, "mdi-weather-partly-cloudy", card.Icon)
	assert.Equal(t, "cloudy", card.WeatherType)
	assert.False(t, card.Degraded())
	require.NotNil(t, card.Daily)
	assert.Len(t, card.Daily.Time, 1)

	// a second call is a formatted-cache hit, no catalog or upstream traffic
	again, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)
	assert.Equal(t, *card, *again)
}

func Test_GetCityWeather_UnknownCity(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindByID", 999).Return(nil, nil).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	card, err := useCase.GetCityWeather(999)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func Test_GetCityWeather_CatalogFailureTreatedAsAbsent(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindByID", lisbon.ID).Return(nil, errors.New("connection refused")).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	card, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)
	assert.Nil(t, card)
}

func Test_GetCityWeather_DegradedRecordNotCached(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindByID", lisbon.ID).Return(&lisbon, nil).Twice()
	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(nil, errors.New("upstream down")).Once()
	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(snapshotFixture(21.7, 2), nil).Once()
	t.Cleanup(func() {
		apiGateway.AssertExpectations(t)
		dbGateway.AssertExpectations(t)
	})

	degraded, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)
	require.NotNil(t, degraded)
	assert.True(t, degraded.Degraded())
	assert.Equal(t, "Unknown", degraded.Condition)
	assert.Equal(t, "cloud-question", degraded.Icon)
	assert.Equal(t, "default", degraded.WeatherType)
	assert.Contains(t, degraded.Error, "Failed to load weather data")
	assert.Nil(t, degraded.Daily)

	// the failure was not cached, so the next call retries and succeeds
	recovered, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)
	require.NotNil(t, recovered)
	assert.False(t, recovered.Degraded())
	assert.Equal(t, 22, recovered.Temperature)
}

func Test_GetAllCitiesWeather_DegradesPerCity(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	porto := entity.City{ID: 2, Name: "Porto", Country: "Portugal", Lat: 41.1579, Lon: -8.6291}
	faro := entity.City{ID: 3, Name: "Faro", Country: "Portugal", Lat: 37.0194, Lon: -7.9304}
	catalog := []entity.City{lisbon, porto, faro}

	dbGateway.On("FindAll").Return(catalog, nil).Once()
	dbGateway.On("FindByID", lisbon.ID).Return(&lisbon, nil).Once()
	dbGateway.On("FindByID", porto.ID).Return(&porto, nil).Once()
	dbGateway.On("FindByID", faro.ID).Return(&faro, nil).Once()
	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(snapshotFixture(21.7, 2), nil).Once()
	apiGateway.On("GetForecast", porto.Lat, porto.Lon).Return(nil, errors.New("timeout")).Once()
	apiGateway.On("GetForecast", faro.Lat, faro.Lon).Return(snapshotFixture(27.2, 0), nil).Once()
	t.Cleanup(func() {
		apiGateway.AssertExpectations(t)
		dbGateway.AssertExpectations(t)
	})

	results, err := useCase.GetAllCitiesWeather()
	require.NoError(t, err)
	require.Len(t, results, 3)

	// catalog order survives the parallel fan-out
	assert.Equal(t, "Lisbon", results[0].Name)
	assert.Equal(t, "Porto", results[1].Name)
	assert.Equal(t, "Faro", results[2].Name)

	assert.False(t, results[0].Degraded())
	assert.True(t, results[1].Degraded())
	assert.False(t, results[2].Degraded())
	assert.Equal(t, "cloud-question", results[1].Icon)
}

func Test_GetAllCitiesWeather_CatalogFailurePropagates(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindAll").Return(nil, errors.New("connection refused")).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	_, err := useCase.GetAllCitiesWeather()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch cities from database")
}

func Test_GetSavedCitiesWeather_EmptyUser(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	results, err := useCase.GetSavedCitiesWeather("")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func Test_GetSavedCitiesWeather_StoreFailurePropagates(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("FindSavedByUserID", "user-1").Return(nil, errors.New("connection refused")).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	_, err := useCase.GetSavedCitiesWeather("user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch user's saved cities")
}

func Test_AddSavedCity_Validation(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	assert.Error(t, useCase.AddSavedCity("", 1))
	assert.Error(t, useCase.AddSavedCity("user-1", 0))
	dbGateway.AssertNotCalled(t, "SaveCity", mock.Anything, mock.Anything)
}

func Test_AddSavedCity_Duplicate(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("SaveCity", "user-1", 1).Return(weather.ErrCityAlreadySaved).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	err := useCase.AddSavedCity("user-1", 1)
	assert.ErrorIs(t, err, weather.ErrCityAlreadySaved)
}

func Test_RemoveSavedCity_Validation(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	assert.Error(t, useCase.RemoveSavedCity("", 1))
	assert.Error(t, useCase.RemoveSavedCity("user-1", 0))
	dbGateway.AssertNotCalled(t, "DeleteSavedCity", mock.Anything, mock.Anything)
}

func Test_SearchCities_ShortQuerySkipsStore(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	for _, query := range []string{"", " ", "a", " a "} {
		results, err := useCase.SearchCities(query)
		require.NoError(t, err)
		assert.Empty(t, results)
	}
	dbGateway.AssertNotCalled(t, "SearchByName", mock.Anything, mock.Anything)
}

func Test_SearchCities_TrimsAndLimits(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	dbGateway.On("SearchByName", "lis", 10).Return([]entity.City{lisbon}, nil).Once()
	t.Cleanup(func() { dbGateway.AssertExpectations(t) })

	results, err := useCase.SearchCities("  lis  ")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Lisbon", results[0].Name)
}

func Test_SweepCaches_And_CacheSizes(t *testing.T) {
	apiGateway := &mockForecastGateway{}
	dbGateway := &mockCityGateway{}
	useCase := newUseCase(apiGateway, dbGateway)

	snapshots, cities := useCase.CacheSizes()
	assert.Equal(t, 0, snapshots)
	assert.Equal(t, 0, cities)

	dbGateway.On("FindByID", lisbon.ID).Return(&lisbon, nil).Once()
	apiGateway.On("GetForecast", lisbon.Lat, lisbon.Lon).Return(snapshotFixture(21.7, 2), nil).Once()

	_, err := useCase.GetCityWeather(lisbon.ID)
	require.NoError(t, err)

	snapshots, cities = useCase.CacheSizes()
	assert.Equal(t, 1, snapshots)
	assert.Equal(t, 1, cities)

	// nothing has expired yet
	removedSnapshots, removedCities := useCase.SweepCaches()
	assert.Equal(t, 0, removedSnapshots)
	assert.Equal(t, 0, removedCities)
}
