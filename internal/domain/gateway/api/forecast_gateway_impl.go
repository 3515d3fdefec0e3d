package api

import (
	"fmt"
	"strconv"
	"time"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/model/external"
	"weather-dashboard/pkg/http"
)

// The variable lists are fixed; the provider echoes each requested variable
// back under its own key, so changing these lists changes the response shape.
const (
	currentVariables = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,precipitation,rain,showers,snowfall,wind_speed_10m,weather_code"
	dailyVariables   = "temperature_2m_max,temperature_2m_min,weather_code,precipitation_sum"
	forecastDays     = 7
)

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *http.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with HTTP client
func NewForecastGateway(baseUrl string, clientOptions http.ClientOptions) ForecastGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &forecastGatewayImpl{
		httpClient: httpClient,
	}
}

// GetForecast fetches and normalizes the upstream forecast for a coordinate pair
func (g *forecastGatewayImpl) GetForecast(lat float64, lon float64) (*model.WeatherSnapshot, error) {
	queryParams := map[string]string{
		"latitude":      strconv.FormatFloat(lat, 'f', -1, 64),
		"longitude":     strconv.FormatFloat(lon, 'f', -1, 64),
		"current":       currentVariables,
		"daily":         dailyVariables,
		"timezone":      "auto",
		"forecast_days": strconv.Itoa(forecastDays),
		"timeformat":    "unixtime",
	}

	successResp, errResp, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast").
		WithQueryParams(queryParams).
		WithSuccessResp(&external.ForecastResponse{}).
		WithErrorResp(&external.APIErrorResponse{}).
		Execute()

	if err != nil {
		if errResp != nil {
			errorResponse := errResp.(*external.APIErrorResponse)
			if errorResponse.Reason != "" {
				return nil, fmt.Errorf("forecast API error: %s", errorResponse.Reason)
			}
		}
		return nil, err
	}

	response := successResp.(*external.ForecastResponse)
	return normalizeForecast(response)
}

// normalizeForecast converts the raw provider response into a WeatherSnapshot,
// applying the response's UTC offset so all timestamps are absolute instants.
func normalizeForecast(response *external.ForecastResponse) (*model.WeatherSnapshot, error) {
	if response.Current == nil {
		return nil, fmt.Errorf("forecast response is missing the current block")
	}
	if response.Daily == nil || len(response.Daily.Time) == 0 {
		return nil, fmt.Errorf("forecast response is missing the daily block")
	}

	offset := response.UTCOffsetSeconds
	current := response.Current
	daily := response.Daily

	snapshot := &model.WeatherSnapshot{
		Current: model.CurrentConditions{
			Time:                time.Unix(current.Time+offset, 0).UTC(),
			Temperature2m:       current.Temperature2m,
			RelativeHumidity2m:  current.RelativeHumidity2m,
			ApparentTemperature: current.ApparentTemperature,
			IsDay:               current.IsDay == 1,
			Precipitation:       current.Precipitation,
			Rain:                current.Rain,
			Showers:             current.Showers,
			Snowfall:            current.Snowfall,
			WindSpeed10m:        current.WindSpeed10m,
			WeatherCode:         current.WeatherCode,
		},
		Daily: entity.DailyForecast{
			Time:             make([]time.Time, len(daily.Time)),
			Temperature2mMax: daily.Temperature2mMax,
			Temperature2mMin: daily.Temperature2mMin,
			WeatherCode:      daily.WeatherCode,
			PrecipitationSum: daily.PrecipitationSum,
		},
	}

	for i, dayStart := range daily.Time {
		snapshot.Daily.Time[i] = time.Unix(dayStart+offset, 0).UTC()
	}

	return snapshot, nil
}
