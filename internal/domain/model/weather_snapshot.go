package model

import (
	"time"

	"weather-dashboard/internal/domain/entity"
)

// CurrentConditions is the normalized current-observation block of a forecast
// response, timestamps already converted to absolute instants.
type CurrentConditions struct {
	Time                time.Time `json:"time"`
	Temperature2m       float64   `json:"temperature2m"`
	RelativeHumidity2m  float64   `json:"relativeHumidity2m"`
	ApparentTemperature float64   `json:"apparentTemperature"`
	IsDay               bool      `json:"isDay"`
	Precipitation       float64   `json:"precipitation"`
	Rain                float64   `json:"rain"`
	Showers             float64   `json:"showers"`
	Snowfall            float64   `json:"snowfall"`
	WindSpeed10m        float64   `json:"windSpeed10m"`
	WeatherCode         int       `json:"weatherCode"`
}

// WeatherSnapshot is a normalized upstream forecast response for one
// coordinate pair: current conditions plus the 7-day daily block.
type WeatherSnapshot struct {
	Current CurrentConditions    `json:"current"`
	Daily   entity.DailyForecast `json:"daily"`
}
