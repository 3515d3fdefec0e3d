package entity

import "time"

// CityWeather is the fully formatted weather card for a catalog city: catalog
// identity plus rounded current conditions, the translated condition text and
// icon, and the attached daily forecast. Error carries a descriptive message
// when the record is degraded instead of failing the whole batch.
type CityWeather struct {
	ID          int            `json:"id"`
	Name        string         `json:"name"`
	Country     string         `json:"country"`
	Temperature int            `json:"temperature"`
	Condition   string         `json:"condition"`
	Humidity    int            `json:"humidity"`
	WindSpeed   int            `json:"windSpeed"`
	FeelsLike   int            `json:"feelsLike"`
	Icon        string         `json:"icon"`
	WeatherType string         `json:"weatherType"`
	Loading     bool           `json:"loading"`
	Error       string         `json:"error,omitempty"`
	Lat         float64        `json:"lat"`
	Lon         float64        `json:"lon"`
	Daily       *DailyForecast `json:"daily,omitempty"`
}

// Degraded reports whether this record is a fallback produced after a failed
// weather fetch or a missing catalog entry.
func (cw CityWeather) Degraded() bool {
	return cw.Error != ""
}

// DailyForecast holds the 7-day forecast as parallel sequences, one element
// per day.
type DailyForecast struct {
	Time             []time.Time `json:"time"`
	Temperature2mMax []float64   `json:"temperature2mMax"`
	Temperature2mMin []float64   `json:"temperature2mMin"`
	WeatherCode      []int       `json:"weatherCode"`
	PrecipitationSum []float64   `json:"precipitationSum"`
}
