package external

// ForecastResponse mirrors the Open-Meteo /v1/forecast JSON response for a
// request issued with timeformat=unixtime. Only the requested variables are
// present; Current or Daily being nil means the upstream reply is malformed
// for our fixed variable set.
type ForecastResponse struct {
	Latitude         float64       `json:"latitude"`
	Longitude        float64       `json:"longitude"`
	Timezone         string        `json:"timezone"`
	UTCOffsetSeconds int64         `json:"utc_offset_seconds"`
	Current          *CurrentBlock `json:"current"`
	Daily            *DailyBlock   `json:"daily"`
}

// CurrentBlock carries the ten requested current-condition variables plus the
// provider-relative observation time.
type CurrentBlock struct {
	Time                int64   `json:"time"`
	Interval            int64   `json:"interval"`
	Temperature2m       float64 `json:"temperature_2m"`
	RelativeHumidity2m  float64 `json:"relative_humidity_2m"`
	ApparentTemperature float64 `json:"apparent_temperature"`
	IsDay               int     `json:"is_day"`
	Precipitation       float64 `json:"precipitation"`
	Rain                float64 `json:"rain"`
	Showers             float64 `json:"showers"`
	Snowfall            float64 `json:"snowfall"`
	WindSpeed10m        float64 `json:"wind_speed_10m"`
	WeatherCode         int     `json:"weather_code"`
}

// DailyBlock carries the four requested daily variables as parallel arrays,
// one element per forecast day.
type DailyBlock struct {
	Time             []int64   `json:"time"`
	Temperature2mMax []float64 `json:"temperature_2m_max"`
	Temperature2mMin []float64 `json:"temperature_2m_min"`
	WeatherCode      []int     `json:"weather_code"`
	PrecipitationSum []float64 `json:"precipitation_sum"`
}

// APIErrorResponse is the Open-Meteo error payload.
type APIErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
