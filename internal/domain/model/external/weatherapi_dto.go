package external

// CurrentWeatherResponse mirrors the WeatherAPI /v1/current.json body.
type CurrentWeatherResponse struct {
	Location LocationData `json:"location"`
	Current  CurrentData  `json:"current"`
}

// ForecastResponse mirrors the WeatherAPI /v1/forecast.json body. Only the
// location block is normalized; the rest is stored raw.
type ForecastResponse struct {
	Location LocationData `json:"location"`
	Current  *CurrentData `json:"current,omitempty"`
	Forecast ForecastData `json:"forecast"`
}

type LocationData struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

type CurrentData struct {
	LastUpdatedEpoch int64           `json:"last_updated_epoch"`
	LastUpdated      string          `json:"last_updated"`
	TempC            float64         `json:"temp_c"`
	TempF            float64         `json:"temp_f"`
	IsDay            int             `json:"is_day"`
	Condition        ConditionData   `json:"condition"`
	WindMph          float64         `json:"wind_mph"`
	WindKph          float64         `json:"wind_kph"`
	WindDegree       int             `json:"wind_degree"`
	WindDir          string          `json:"wind_dir"`
	PressureMb       float64         `json:"pressure_mb"`
	PressureIn       float64         `json:"pressure_in"`
	PrecipMm         float64         `json:"precip_mm"`
	PrecipIn         float64         `json:"precip_in"`
	Humidity         int             `json:"humidity"`
	Cloud            int             `json:"cloud"`
	FeelslikeC       float64         `json:"feelslike_c"`
	FeelslikeF       float64         `json:"feelslike_f"`
	VisKm            float64         `json:"vis_km"`
	VisMiles         float64         `json:"vis_miles"`
	Uv               float64         `json:"uv"`
	GustMph          float64         `json:"gust_mph"`
	GustKph          float64         `json:"gust_kph"`
	AirQuality       *AirQualityData `json:"air_quality,omitempty"`
}

type ConditionData struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

type AirQualityData struct {
	Co           float64 `json:"co"`
	No2          float64 `json:"no2"`
	O3           float64 `json:"o3"`
	So2          float64 `json:"so2"`
	Pm25         float64 `json:"pm2_5"`
	Pm10         float64 `json:"pm10"`
	UsEpaIndex   int     `json:"us-epa-index"`
	GbDefraIndex int     `json:"gb-defra-index"`
}

type ForecastData struct {
	ForecastDay []ForecastDay `json:"forecastday"`
}

type ForecastDay struct {
	Date      string `json:"date"`
	DateEpoch int64  `json:"date_epoch"`
}

// APIErrorResponse is the WeatherAPI error body.
type APIErrorResponse struct {
	Error APIError `json:"error"`
}

type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
