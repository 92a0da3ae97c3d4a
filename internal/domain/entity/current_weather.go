package entity

// CurrentWeather is a normalized current-weather reading. The provider's
// last_updated_epoch is unique: a payload carrying an epoch that already
// exists is treated as a duplicate and skipped.
type CurrentWeather struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	LocationID       uint    `gorm:"index;not null" json:"locationId"`
	LastUpdatedEpoch int64   `gorm:"uniqueIndex;not null" json:"lastUpdatedEpoch"`
	LastUpdated      string  `gorm:"type:text" json:"lastUpdated"`
	TempC            float64 `json:"tempC"`
	TempF            float64 `json:"tempF"`
	IsDay            int     `json:"isDay"`
	WindMph          float64 `json:"windMph"`
	WindKph          float64 `json:"windKph"`
	WindDegree       int     `json:"windDegree"`
	WindDir          string  `gorm:"type:text" json:"windDir"`
	PressureMb       float64 `json:"pressureMb"`
	PressureIn       float64 `json:"pressureIn"`
	PrecipMm         float64 `json:"precipMm"`
	PrecipIn         float64 `json:"precipIn"`
	Humidity         int     `json:"humidity"`
	Cloud            int     `json:"cloud"`
	FeelslikeC       float64 `json:"feelslikeC"`
	FeelslikeF       float64 `json:"feelslikeF"`
	VisKm            float64 `json:"visKm"`
	VisMiles         float64 `json:"visMiles"`
	Uv               float64 `json:"uv"`
	GustMph          float64 `json:"gustMph"`
	GustKph          float64 `json:"gustKph"`

	Condition  *WeatherCondition `gorm:"foreignKey:CurrentWeatherID" json:"condition,omitempty"`
	AirQuality *AirQuality       `gorm:"foreignKey:CurrentWeatherID" json:"airQuality,omitempty"`
}

func (CurrentWeather) TableName() string {
	return "weatherapi_current_weather"
}

// WeatherCondition is the condition sub-object of a current-weather reading.
type WeatherCondition struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	CurrentWeatherID uint   `gorm:"index;not null" json:"currentWeatherId"`
	Text             string `gorm:"type:text" json:"text"`
	Icon             string `gorm:"type:text" json:"icon"`
	Code             int    `json:"code"`
}

func (WeatherCondition) TableName() string {
	return "weatherapi_weather_condition"
}

// AirQuality is the optional air-quality sub-object of a current-weather
// reading.
type AirQuality struct {
	ID               uint    `gorm:"primaryKey" json:"id"`
	CurrentWeatherID uint    `gorm:"index;not null" json:"currentWeatherId"`
	Co               float64 `json:"co"`
	No2              float64 `json:"no2"`
	O3               float64 `json:"o3"`
	So2              float64 `json:"so2"`
	Pm25             float64 `gorm:"column:pm2_5" json:"pm25"`
	Pm10             float64 `json:"pm10"`
	UsEpaIndex       int     `gorm:"column:us_epa_index" json:"usEpaIndex"`
	GbDefraIndex     int     `gorm:"column:gb_defra_index" json:"gbDefraIndex"`
}

func (AirQuality) TableName() string {
	return "weatherapi_air_quality"
}
