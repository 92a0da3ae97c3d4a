package entity

import "time"

// CurrentWeatherJSON is the central API's raw copy of a forwarded
// current-weather payload, kept alongside the normalized rows.
type CurrentWeatherJSON struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Payload   string    `gorm:"column:current_weather_json;type:jsonb;not null" json:"payload"`
}

func (CurrentWeatherJSON) TableName() string {
	return "weatherapi_current_weather_json"
}

// ForecastJSON is the central API's raw copy of a forwarded forecast payload.
type ForecastJSON struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Payload   string    `gorm:"column:forecast_json;type:jsonb;not null" json:"payload"`
}

func (ForecastJSON) TableName() string {
	return "weatherapi_forecast_json"
}
