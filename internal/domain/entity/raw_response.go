package entity

import "time"

// CurrentWeatherResponse is a raw current-weather payload captured from the
// upstream API. Retain stays true until the row has been forwarded to the
// central API; retired rows (retain=false) are removed by the vacuum job.
type CurrentWeatherResponse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Payload   string    `gorm:"column:current_weather_json;type:jsonb;not null" json:"payload"`
	Retain    bool      `gorm:"default:true;not null" json:"retain"`
}

func (CurrentWeatherResponse) TableName() string {
	return "current_weather_response"
}

// ForecastResponse is a raw forecast payload captured from the upstream API.
// Same lifecycle as CurrentWeatherResponse, separate table.
type ForecastResponse struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Payload   string    `gorm:"column:forecast_json;type:jsonb;not null" json:"payload"`
	Retain    bool      `gorm:"default:true;not null" json:"retain"`
}

func (ForecastResponse) TableName() string {
	return "forecast_response"
}
