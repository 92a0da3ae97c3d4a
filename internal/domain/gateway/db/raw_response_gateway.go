package db

import (
	"weather-collector/internal/domain/entity"
)

// RawResponseGateway stores the collector's raw upstream payloads. Rows keep
// retain=true until forwarded; the vacuum path only ever touches retired rows.
type RawResponseGateway interface {
	// Current weather rows
	CreateCurrentWeather(payload string) (*entity.CurrentWeatherResponse, error)
	FindAllCurrentWeather(page int, size int) ([]entity.CurrentWeatherResponse, error)
	FindRetainedCurrentWeather() ([]entity.CurrentWeatherResponse, error)
	CountCurrentWeather() (int64, error)
	SetCurrentWeatherRetention(id uint, retain bool) error
	FindRetiredCurrentWeatherIDs() ([]uint, error)
	DeleteRetiredCurrentWeatherByID(id uint) error

	// Forecast rows
	CreateForecast(payload string) (*entity.ForecastResponse, error)
	FindAllForecasts(page int, size int) ([]entity.ForecastResponse, error)
	FindRetainedForecasts() ([]entity.ForecastResponse, error)
	CountForecasts() (int64, error)
	SetForecastRetention(id uint, retain bool) error
	FindRetiredForecastIDs() ([]uint, error)
	DeleteRetiredForecastByID(id uint) error
}
