package db

import (
	"time"

	"weather-collector/internal/domain/entity"
)

// WeatherDBGateway stores the central API's normalized weather data together
// with raw copies of the forwarded payloads.
type WeatherDBGateway interface {
	// Location upsert support: callers look a location up by its natural key
	// before inserting a new one.
	FindLocation(name string, region string, country string) (*entity.Location, error)
	CreateLocation(location entity.Location) (*entity.Location, error)
	FindAllLocations(page int, size int) ([]entity.Location, error)
	CountLocations() (int64, error)

	// Current weather readings, deduplicated on last_updated_epoch.
	FindCurrentWeatherByEpoch(epoch int64) (*entity.CurrentWeather, error)
	// CreateCurrentWeather inserts the reading plus its condition and
	// air-quality sub-objects in one transaction.
	CreateCurrentWeather(weather entity.CurrentWeather) (*entity.CurrentWeather, error)

	// Raw copies of forwarded payloads
	CreateCurrentWeatherJSON(payload string) (*entity.CurrentWeatherJSON, error)
	CreateForecastJSON(payload string) (*entity.ForecastJSON, error)
	DeleteRawCopiesBefore(cutoff time.Time) (int64, error)
}
