package api

import (
	"encoding/json"

	"weather-collector/internal/domain/model/external"
)

// WeatherAPIGateway defines the interface for upstream WeatherAPI calls
type WeatherAPIGateway interface {
	// GetCurrentWeather fetches the current weather for a location.
	// Returns the decoded response and the raw JSON body as received.
	GetCurrentWeather(location string) (*external.CurrentWeatherResponse, json.RawMessage, error)

	// GetWeatherForecast fetches the forecast for a location.
	// days: number of forecast days (1-14 per the provider contract)
	GetWeatherForecast(location string, days int) (*external.ForecastResponse, json.RawMessage, error)
}
