package model

import "encoding/json"

// Known payload sources and labels.
const (
	SourceWeatherAPI = "weatherapi"

	LabelCurrent  = "current"
	LabelForecast = "forecast"
)

// WeatherPayload is the envelope a collector forwards to the central API.
// It is transient: built from a stored raw response at forward time and
// never persisted in this form.
type WeatherPayload struct {
	Source string          `json:"source"`
	Label  string          `json:"label"`
	Data   json.RawMessage `json:"data"`
}

// IngestResult describes what the central API stored for one payload.
type IngestResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	LocationID       uint   `json:"location_id,omitempty"`
	CurrentWeatherID uint   `json:"current_weather_id,omitempty"`
	ForecastID       uint   `json:"forecast_id,omitempty"`
}
