package api

import (
	"weather-collector/internal/domain/model"
)

// CentralAPIGateway defines the interface for calls to the central ingestion
// API that collectors forward their stored payloads to.
type CentralAPIGateway interface {
	// ForwardWeather POSTs one payload envelope to the central API.
	// The HTTP status code is returned whenever a response was received,
	// including error responses; status is 0 only on transport failure.
	ForwardWeather(payload model.WeatherPayload) (int, error)

	// Status checks the central API's status endpoint.
	Status() (string, error)
}
