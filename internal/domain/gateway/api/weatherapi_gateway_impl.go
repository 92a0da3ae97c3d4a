package api

import (
	"encoding/json"
	"fmt"
	"strconv"

	"weather-collector/internal/domain/model/external"
	"weather-collector/pkg/http"
)

// weatherAPIGatewayImpl implements the WeatherAPIGateway interface
type weatherAPIGatewayImpl struct {
	apiKey     string
	httpClient *http.Client
	backoff    *http.BackoffConfig
}

// NewWeatherAPIGateway creates a new instance of WeatherAPIGateway with HTTP client.
// Responses may be cached when clientOptions carries a ResponseCache.
func NewWeatherAPIGateway(baseUrl string, apiKey string, clientOptions http.ClientOptions) WeatherAPIGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &weatherAPIGatewayImpl{
		apiKey:     apiKey,
		httpClient: httpClient,
		backoff:    http.DefaultBackoff(),
	}
}

// GetCurrentWeather fetches the current weather for a location
func (w *weatherAPIGatewayImpl) GetCurrentWeather(location string) (*external.CurrentWeatherResponse, json.RawMessage, error) {
	var raw json.RawMessage

	_, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/current.json").
		WithQueryParams(map[string]string{
			"key": w.apiKey,
			"q":   location,
			"aqi": "yes",
		}).
		WithSuccessResp(&raw).
		WithErrorResp(&external.APIErrorResponse{}).
		WithBackoff(w.backoff).
		Execute()

	if err != nil {
		if errResp != nil {
			errorResponse := errResp.(*external.APIErrorResponse)
			return nil, nil, fmt.Errorf("weatherapi error %d: %s", errorResponse.Error.Code, errorResponse.Error.Message)
		}
		return nil, nil, err
	}

	var decoded external.CurrentWeatherResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, nil, fmt.Errorf("failed to decode current weather response: %w", err)
	}

	return &decoded, raw, nil
}

// GetWeatherForecast fetches the forecast for a location
func (w *weatherAPIGatewayImpl) GetWeatherForecast(location string, days int) (*external.ForecastResponse, json.RawMessage, error) {
	var raw json.RawMessage

	_, errResp, _, err := w.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/v1/forecast.json").
		WithQueryParams(map[string]string{
			"key":    w.apiKey,
			"q":      location,
			"aqi":    "yes",
			"alerts": "yes",
			"days":   strconv.Itoa(days),
		}).
		WithSuccessResp(&raw).
		WithErrorResp(&external.APIErrorResponse{}).
		WithBackoff(w.backoff).
		Execute()

	if err != nil {
		if errResp != nil {
			errorResponse := errResp.(*external.APIErrorResponse)
			return nil, nil, fmt.Errorf("weatherapi error %d: %s", errorResponse.Error.Code, errorResponse.Error.Message)
		}
		return nil, nil, err
	}

	var decoded external.ForecastResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	return &decoded, raw, nil
}
