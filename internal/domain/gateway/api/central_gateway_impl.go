package api

import (
	"weather-collector/internal/domain/model"
	"weather-collector/pkg/http"
)

// centralAPIGatewayImpl implements the CentralAPIGateway interface
type centralAPIGatewayImpl struct {
	httpClient *http.Client
}

// NewCentralAPIGateway creates a new instance of CentralAPIGateway with HTTP client
func NewCentralAPIGateway(baseUrl string, clientOptions http.ClientOptions) CentralAPIGateway {
	httpClient := http.NewHttpClient(baseUrl, clientOptions)

	return &centralAPIGatewayImpl{
		httpClient: httpClient,
	}
}

// ForwardWeather POSTs one payload envelope to the central API
func (g *centralAPIGatewayImpl) ForwardWeather(payload model.WeatherPayload) (int, error) {
	_, _, status, err := g.httpClient.Request().
		WithMethod(http.POST).
		WithPath("/api/v1/collectors/weather").
		WithBody(payload).
		WithSuccessResp(&model.IngestResult{}).
		Execute()

	return status, err
}

// Status checks the central API's status endpoint
func (g *centralAPIGatewayImpl) Status() (string, error) {
	statusResp := struct {
		Status string `json:"status"`
	}{}

	_, _, _, err := g.httpClient.Request().
		WithMethod(http.GET).
		WithPath("/api/v1/collectors/status").
		WithSuccessResp(&statusResp).
		Execute()

	if err != nil {
		return "", err
	}
	return statusResp.Status, nil
}
