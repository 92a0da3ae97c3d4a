package health

import "weather-collector/internal/domain/model"

// UseCase aggregates component probes into one health report.
type UseCase interface {
	CheckHealth() model.HealthResponse
}
