package db

import "weather-collector/internal/domain/model"

// HealthDBGateway probes the database for the health endpoint.
type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
