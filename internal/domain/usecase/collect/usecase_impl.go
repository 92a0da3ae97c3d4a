package collect

import (
	"fmt"

	"weather-collector/internal/domain/gateway/api"
	"weather-collector/internal/domain/gateway/db"
	"weather-collector/pkg/log"
)

type collectUseCase struct {
	location     string
	forecastDays int
	apiGateway   api.WeatherAPIGateway
	dbGateway    db.RawResponseGateway
}

func NewCollectUseCase(location string, forecastDays int, apiGateway api.WeatherAPIGateway, dbGateway db.RawResponseGateway) UseCase {
	return &collectUseCase{
		location:     location,
		forecastDays: forecastDays,
		apiGateway:   apiGateway,
		dbGateway:    dbGateway,
	}
}

func (uc *collectUseCase) CollectCurrentWeather() error {
	log.Infof("Collecting current weather for location '%s'", uc.location)

	_, raw, err := uc.apiGateway.GetCurrentWeather(uc.location)
	if err != nil {
		return fmt.Errorf("failed to collect current weather for '%s': %w", uc.location, err)
	}

	row, err := uc.dbGateway.CreateCurrentWeather(string(raw))
	if err != nil {
		return fmt.Errorf("failed to save current weather response: %w", err)
	}

	log.Infof("Stored current weather response id=%d for location '%s'", row.ID, uc.location)
	return nil
}

func (uc *collectUseCase) CollectForecast() error {
	log.Infof("Collecting %d-day weather forecast for location '%s'", uc.forecastDays, uc.location)

	_, raw, err := uc.apiGateway.GetWeatherForecast(uc.location, uc.forecastDays)
	if err != nil {
		return fmt.Errorf("failed to collect forecast for '%s': %w", uc.location, err)
	}

	row, err := uc.dbGateway.CreateForecast(string(raw))
	if err != nil {
		return fmt.Errorf("failed to save forecast response: %w", err)
	}

	log.Infof("Stored forecast response id=%d for location '%s'", row.ID, uc.location)
	return nil
}
