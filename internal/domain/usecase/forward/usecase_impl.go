package forward

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weather-collector/internal/domain/gateway/api"
	"weather-collector/internal/domain/gateway/db"
	"weather-collector/internal/domain/model"
	"weather-collector/pkg/log"
)

type forwardUseCase struct {
	dbGateway      db.RawResponseGateway
	centralGateway api.CentralAPIGateway
}

func NewForwardUseCase(dbGateway db.RawResponseGateway, centralGateway api.CentralAPIGateway) UseCase {
	return &forwardUseCase{
		dbGateway:      dbGateway,
		centralGateway: centralGateway,
	}
}

// ForwardPending delivers retained rows one at a time. Delivery is
// at-least-once: a row is only retired after the central API confirmed it,
// and one row's failure never blocks the rest of the batch.
func (uc *forwardUseCase) ForwardPending() (*model.ForwardReport, error) {
	report := &model.ForwardReport{}

	currentRows, err := uc.dbGateway.FindRetainedCurrentWeather()
	if err != nil {
		return nil, fmt.Errorf("failed to load retained current weather responses: %w", err)
	}

	log.Infof("Forwarding %d current weather response(s)", len(currentRows))
	for _, row := range currentRows {
		report.Attempted++
		uc.forwardRow(report, model.LabelCurrent, row.ID, row.Payload, uc.dbGateway.SetCurrentWeatherRetention)
	}

	forecastRows, err := uc.dbGateway.FindRetainedForecasts()
	if err != nil {
		return nil, fmt.Errorf("failed to load retained forecast responses: %w", err)
	}

	log.Infof("Forwarding %d forecast response(s)", len(forecastRows))
	for _, row := range forecastRows {
		report.Attempted++
		uc.forwardRow(report, model.LabelForecast, row.ID, row.Payload, uc.dbGateway.SetForecastRetention)
	}

	log.Infof("Forwarded %d/%d response(s) successfully", report.Forwarded(), report.Attempted)
	return report, nil
}

// forwardRow POSTs one envelope and flips the row's retain flag when the
// remote has the data, either freshly accepted or as a 409 duplicate.
func (uc *forwardUseCase) forwardRow(report *model.ForwardReport, label string, id uint, payload string, setRetention func(uint, bool) error) {
	envelope := model.WeatherPayload{
		Source: model.SourceWeatherAPI,
		Label:  label,
		Data:   json.RawMessage(payload),
	}

	status, err := uc.centralGateway.ForwardWeather(envelope)

	switch {
	case err == nil:
		report.Delivered++
	case status == http.StatusConflict:
		// The central API already holds this reading, treat as delivered.
		report.Conflicts++
	default:
		report.Failed++
		log.Errorf("Error forwarding %s response id=%d (status %d): %v", label, id, status, err)
		return
	}

	if err := setRetention(id, false); err != nil {
		// The row was delivered but stays retained; the next run will
		// re-POST it and the central API's dedup will 409 it.
		log.Errorf("Error updating retain flag for %s response id=%d: %v", label, id, err)
	}
}
