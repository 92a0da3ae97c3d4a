package ingest

import (
	"encoding/json"
	"fmt"

	"weather-collector/internal/domain/entity"
	"weather-collector/internal/domain/gateway/db"
	"weather-collector/internal/domain/model"
	"weather-collector/internal/domain/model/external"
	"weather-collector/pkg/log"
)

// payloadKey identifies the handler for a forwarded payload.
type payloadKey struct {
	Source string
	Label  string
}

type handlerFunc func(data json.RawMessage) (*model.IngestResult, error)

type ingestUseCase struct {
	dbGateway db.WeatherDBGateway
	handlers  map[payloadKey]handlerFunc
}

func NewIngestUseCase(dbGateway db.WeatherDBGateway) UseCase {
	uc := &ingestUseCase{dbGateway: dbGateway}
	uc.handlers = map[payloadKey]handlerFunc{
		{Source: model.SourceWeatherAPI, Label: model.LabelCurrent}:  uc.ingestCurrentWeather,
		{Source: model.SourceWeatherAPI, Label: model.LabelForecast}: uc.ingestForecast,
	}
	return uc
}

func (uc *ingestUseCase) IngestPayload(payload model.WeatherPayload) (*model.IngestResult, error) {
	handler, ok := uc.handlers[payloadKey{Source: payload.Source, Label: payload.Label}]
	if !ok {
		return nil, fmt.Errorf("%w: source '%s' label '%s'", ErrUnknownPayload, payload.Source, payload.Label)
	}

	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("%w: empty data block", ErrInvalidPayload)
	}

	return handler(payload.Data)
}

// ingestCurrentWeather stores a raw copy of the payload, resolves its location
// and inserts the reading unless its last_updated_epoch is already known.
func (uc *ingestUseCase) ingestCurrentWeather(data json.RawMessage) (*model.IngestResult, error) {
	var body external.CurrentWeatherResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	rawCopy, err := uc.dbGateway.CreateCurrentWeatherJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to save current weather raw copy: %w", err)
	}
	log.Debugf("Saved current weather raw copy id=%d", rawCopy.ID)

	location, err := uc.resolveLocation(body.Location)
	if err != nil {
		return nil, err
	}

	existing, err := uc.dbGateway.FindCurrentWeatherByEpoch(body.Current.LastUpdatedEpoch)
	if err != nil {
		return nil, fmt.Errorf("failed to look up reading by epoch: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: last_updated_epoch %d", ErrDuplicate, body.Current.LastUpdatedEpoch)
	}

	reading := buildCurrentWeather(location.ID, body.Current)
	stored, err := uc.dbGateway.CreateCurrentWeather(reading)
	if err != nil {
		if db.IsDuplicateError(err) {
			// Lost the race against a concurrent insert of the same epoch.
			return nil, fmt.Errorf("%w: last_updated_epoch %d", ErrDuplicate, body.Current.LastUpdatedEpoch)
		}
		return nil, fmt.Errorf("failed to save current weather reading: %w", err)
	}

	log.Infof("Ingested current weather reading id=%d for location '%s' (epoch %d)",
		stored.ID, location.Name, stored.LastUpdatedEpoch)

	return &model.IngestResult{
		Success:          true,
		Message:          "current weather stored",
		LocationID:       location.ID,
		CurrentWeatherID: stored.ID,
	}, nil
}

// ingestForecast stores the raw forecast body and resolves its location. The
// forecast day data itself is kept only as the raw copy.
func (uc *ingestUseCase) ingestForecast(data json.RawMessage) (*model.IngestResult, error) {
	var body external.ForecastResponse
	if err := json.Unmarshal(data, &body); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	rawCopy, err := uc.dbGateway.CreateForecastJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to save forecast raw copy: %w", err)
	}

	location, err := uc.resolveLocation(body.Location)
	if err != nil {
		return nil, err
	}

	log.Infof("Ingested forecast id=%d with %d day(s) for location '%s'",
		rawCopy.ID, len(body.Forecast.ForecastDay), location.Name)

	return &model.IngestResult{
		Success:    true,
		Message:    "forecast stored",
		LocationID: location.ID,
		ForecastID: rawCopy.ID,
	}, nil
}

func (uc *ingestUseCase) FindAllLocations(page int, size int) (*model.Page[entity.Location], error) {
	locations, err := uc.dbGateway.FindAllLocations(page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}

	total, err := uc.dbGateway.CountLocations()
	if err != nil {
		return nil, fmt.Errorf("failed to count locations: %w", err)
	}

	return model.NewPage(locations, page, size, total), nil
}

// resolveLocation returns the stored location matching the payload's natural
// key, creating it on first sight.
func (uc *ingestUseCase) resolveLocation(data external.LocationData) (*entity.Location, error) {
	location, err := uc.dbGateway.FindLocation(data.Name, data.Region, data.Country)
	if err != nil {
		return nil, fmt.Errorf("failed to look up location: %w", err)
	}
	if location != nil {
		return location, nil
	}

	created, err := uc.dbGateway.CreateLocation(entity.Location{
		Name:           data.Name,
		Region:         data.Region,
		Country:        data.Country,
		Lat:            data.Lat,
		Lon:            data.Lon,
		TzID:           data.TzID,
		LocaltimeEpoch: data.LocaltimeEpoch,
		Localtime:      data.Localtime,
	})
	if err != nil {
		if db.IsDuplicateError(err) {
			// Another request created it first, read it back.
			existing, findErr := uc.dbGateway.FindLocation(data.Name, data.Region, data.Country)
			if findErr == nil && existing != nil {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("failed to create location '%s': %w", data.Name, err)
	}

	log.Infof("Created location id=%d '%s, %s'", created.ID, created.Name, created.Country)
	return created, nil
}

func buildCurrentWeather(locationID uint, data external.CurrentData) entity.CurrentWeather {
	reading := entity.CurrentWeather{
		LocationID:       locationID,
		LastUpdatedEpoch: data.LastUpdatedEpoch,
		LastUpdated:      data.LastUpdated,
		TempC:            data.TempC,
		TempF:            data.TempF,
		IsDay:            data.IsDay,
		WindMph:          data.WindMph,
		WindKph:          data.WindKph,
		WindDegree:       data.WindDegree,
		WindDir:          data.WindDir,
		PressureMb:       data.PressureMb,
		PressureIn:       data.PressureIn,
		PrecipMm:         data.PrecipMm,
		PrecipIn:         data.PrecipIn,
		Humidity:         data.Humidity,
		Cloud:            data.Cloud,
		FeelslikeC:       data.FeelslikeC,
		FeelslikeF:       data.FeelslikeF,
		VisKm:            data.VisKm,
		VisMiles:         data.VisMiles,
		Uv:               data.Uv,
		GustMph:          data.GustMph,
		GustKph:          data.GustKph,
		Condition: &entity.WeatherCondition{
			Text: data.Condition.Text,
			Icon: data.Condition.Icon,
			Code: data.Condition.Code,
		},
	}

	if data.AirQuality != nil {
		reading.AirQuality = &entity.AirQuality{
			Co:           data.AirQuality.Co,
			No2:          data.AirQuality.No2,
			O3:           data.AirQuality.O3,
			So2:          data.AirQuality.So2,
			Pm25:         data.AirQuality.Pm25,
			Pm10:         data.AirQuality.Pm10,
			UsEpaIndex:   data.AirQuality.UsEpaIndex,
			GbDefraIndex: data.AirQuality.GbDefraIndex,
		}
	}

	return reading
}
