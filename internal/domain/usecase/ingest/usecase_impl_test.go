package ingest

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"weather-collector/internal/domain/entity"
	"weather-collector/internal/domain/model"
)

const currentWeatherBody = `{
	"location": {
		"name": "Lisbon",
		"region": "Lisboa",
		"country": "Portugal",
		"lat": 38.72,
		"lon": -9.13,
		"tz_id": "Europe/Lisbon",
		"localtime_epoch": 1717243800,
		"localtime": "2024-06-01 12:30"
	},
	"current": {
		"last_updated_epoch": 1717243200,
		"last_updated": "2024-06-01 12:20",
		"temp_c": 24.5,
		"temp_f": 76.1,
		"is_day": 1,
		"condition": {"text": "Sunny", "icon": "//cdn/113.png", "code": 1000},
		"wind_kph": 15.1,
		"humidity": 48,
		"air_quality": {"co": 210.3, "pm2_5": 4.7, "us-epa-index": 1}
	}
}`

const forecastBody = `{
	"location": {
		"name": "Lisbon",
		"region": "Lisboa",
		"country": "Portugal"
	},
	"forecast": {
		"forecastday": [
			{"date": "2024-06-01", "date_epoch": 1717200000},
			{"date": "2024-06-02", "date_epoch": 1717286400}
		]
	}
}`

// fakeWeatherDBGateway implements db.WeatherDBGateway in memory.
type fakeWeatherDBGateway struct {
	locations    []entity.Location
	readings     []entity.CurrentWeather
	currentJSON  []entity.CurrentWeatherJSON
	forecastJSON []entity.ForecastJSON

	createLocationErr error
	createWeatherErr  error
}

func (g *fakeWeatherDBGateway) FindLocation(name string, region string, country string) (*entity.Location, error) {
	for _, loc := range g.locations {
		if loc.Name == name && loc.Region == region && loc.Country == country {
			found := loc
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeWeatherDBGateway) CreateLocation(location entity.Location) (*entity.Location, error) {
	if g.createLocationErr != nil {
		return nil, g.createLocationErr
	}
	location.ID = uint(len(g.locations) + 1)
	g.locations = append(g.locations, location)
	return &location, nil
}

func (g *fakeWeatherDBGateway) FindAllLocations(page int, size int) ([]entity.Location, error) {
	return g.locations, nil
}

func (g *fakeWeatherDBGateway) CountLocations() (int64, error) {
	return int64(len(g.locations)), nil
}

func (g *fakeWeatherDBGateway) FindCurrentWeatherByEpoch(epoch int64) (*entity.CurrentWeather, error) {
	for _, reading := range g.readings {
		if reading.LastUpdatedEpoch == epoch {
			found := reading
			return &found, nil
		}
	}
	return nil, nil
}

func (g *fakeWeatherDBGateway) CreateCurrentWeather(weather entity.CurrentWeather) (*entity.CurrentWeather, error) {
	if g.createWeatherErr != nil {
		return nil, g.createWeatherErr
	}
	weather.ID = uint(len(g.readings) + 1)
	g.readings = append(g.readings, weather)
	return &weather, nil
}

func (g *fakeWeatherDBGateway) CreateCurrentWeatherJSON(payload string) (*entity.CurrentWeatherJSON, error) {
	row := entity.CurrentWeatherJSON{ID: uint(len(g.currentJSON) + 1), Payload: payload}
	g.currentJSON = append(g.currentJSON, row)
	return &row, nil
}

func (g *fakeWeatherDBGateway) CreateForecastJSON(payload string) (*entity.ForecastJSON, error) {
	row := entity.ForecastJSON{ID: uint(len(g.forecastJSON) + 1), Payload: payload}
	g.forecastJSON = append(g.forecastJSON, row)
	return &row, nil
}

func (g *fakeWeatherDBGateway) DeleteRawCopiesBefore(cutoff time.Time) (int64, error) {
	return 0, nil
}

func currentPayload(data string) model.WeatherPayload {
	return model.WeatherPayload{
		Source: model.SourceWeatherAPI,
		Label:  model.LabelCurrent,
		Data:   json.RawMessage(data),
	}
}

func TestIngestCurrentWeatherStoresReadingAndLocation(t *testing.T) {
	gateway := &fakeWeatherDBGateway{}
	useCase := NewIngestUseCase(gateway)

	result, err := useCase.IngestPayload(currentPayload(currentWeatherBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || result.CurrentWeatherID == 0 || result.LocationID == 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(gateway.currentJSON) != 1 {
		t.Fatal("raw copy was not stored")
	}
	if len(gateway.locations) != 1 || gateway.locations[0].Name != "Lisbon" {
		t.Fatalf("unexpected locations: %+v", gateway.locations)
	}

	reading := gateway.readings[0]
	if reading.LastUpdatedEpoch != 1717243200 || reading.TempC != 24.5 {
		t.Fatalf("unexpected reading: %+v", reading)
	}
	if reading.Condition == nil || reading.Condition.Code != 1000 {
		t.Fatalf("condition not mapped: %+v", reading.Condition)
	}
	if reading.AirQuality == nil || reading.AirQuality.Pm25 != 4.7 || reading.AirQuality.UsEpaIndex != 1 {
		t.Fatalf("air quality not mapped: %+v", reading.AirQuality)
	}
}

func TestIngestCurrentWeatherReusesExistingLocation(t *testing.T) {
	gateway := &fakeWeatherDBGateway{
		locations: []entity.Location{{ID: 7, Name: "Lisbon", Region: "Lisboa", Country: "Portugal"}},
	}
	useCase := NewIngestUseCase(gateway)

	result, err := useCase.IngestPayload(currentPayload(currentWeatherBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.LocationID != 7 {
		t.Fatalf("expected existing location id 7, got %d", result.LocationID)
	}
	if len(gateway.locations) != 1 {
		t.Fatalf("location must not be duplicated, got %d rows", len(gateway.locations))
	}
}

func TestIngestCurrentWeatherRejectsDuplicateEpoch(t *testing.T) {
	gateway := &fakeWeatherDBGateway{
		readings: []entity.CurrentWeather{{ID: 1, LastUpdatedEpoch: 1717243200}},
	}
	useCase := NewIngestUseCase(gateway)

	_, err := useCase.IngestPayload(currentPayload(currentWeatherBody))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// The raw copy is still kept for auditing.
	if len(gateway.currentJSON) != 1 {
		t.Fatal("raw copy must be stored even for duplicate readings")
	}
}

func TestIngestCurrentWeatherHandlesInsertRace(t *testing.T) {
	gateway := &fakeWeatherDBGateway{createWeatherErr: gorm.ErrDuplicatedKey}
	useCase := NewIngestUseCase(gateway)

	_, err := useCase.IngestPayload(currentPayload(currentWeatherBody))
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate on unique violation, got %v", err)
	}
}

func TestIngestLocationCreateRaceFallsBackToLookup(t *testing.T) {
	gateway := &fakeWeatherDBGateway{createLocationErr: gorm.ErrDuplicatedKey}
	// Simulate the concurrent writer's row being visible on the second lookup.
	firstLookup := true
	useCase := NewIngestUseCase(&locationRaceGateway{inner: gateway, firstLookup: &firstLookup})

	result, err := useCase.IngestPayload(currentPayload(currentWeatherBody))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.LocationID != 42 {
		t.Fatalf("expected the concurrently created location, got id %d", result.LocationID)
	}
}

// locationRaceGateway misses the first location lookup and hits the second.
type locationRaceGateway struct {
	inner       *fakeWeatherDBGateway
	firstLookup *bool
}

func (g *locationRaceGateway) FindLocation(name string, region string, country string) (*entity.Location, error) {
	if *g.firstLookup {
		*g.firstLookup = false
		return nil, nil
	}
	return &entity.Location{ID: 42, Name: name, Region: region, Country: country}, nil
}

func (g *locationRaceGateway) CreateLocation(location entity.Location) (*entity.Location, error) {
	return g.inner.CreateLocation(location)
}

func (g *locationRaceGateway) FindAllLocations(page int, size int) ([]entity.Location, error) {
	return g.inner.FindAllLocations(page, size)
}

func (g *locationRaceGateway) CountLocations() (int64, error) {
	return g.inner.CountLocations()
}

func (g *locationRaceGateway) FindCurrentWeatherByEpoch(epoch int64) (*entity.CurrentWeather, error) {
	return g.inner.FindCurrentWeatherByEpoch(epoch)
}

func (g *locationRaceGateway) CreateCurrentWeather(weather entity.CurrentWeather) (*entity.CurrentWeather, error) {
	return g.inner.CreateCurrentWeather(weather)
}

func (g *locationRaceGateway) CreateCurrentWeatherJSON(payload string) (*entity.CurrentWeatherJSON, error) {
	return g.inner.CreateCurrentWeatherJSON(payload)
}

func (g *locationRaceGateway) CreateForecastJSON(payload string) (*entity.ForecastJSON, error) {
	return g.inner.CreateForecastJSON(payload)
}

func (g *locationRaceGateway) DeleteRawCopiesBefore(cutoff time.Time) (int64, error) {
	return g.inner.DeleteRawCopiesBefore(cutoff)
}

func TestIngestForecastStoresRawCopy(t *testing.T) {
	gateway := &fakeWeatherDBGateway{}
	useCase := NewIngestUseCase(gateway)

	result, err := useCase.IngestPayload(model.WeatherPayload{
		Source: model.SourceWeatherAPI,
		Label:  model.LabelForecast,
		Data:   json.RawMessage(forecastBody),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || result.ForecastID == 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(gateway.forecastJSON) != 1 {
		t.Fatal("forecast raw copy was not stored")
	}
	if len(gateway.locations) != 1 {
		t.Fatal("forecast location was not created")
	}
	// Forecast payloads never touch the normalized readings table.
	if len(gateway.readings) != 0 {
		t.Fatalf("unexpected readings: %+v", gateway.readings)
	}
}

func TestIngestPayloadRejectsUnknownKey(t *testing.T) {
	useCase := NewIngestUseCase(&fakeWeatherDBGateway{})

	_, err := useCase.IngestPayload(model.WeatherPayload{
		Source: "openweather",
		Label:  model.LabelCurrent,
		Data:   json.RawMessage(`{}`),
	})
	if !errors.Is(err, ErrUnknownPayload) {
		t.Fatalf("expected ErrUnknownPayload, got %v", err)
	}

	_, err = useCase.IngestPayload(model.WeatherPayload{
		Source: model.SourceWeatherAPI,
		Label:  "alerts",
		Data:   json.RawMessage(`{}`),
	})
	if !errors.Is(err, ErrUnknownPayload) {
		t.Fatalf("expected ErrUnknownPayload for unknown label, got %v", err)
	}
}

func TestIngestPayloadRejectsInvalidData(t *testing.T) {
	useCase := NewIngestUseCase(&fakeWeatherDBGateway{})

	_, err := useCase.IngestPayload(model.WeatherPayload{
		Source: model.SourceWeatherAPI,
		Label:  model.LabelCurrent,
	})
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for empty data, got %v", err)
	}

	_, err = useCase.IngestPayload(currentPayload(`{"location": 12}`))
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for malformed body, got %v", err)
	}
}

func TestFindAllLocationsPagesResults(t *testing.T) {
	gateway := &fakeWeatherDBGateway{
		locations: []entity.Location{
			{ID: 1, Name: "Lisbon"},
			{ID: 2, Name: "Porto"},
		},
	}
	useCase := NewIngestUseCase(gateway)

	page, err := useCase.FindAllLocations(0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.TotalElements != 2 || len(page.Content) != 2 {
		t.Fatalf("unexpected page: %+v", page)
	}
}
