package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"weather-collector/internal/domain/entity"
	"weather-collector/internal/domain/model"
	"weather-collector/internal/domain/usecase/ingest"
)

// fakeIngestUseCase scripts the responses of ingest.UseCase.
type fakeIngestUseCase struct {
	result    *model.IngestResult
	ingestErr error
	locations *model.Page[entity.Location]
	findErr   error

	lastPayload model.WeatherPayload
	lastPage    int
	lastSize    int
}

func (f *fakeIngestUseCase) IngestPayload(payload model.WeatherPayload) (*model.IngestResult, error) {
	f.lastPayload = payload
	if f.ingestErr != nil {
		return nil, f.ingestErr
	}
	return f.result, nil
}

func (f *fakeIngestUseCase) FindAllLocations(page int, size int) (*model.Page[entity.Location], error) {
	f.lastPage = page
	f.lastSize = size
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.locations, nil
}

func setupController(useCase ingest.UseCase) (*echo.Echo, *CollectorController) {
	e := echo.New()
	api := e.Group("/api/v1")
	controller := NewCollectorController(api, useCase)
	controller.InitCollectorRoutes()
	return e, controller
}

func postWeather(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/collectors/weather", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestIngestWeatherReturnsCreated(t *testing.T) {
	useCase := &fakeIngestUseCase{
		result: &model.IngestResult{Success: true, Message: "current weather stored", LocationID: 1, CurrentWeatherID: 3},
	}
	e, _ := setupController(useCase)

	rec := postWeather(e, `{"source":"weatherapi","label":"current","data":{"current":{}}}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var result model.IngestResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !result.Success || result.CurrentWeatherID != 3 {
		t.Fatalf("unexpected result: %+v", result)
	}

	if useCase.lastPayload.Source != "weatherapi" || useCase.lastPayload.Label != "current" {
		t.Fatalf("payload not passed through: %+v", useCase.lastPayload)
	}
}

func TestIngestWeatherRejectsUnknownPayload(t *testing.T) {
	useCase := &fakeIngestUseCase{ingestErr: ingest.ErrUnknownPayload}
	e, _ := setupController(useCase)

	rec := postWeather(e, `{"source":"openweather","label":"current","data":{}}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestIngestWeatherRejectsInvalidBody(t *testing.T) {
	useCase := &fakeIngestUseCase{}
	e, _ := setupController(useCase)

	rec := postWeather(e, `{not json`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestIngestWeatherReportsConflictForDuplicates(t *testing.T) {
	useCase := &fakeIngestUseCase{ingestErr: ingest.ErrDuplicate}
	e, _ := setupController(useCase)

	rec := postWeather(e, `{"source":"weatherapi","label":"current","data":{"current":{}}}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("error body must carry a message")
	}
}

func TestStatusReportsUp(t *testing.T) {
	e, _ := setupController(&fakeIngestUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collectors/status", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"UP"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestFindAllLocationsUsesPaginationParams(t *testing.T) {
	useCase := &fakeIngestUseCase{
		locations: model.NewPage([]entity.Location{{ID: 1, Name: "Lisbon"}}, 2, 5, 11),
	}
	e, _ := setupController(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collectors/weather/locations?page=2&size=5", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if useCase.lastPage != 2 || useCase.lastSize != 5 {
		t.Fatalf("expected page=2 size=5, got page=%d size=%d", useCase.lastPage, useCase.lastSize)
	}

	var page model.Page[entity.Location]
	if err := json.Unmarshal(rec.Body.Bytes(), &page); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if page.TotalElements != 11 || len(page.Content) != 1 {
		t.Fatalf("unexpected page: %+v", page)
	}
}

func TestFindAllLocationsDefaultsPagination(t *testing.T) {
	useCase := &fakeIngestUseCase{
		locations: model.NewPage([]entity.Location{}, 0, 10, 0),
	}
	e, _ := setupController(useCase)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/collectors/weather/locations", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if useCase.lastPage != 0 || useCase.lastSize != 10 {
		t.Fatalf("expected defaults page=0 size=10, got page=%d size=%d", useCase.lastPage, useCase.lastSize)
	}
}
