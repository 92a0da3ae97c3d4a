package forward

import (
	"errors"
	"net/http"
	"testing"

	"weather-collector/internal/domain/entity"
	"weather-collector/internal/domain/model"
)

// fakeRawGateway implements db.RawResponseGateway in memory.
type fakeRawGateway struct {
	current       []entity.CurrentWeatherResponse
	forecasts     []entity.ForecastResponse
	retentionErrs map[uint]error
}

func newFakeRawGateway() *fakeRawGateway {
	return &fakeRawGateway{retentionErrs: map[uint]error{}}
}

func (g *fakeRawGateway) CreateCurrentWeather(payload string) (*entity.CurrentWeatherResponse, error) {
	row := entity.CurrentWeatherResponse{ID: uint(len(g.current) + 1), Payload: payload, Retain: true}
	g.current = append(g.current, row)
	return &row, nil
}

func (g *fakeRawGateway) FindAllCurrentWeather(page int, size int) ([]entity.CurrentWeatherResponse, error) {
	return g.current, nil
}

func (g *fakeRawGateway) FindRetainedCurrentWeather() ([]entity.CurrentWeatherResponse, error) {
	var rows []entity.CurrentWeatherResponse
	for _, row := range g.current {
		if row.Retain {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (g *fakeRawGateway) CountCurrentWeather() (int64, error) {
	return int64(len(g.current)), nil
}

func (g *fakeRawGateway) SetCurrentWeatherRetention(id uint, retain bool) error {
	if err := g.retentionErrs[id]; err != nil {
		return err
	}
	for i := range g.current {
		if g.current[i].ID == id {
			g.current[i].Retain = retain
		}
	}
	return nil
}

func (g *fakeRawGateway) FindRetiredCurrentWeatherIDs() ([]uint, error) {
	var ids []uint
	for _, row := range g.current {
		if !row.Retain {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

func (g *fakeRawGateway) DeleteRetiredCurrentWeatherByID(id uint) error {
	for i, row := range g.current {
		if row.ID == id && !row.Retain {
			g.current = append(g.current[:i], g.current[i+1:]...)
			return nil
		}
	}
	return nil
}

func (g *fakeRawGateway) CreateForecast(payload string) (*entity.ForecastResponse, error) {
	row := entity.ForecastResponse{ID: uint(len(g.forecasts) + 1), Payload: payload, Retain: true}
	g.forecasts = append(g.forecasts, row)
	return &row, nil
}

func (g *fakeRawGateway) FindAllForecasts(page int, size int) ([]entity.ForecastResponse, error) {
	return g.forecasts, nil
}

func (g *fakeRawGateway) FindRetainedForecasts() ([]entity.ForecastResponse, error) {
	var rows []entity.ForecastResponse
	for _, row := range g.forecasts {
		if row.Retain {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (g *fakeRawGateway) CountForecasts() (int64, error) {
	return int64(len(g.forecasts)), nil
}

func (g *fakeRawGateway) SetForecastRetention(id uint, retain bool) error {
	for i := range g.forecasts {
		if g.forecasts[i].ID == id {
			g.forecasts[i].Retain = retain
		}
	}
	return nil
}

func (g *fakeRawGateway) FindRetiredForecastIDs() ([]uint, error) {
	var ids []uint
	for _, row := range g.forecasts {
		if !row.Retain {
			ids = append(ids, row.ID)
		}
	}
	return ids, nil
}

func (g *fakeRawGateway) DeleteRetiredForecastByID(id uint) error {
	for i, row := range g.forecasts {
		if row.ID == id && !row.Retain {
			g.forecasts = append(g.forecasts[:i], g.forecasts[i+1:]...)
			return nil
		}
	}
	return nil
}

// fakeCentralGateway scripts per-payload responses keyed by the raw body.
type fakeCentralGateway struct {
	statusByBody map[string]int
	received     []model.WeatherPayload
}

func (g *fakeCentralGateway) ForwardWeather(payload model.WeatherPayload) (int, error) {
	g.received = append(g.received, payload)
	status, ok := g.statusByBody[string(payload.Data)]
	if !ok {
		status = http.StatusCreated
	}
	if status >= 200 && status < 300 {
		return status, nil
	}
	return status, errors.New("http error")
}

func (g *fakeCentralGateway) Status() (string, error) {
	return "UP", nil
}

func TestForwardPendingRetiresDeliveredRows(t *testing.T) {
	rawGateway := newFakeRawGateway()
	_, _ = rawGateway.CreateCurrentWeather(`{"a":1}`)
	_, _ = rawGateway.CreateForecast(`{"b":2}`)

	central := &fakeCentralGateway{statusByBody: map[string]int{}}
	useCase := NewForwardUseCase(rawGateway, central)

	report, err := useCase.ForwardPending()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Attempted != 2 || report.Delivered != 2 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if rawGateway.current[0].Retain || rawGateway.forecasts[0].Retain {
		t.Fatal("delivered rows must be retired")
	}

	if central.received[0].Source != model.SourceWeatherAPI || central.received[0].Label != model.LabelCurrent {
		t.Fatalf("unexpected envelope: %+v", central.received[0])
	}
	if central.received[1].Label != model.LabelForecast {
		t.Fatalf("unexpected envelope: %+v", central.received[1])
	}
}

func TestForwardPendingTreatsConflictAsDelivered(t *testing.T) {
	rawGateway := newFakeRawGateway()
	_, _ = rawGateway.CreateCurrentWeather(`{"dup":true}`)

	central := &fakeCentralGateway{statusByBody: map[string]int{
		`{"dup":true}`: http.StatusConflict,
	}}
	useCase := NewForwardUseCase(rawGateway, central)

	report, err := useCase.ForwardPending()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Conflicts != 1 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if rawGateway.current[0].Retain {
		t.Fatal("a 409 response must retire the row")
	}
}

func TestForwardPendingKeepsFailedRowsRetained(t *testing.T) {
	rawGateway := newFakeRawGateway()
	_, _ = rawGateway.CreateCurrentWeather(`{"bad":1}`)
	_, _ = rawGateway.CreateCurrentWeather(`{"good":1}`)

	central := &fakeCentralGateway{statusByBody: map[string]int{
		`{"bad":1}`: http.StatusInternalServerError,
	}}
	useCase := NewForwardUseCase(rawGateway, central)

	report, err := useCase.ForwardPending()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Attempted != 2 || report.Delivered != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !rawGateway.current[0].Retain {
		t.Fatal("failed row must stay retained for the next run")
	}
	if rawGateway.current[1].Retain {
		t.Fatal("delivered row must be retired despite the earlier failure")
	}
}

func TestForwardPendingKeepsRowWhenRetentionUpdateFails(t *testing.T) {
	rawGateway := newFakeRawGateway()
	row, _ := rawGateway.CreateCurrentWeather(`{"a":1}`)
	rawGateway.retentionErrs[row.ID] = errors.New("db down")

	central := &fakeCentralGateway{statusByBody: map[string]int{}}
	useCase := NewForwardUseCase(rawGateway, central)

	report, err := useCase.ForwardPending()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Delivery counted, row still retained; the next run re-POSTs it and the
	// central API's dedup answers 409.
	if report.Delivered != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if !rawGateway.current[0].Retain {
		t.Fatal("row must stay retained when the retain update fails")
	}
}
