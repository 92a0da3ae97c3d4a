package external

import (
	"encoding/json"
	"testing"
)

// Trimmed /v1/current.json body with the aqi=yes block enabled.
const currentFixture = `{
	"location": {
		"name": "London",
		"region": "City of London, Greater London",
		"country": "United Kingdom",
		"lat": 51.52,
		"lon": -0.11,
		"tz_id": "Europe/London",
		"localtime_epoch": 1717245000,
		"localtime": "2024-06-01 13:30"
	},
	"current": {
		"last_updated_epoch": 1717244100,
		"last_updated": "2024-06-01 13:15",
		"temp_c": 17.0,
		"temp_f": 62.6,
		"is_day": 1,
		"condition": {
			"text": "Partly cloudy",
			"icon": "//cdn.weatherapi.com/weather/64x64/day/116.png",
			"code": 1003
		},
		"wind_mph": 9.4,
		"wind_kph": 15.1,
		"wind_degree": 230,
		"wind_dir": "SW",
		"pressure_mb": 1012.0,
		"pressure_in": 29.88,
		"precip_mm": 0.0,
		"precip_in": 0.0,
		"humidity": 63,
		"cloud": 50,
		"feelslike_c": 17.0,
		"feelslike_f": 62.6,
		"vis_km": 10.0,
		"vis_miles": 6.0,
		"uv": 5.0,
		"gust_mph": 12.3,
		"gust_kph": 19.8,
		"air_quality": {
			"co": 233.6,
			"no2": 13.5,
			"o3": 54.4,
			"so2": 2.5,
			"pm2_5": 5.9,
			"pm10": 7.2,
			"us-epa-index": 1,
			"gb-defra-index": 1
		}
	}
}`

const forecastFixture = `{
	"location": {
		"name": "London",
		"region": "City of London, Greater London",
		"country": "United Kingdom"
	},
	"current": {
		"last_updated_epoch": 1717244100,
		"temp_c": 17.0
	},
	"forecast": {
		"forecastday": [
			{"date": "2024-06-01", "date_epoch": 1717200000},
			{"date": "2024-06-02", "date_epoch": 1717286400},
			{"date": "2024-06-03", "date_epoch": 1717372800}
		]
	}
}`

func TestCurrentWeatherResponseDecode(t *testing.T) {
	var body CurrentWeatherResponse
	if err := json.Unmarshal([]byte(currentFixture), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if body.Location.Name != "London" || body.Location.Country != "United Kingdom" {
		t.Fatalf("unexpected location: %+v", body.Location)
	}
	if body.Location.TzID != "Europe/London" || body.Location.LocaltimeEpoch != 1717245000 {
		t.Fatalf("unexpected location time fields: %+v", body.Location)
	}

	if body.Current.LastUpdatedEpoch != 1717244100 {
		t.Fatalf("unexpected epoch: %d", body.Current.LastUpdatedEpoch)
	}
	if body.Current.TempC != 17.0 || body.Current.WindDir != "SW" || body.Current.Humidity != 63 {
		t.Fatalf("unexpected current block: %+v", body.Current)
	}
	if body.Current.Condition.Code != 1003 || body.Current.Condition.Text != "Partly cloudy" {
		t.Fatalf("unexpected condition: %+v", body.Current.Condition)
	}

	aq := body.Current.AirQuality
	if aq == nil {
		t.Fatal("air_quality block was not decoded")
	}
	if aq.Pm25 != 5.9 || aq.UsEpaIndex != 1 || aq.GbDefraIndex != 1 {
		t.Fatalf("unexpected air quality: %+v", aq)
	}
}

func TestCurrentWeatherResponseWithoutAirQuality(t *testing.T) {
	var body CurrentWeatherResponse
	if err := json.Unmarshal([]byte(forecastFixture), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Current.AirQuality != nil {
		t.Fatalf("air quality must be nil when absent, got %+v", body.Current.AirQuality)
	}
}

func TestForecastResponseDecode(t *testing.T) {
	var body ForecastResponse
	if err := json.Unmarshal([]byte(forecastFixture), &body); err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if body.Location.Name != "London" {
		t.Fatalf("unexpected location: %+v", body.Location)
	}
	if body.Current == nil || body.Current.LastUpdatedEpoch != 1717244100 {
		t.Fatalf("unexpected current block: %+v", body.Current)
	}
	if len(body.Forecast.ForecastDay) != 3 {
		t.Fatalf("expected 3 forecast days, got %d", len(body.Forecast.ForecastDay))
	}
	if body.Forecast.ForecastDay[0].Date != "2024-06-01" || body.Forecast.ForecastDay[0].DateEpoch != 1717200000 {
		t.Fatalf("unexpected first day: %+v", body.Forecast.ForecastDay[0])
	}
}

func TestAPIErrorResponseDecode(t *testing.T) {
	var body APIErrorResponse
	err := json.Unmarshal([]byte(`{"error":{"code":1006,"message":"No matching location found."}}`), &body)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if body.Error.Code != 1006 || body.Error.Message == "" {
		t.Fatalf("unexpected error body: %+v", body)
	}
}
