package db

import (
	"errors"
	"time"

	"weather-collector/internal/domain/entity"

	"gorm.io/gorm"
)

type GormWeatherDBGateway struct {
	DB *gorm.DB
}

var _ WeatherDBGateway = (*GormWeatherDBGateway)(nil)

func NewGormWeatherDBGateway(db *gorm.DB) *GormWeatherDBGateway {
	return &GormWeatherDBGateway{DB: db}
}

// IsDuplicateError reports whether err is a unique-constraint violation.
// Relies on gorm's error translation being enabled on the connection.
func IsDuplicateError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// FindLocation looks a location up by its natural key. Returns nil without
// error when no row matches.
func (gateway *GormWeatherDBGateway) FindLocation(name string, region string, country string) (*entity.Location, error) {
	var location entity.Location
	err := gateway.DB.
		Where("name = ? AND region = ? AND country = ?", name, region, country).
		First(&location).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &location, nil
}

func (gateway *GormWeatherDBGateway) CreateLocation(location entity.Location) (*entity.Location, error) {
	if err := gateway.DB.Create(&location).Error; err != nil {
		return nil, err
	}
	return &location, nil
}

func (gateway *GormWeatherDBGateway) FindAllLocations(page int, size int) ([]entity.Location, error) {
	var locations []entity.Location
	err := gateway.DB.
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&locations).Error
	return locations, err
}

func (gateway *GormWeatherDBGateway) CountLocations() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.Location{}).Count(&count).Error
	return count, err
}

// FindCurrentWeatherByEpoch returns the reading with the given provider
// epoch, or nil when none exists.
func (gateway *GormWeatherDBGateway) FindCurrentWeatherByEpoch(epoch int64) (*entity.CurrentWeather, error) {
	var weather entity.CurrentWeather
	err := gateway.DB.
		Where("last_updated_epoch = ?", epoch).
		First(&weather).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &weather, nil
}

// CreateCurrentWeather inserts the reading and its sub-objects in a single
// transaction; gorm cascades the Condition and AirQuality associations.
func (gateway *GormWeatherDBGateway) CreateCurrentWeather(weather entity.CurrentWeather) (*entity.CurrentWeather, error) {
	if err := gateway.DB.Create(&weather).Error; err != nil {
		return nil, err
	}
	return &weather, nil
}

func (gateway *GormWeatherDBGateway) CreateCurrentWeatherJSON(payload string) (*entity.CurrentWeatherJSON, error) {
	row := entity.CurrentWeatherJSON{Payload: payload}
	if err := gateway.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (gateway *GormWeatherDBGateway) CreateForecastJSON(payload string) (*entity.ForecastJSON, error) {
	row := entity.ForecastJSON{Payload: payload}
	if err := gateway.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// DeleteRawCopiesBefore removes raw payload copies older than the cutoff from
// both JSON tables and returns the number of rows deleted.
func (gateway *GormWeatherDBGateway) DeleteRawCopiesBefore(cutoff time.Time) (int64, error) {
	var total int64

	result := gateway.DB.
		Where("created_at < ?", cutoff).
		Delete(&entity.CurrentWeatherJSON{})
	if result.Error != nil {
		return total, result.Error
	}
	total += result.RowsAffected

	result = gateway.DB.
		Where("created_at < ?", cutoff).
		Delete(&entity.ForecastJSON{})
	if result.Error != nil {
		return total, result.Error
	}
	total += result.RowsAffected

	return total, nil
}
