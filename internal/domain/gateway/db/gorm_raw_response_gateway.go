package db

import (
	"weather-collector/internal/domain/entity"

	"gorm.io/gorm"
)

type GormRawResponseGateway struct {
	DB *gorm.DB
}

var _ RawResponseGateway = (*GormRawResponseGateway)(nil)

func NewGormRawResponseGateway(db *gorm.DB) *GormRawResponseGateway {
	return &GormRawResponseGateway{DB: db}
}

func (gateway *GormRawResponseGateway) CreateCurrentWeather(payload string) (*entity.CurrentWeatherResponse, error) {
	row := entity.CurrentWeatherResponse{Payload: payload, Retain: true}
	if err := gateway.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (gateway *GormRawResponseGateway) FindAllCurrentWeather(page int, size int) ([]entity.CurrentWeatherResponse, error) {
	var rows []entity.CurrentWeatherResponse
	err := gateway.DB.
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&rows).Error
	return rows, err
}

func (gateway *GormRawResponseGateway) FindRetainedCurrentWeather() ([]entity.CurrentWeatherResponse, error) {
	var rows []entity.CurrentWeatherResponse
	err := gateway.DB.
		Where("retain = ?", true).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (gateway *GormRawResponseGateway) CountCurrentWeather() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.CurrentWeatherResponse{}).Count(&count).Error
	return count, err
}

func (gateway *GormRawResponseGateway) SetCurrentWeatherRetention(id uint, retain bool) error {
	return gateway.DB.
		Model(&entity.CurrentWeatherResponse{}).
		Where("id = ?", id).
		Update("retain", retain).Error
}

func (gateway *GormRawResponseGateway) FindRetiredCurrentWeatherIDs() ([]uint, error) {
	var ids []uint
	err := gateway.DB.
		Model(&entity.CurrentWeatherResponse{}).
		Where("retain = ?", false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteRetiredCurrentWeatherByID deletes one retired row. The retain guard in
// the WHERE clause keeps un-forwarded rows safe even if the caller passes a
// wrong id.
func (gateway *GormRawResponseGateway) DeleteRetiredCurrentWeatherByID(id uint) error {
	return gateway.DB.
		Where("id = ? AND retain = ?", id, false).
		Delete(&entity.CurrentWeatherResponse{}).Error
}

func (gateway *GormRawResponseGateway) CreateForecast(payload string) (*entity.ForecastResponse, error) {
	row := entity.ForecastResponse{Payload: payload, Retain: true}
	if err := gateway.DB.Create(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (gateway *GormRawResponseGateway) FindAllForecasts(page int, size int) ([]entity.ForecastResponse, error) {
	var rows []entity.ForecastResponse
	err := gateway.DB.
		Order("id").
		Offset(page * size).
		Limit(size).
		Find(&rows).Error
	return rows, err
}

func (gateway *GormRawResponseGateway) FindRetainedForecasts() ([]entity.ForecastResponse, error) {
	var rows []entity.ForecastResponse
	err := gateway.DB.
		Where("retain = ?", true).
		Order("id").
		Find(&rows).Error
	return rows, err
}

func (gateway *GormRawResponseGateway) CountForecasts() (int64, error) {
	var count int64
	err := gateway.DB.Model(&entity.ForecastResponse{}).Count(&count).Error
	return count, err
}

func (gateway *GormRawResponseGateway) SetForecastRetention(id uint, retain bool) error {
	return gateway.DB.
		Model(&entity.ForecastResponse{}).
		Where("id = ?", id).
		Update("retain", retain).Error
}

func (gateway *GormRawResponseGateway) FindRetiredForecastIDs() ([]uint, error) {
	var ids []uint
	err := gateway.DB.
		Model(&entity.ForecastResponse{}).
		Where("retain = ?", false).
		Order("id").
		Pluck("id", &ids).Error
	return ids, err
}

func (gateway *GormRawResponseGateway) DeleteRetiredForecastByID(id uint) error {
	return gateway.DB.
		Where("id = ? AND retain = ?", id, false).
		Delete(&entity.ForecastResponse{}).Error
}
