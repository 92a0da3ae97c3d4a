package controller

import (
	"errors"
	"net/http"

	"weather-collector/internal/domain/model"
	"weather-collector/internal/domain/usecase/ingest"
	"weather-collector/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type CollectorController struct {
	api     *echo.Group
	useCase ingest.UseCase
}

func NewCollectorController(api *echo.Group, useCase ingest.UseCase) *CollectorController {
	return &CollectorController{api: api, useCase: useCase}
}

// InitCollectorRoutes initializes collector ingestion routes
func (controller *CollectorController) InitCollectorRoutes() {
	controller.api.POST("/collectors/weather", controller.IngestWeather)
	controller.api.GET("/collectors/status", controller.Status)
	controller.api.GET("/collectors/weather/locations", controller.FindAllLocations)
}

// IngestWeather godoc
// @Summary Ingest a forwarded weather payload
// @Description Receive a collector's weather payload envelope and store it
// @Tags collectors
// @Accept json
// @Produce json
// @Param payload body model.WeatherPayload true "Weather payload envelope"
// @Success 201 {object} model.IngestResult "Payload stored"
// @Failure 400 {object} map[string]string "Unknown source/label or invalid data"
// @Failure 409 {object} map[string]string "Reading already stored"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /collectors/weather [post]
func (controller *CollectorController) IngestWeather(c echo.Context) error {
	var payload model.WeatherPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	result, err := controller.useCase.IngestPayload(payload)
	if err != nil {
		switch {
		case errors.Is(err, ingest.ErrUnknownPayload), errors.Is(err, ingest.ErrInvalidPayload):
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, ingest.ErrDuplicate):
			return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
		default:
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
	}

	return c.JSON(http.StatusCreated, result)
}

// Status godoc
// @Summary Collector ingestion status
// @Description Report that the ingestion endpoint is accepting payloads
// @Tags collectors
// @Produce json
// @Success 200 {object} map[string]string "Service status"
// @Router /collectors/status [get]
func (controller *CollectorController) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "UP"})
}

// FindAllLocations godoc
// @Summary Get all known locations
// @Description Retrieve the normalized locations with pagination
// @Tags collectors
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} entity.Location "Paginated list of locations"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /collectors/weather/locations [get]
func (controller *CollectorController) FindAllLocations(c echo.Context) error {
	var page int = numberutils.ToIntWithDefault(c.QueryParam("page"), 0)
	var size int = numberutils.ToIntWithDefault(c.QueryParam("size"), 10)

	locationsPage, err := controller.useCase.FindAllLocations(page, size)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, locationsPage)
}
