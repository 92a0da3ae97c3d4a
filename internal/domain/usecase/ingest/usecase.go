package ingest

import (
	"errors"

	"weather-collector/internal/domain/entity"
	"weather-collector/internal/domain/model"
)

var (
	// ErrUnknownPayload marks a (source, label) pair no handler is registered for.
	ErrUnknownPayload = errors.New("unknown payload source/label")
	// ErrInvalidPayload marks a payload whose data block failed to decode.
	ErrInvalidPayload = errors.New("invalid payload data")
	// ErrDuplicate marks a reading the database already holds.
	ErrDuplicate = errors.New("duplicate weather reading")
)

// UseCase receives forwarded weather payloads and normalizes them into the
// central database.
type UseCase interface {
	// IngestPayload dispatches the payload to the handler registered for its
	// (source, label) pair. It returns ErrUnknownPayload for unregistered
	// pairs, ErrInvalidPayload for undecodable data and ErrDuplicate when the
	// reading is already stored.
	IngestPayload(payload model.WeatherPayload) (*model.IngestResult, error)

	// FindAllLocations pages through the normalized locations.
	FindAllLocations(page int, size int) (*model.Page[entity.Location], error)
}
