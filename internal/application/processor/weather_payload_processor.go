package processor

import (
	"encoding/json"
	"errors"
	"fmt"

	"weather-collector/internal/domain/model"
	"weather-collector/internal/domain/usecase/ingest"
	"weather-collector/pkg/log"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

// WeatherPayloadProcessor ingests weather payload envelopes arriving over the
// queue instead of the HTTP endpoint.
type WeatherPayloadProcessor struct {
	ingestUseCase ingest.UseCase
}

func NewWeatherPayloadProcessor(ingestUseCase ingest.UseCase) *WeatherPayloadProcessor {
	return &WeatherPayloadProcessor{
		ingestUseCase: ingestUseCase,
	}
}

// HandleMessage implements the sqs.Handler interface
func (p *WeatherPayloadProcessor) HandleMessage(msg *types.Message) error {
	if msg == nil || msg.Body == nil {
		return fmt.Errorf("received nil message or message body")
	}

	log.Infof("Processing weather payload message: %s", *msg.MessageId)

	var payload model.WeatherPayload
	if err := json.Unmarshal([]byte(*msg.Body), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal message body: %w", err)
	}

	result, err := p.ingestUseCase.IngestPayload(payload)
	if err != nil {
		// Duplicates are expected under at-least-once delivery; drop the
		// message instead of returning it to the queue.
		if errors.Is(err, ingest.ErrDuplicate) {
			log.Infof("Dropping duplicate weather payload message: %s", *msg.MessageId)
			return nil
		}
		return fmt.Errorf("failed to ingest %s/%s payload: %w", payload.Source, payload.Label, err)
	}

	log.Infof("Successfully ingested %s/%s payload, location id=%d", payload.Source, payload.Label, result.LocationID)
	return nil
}
