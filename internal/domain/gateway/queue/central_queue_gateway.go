package queue

import (
	"net/http"

	"weather-collector/internal/domain/gateway/api"
	"weather-collector/internal/domain/model"
)

// centralQueueGateway delivers payload envelopes to the central API through
// a message queue instead of a direct HTTP call. The queue worker on the
// central side performs the actual ingestion, so an accepted send only means
// the envelope was handed off; duplicates are resolved by the worker.
type centralQueueGateway struct {
	sender    Sender
	queueName string
}

var _ api.CentralAPIGateway = (*centralQueueGateway)(nil)

func NewCentralQueueGateway(sender Sender, queueName string) api.CentralAPIGateway {
	return &centralQueueGateway{
		sender:    sender,
		queueName: queueName,
	}
}

// ForwardWeather enqueues one envelope. A successful send reports 202 so the
// caller retires the row; re-sends after a crash are deduplicated downstream.
func (gateway *centralQueueGateway) ForwardWeather(payload model.WeatherPayload) (int, error) {
	if err := gateway.sender.SendMessage(gateway.queueName, payload); err != nil {
		return 0, err
	}
	return http.StatusAccepted, nil
}

// Status reports the transport itself; the queue gives no visibility into the
// central API's health.
func (gateway *centralQueueGateway) Status() (string, error) {
	return "UP", nil
}
