package forward

import "weather-collector/internal/domain/model"

// UseCase drains stored raw responses to the central ingestion API.
type UseCase interface {
	// ForwardPending POSTs every row with retain=true to the central API and
	// retires rows the remote accepted (2xx) or already held (409). Rows that
	// fail stay retained and are retried on the next scheduled run.
	ForwardPending() (*model.ForwardReport, error)
}
