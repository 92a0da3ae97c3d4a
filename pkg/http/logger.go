package http

// HTTPLogger receives request lifecycle callbacks from the client. Implement
// it to route outbound HTTP traffic into the application's logging.
type HTTPLogger interface {
	// LogRequest fires just before the request is sent.
	LogRequest(method, url string, headers map[string]string, body string)

	// LogResponseSuccess fires after a response with a non-error HTTP status.
	LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64)

	// LogResponseError fires after a response with an error HTTP status or a
	// transport failure.
	LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error)

	// LogRequestRetry fires before each backoff retry attempt.
	LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int)
}
