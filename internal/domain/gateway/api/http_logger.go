package api

import (
	"weather-collector/pkg/http"
	"weather-collector/pkg/log"
)

// zapHTTPLogger logs outbound HTTP traffic through the application logger.
type zapHTTPLogger struct{}

var _ http.HTTPLogger = (*zapHTTPLogger)(nil)

// NewHTTPLogger returns an HTTPLogger for outbound gateway clients.
func NewHTTPLogger() http.HTTPLogger {
	return &zapHTTPLogger{}
}

func (l *zapHTTPLogger) LogRequest(method, url string, headers map[string]string, body string) {
	log.Debugf("HTTP %s %s", method, url)
}

func (l *zapHTTPLogger) LogResponseSuccess(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64) {
	log.Debugf("HTTP %s %s -> %d (%dms)", method, url, httpStatus, latency)
}

func (l *zapHTTPLogger) LogResponseError(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error) {
	log.Errorf("HTTP %s %s -> %d (%dms): %v", method, url, httpStatus, latency, err)
}

func (l *zapHTTPLogger) LogRequestRetry(method, url string, headers map[string]string, body string, httpStatus int, responseBody string, latency int64, err error, retryCount, maxRetries int) {
	log.Warnf("HTTP %s %s failed with status %d, retry %d/%d: %v", method, url, httpStatus, retryCount, maxRetries, err)
}
