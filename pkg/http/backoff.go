package http

import (
	"net/http"
	"time"
)

// BackoffConfig bounds the retry behavior for an outbound request.
// Retries apply only to transport errors and retryable status codes
// (5xx, 408, 429); other error responses are returned immediately.
type BackoffConfig struct {
	// MaxRetries is the number of additional attempts after the first one.
	MaxRetries int
	// Interval is the delay before the first retry.
	Interval time.Duration
	// Stagger is added to the delay after every failed attempt.
	Stagger time.Duration
}

// DefaultBackoff returns the standard retry policy for upstream calls:
// five retries, five seconds apart, staggered by three seconds per attempt.
func DefaultBackoff() *BackoffConfig {
	return &BackoffConfig{
		MaxRetries: 5,
		Interval:   5 * time.Second,
		Stagger:    3 * time.Second,
	}
}

// doRequestWithBackoff sends the request, retrying per the provided backoff
// configuration. A nil configuration disables retries entirely.
func (hc *Client) doRequestWithBackoff(method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, backoff *BackoffConfig) (any, any, int, error) {
	if backoff == nil || backoff.MaxRetries <= 0 {
		return hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
	}

	interval := backoff.Interval

	var (
		success any
		errResp any
		status  int
		err     error
	)

	for attempt := 0; ; attempt++ {
		start := time.Now()
		success, errResp, status, err = hc.doRequest(method, path, queryParams, headers, body, successResp, errorResp)
		if err == nil || !isRetryableStatus(status) || attempt == backoff.MaxRetries {
			return success, errResp, status, err
		}

		if hc.logger != nil {
			hc.logger.LogRequestRetry(method, hc.buildURL(path), headers, "", status, "", time.Since(start).Milliseconds(), err, attempt+1, backoff.MaxRetries)
		}

		time.Sleep(interval)
		interval += backoff.Stagger
	}
}

// isRetryableStatus reports whether a request that ended with the given status
// code may be retried. A zero status means the request never got a response.
func isRetryableStatus(status int) bool {
	if status == 0 {
		return true
	}
	return status >= 500 || status == http.StatusRequestTimeout || status == http.StatusTooManyRequests
}
