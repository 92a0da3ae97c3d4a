package http

import (
	"context"
)

// ResponseCache stores decoded response bodies for GET requests. The signature
// matches the redis cache in pkg/redis, which is the usual backing store; any
// implementation with the same contract works.
type ResponseCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
}

// cachedResponse is the envelope stored in the response cache.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// lookupCache tries to serve a GET request from the cache. It returns true
// when a cached entry was found and decoded into successResp.
func (hc *Client) lookupCache(url string, successResp any) (int, bool) {
	if hc.cache == nil || successResp == nil {
		return 0, false
	}

	var cached cachedResponse
	if err := hc.cache.Get(context.Background(), url, &cached); err != nil {
		return 0, false
	}

	if err := hc.unmarshalResponse(cached.Body, cached.ContentType, successResp); err != nil {
		return 0, false
	}
	return cached.Status, true
}

// storeCache records a successful GET response body. Failures are ignored; the
// cache is an optimization, never a requirement.
func (hc *Client) storeCache(url string, status int, contentType string, body []byte) {
	if hc.cache == nil {
		return
	}

	_ = hc.cache.Set(context.Background(), url, cachedResponse{
		Status:      status,
		ContentType: contentType,
		Body:        body,
	})
}
