package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// mapCache is an in-memory ResponseCache for tests.
type mapCache struct {
	entries map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string][]byte)}
}

func (c *mapCache) Get(ctx context.Context, key string, dest any) error {
	raw, ok := c.entries[key]
	if !ok {
		return errors.New("cache miss")
	}
	return json.Unmarshal(raw, dest)
}

func (c *mapCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func TestGetResponsesAreCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"value":"fresh"}`))
	}))
	defer server.Close()

	cache := newMapCache()
	client := NewHttpClient(server.URL, ClientOptions{Cache: cache})

	type payload struct {
		Value string `json:"value"`
	}

	var first payload
	_, _, status, err := client.Get("/data", nil, nil, &first, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK || first.Value != "fresh" {
		t.Fatalf("unexpected first response: status %d, value %q", status, first.Value)
	}

	var second payload
	_, _, status, err = client.Get("/data", nil, nil, &second, nil)
	if err != nil {
		t.Fatalf("unexpected error on cached request: %v", err)
	}
	if status != http.StatusOK || second.Value != "fresh" {
		t.Fatalf("unexpected cached response: status %d, value %q", status, second.Value)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single upstream call, got %d", got)
	}
}

func TestPostResponsesAreNotCached(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cache := newMapCache()
	client := NewHttpClient(server.URL, ClientOptions{Cache: cache})

	for i := 0; i < 2; i++ {
		resp := map[string]any{}
		if _, _, _, err := client.Post("/data", nil, nil, map[string]string{"k": "v"}, &resp, nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 2 {
		t.Fatalf("POST requests must hit upstream every time, got %d calls", got)
	}
	if len(cache.entries) != 0 {
		t.Fatalf("POST responses must not be cached, found %d entries", len(cache.entries))
	}
}

func TestErrorResponsesAreNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	cache := newMapCache()
	client := NewHttpClient(server.URL, ClientOptions{Cache: cache})

	var resp map[string]any
	if _, _, _, err := client.Get("/data", nil, nil, &resp, nil); err == nil {
		t.Fatal("expected an error")
	}
	if len(cache.entries) != 0 {
		t.Fatalf("error responses must not be cached, found %d entries", len(cache.entries))
	}
}
