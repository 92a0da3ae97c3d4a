package http

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func fastBackoff(maxRetries int) *BackoffConfig {
	return &BackoffConfig{
		MaxRetries: maxRetries,
		Interval:   time.Millisecond,
		Stagger:    time.Millisecond,
	}
}

func TestBackoffRetriesUntilSuccess(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	resp := struct {
		Ok bool `json:"ok"`
	}{}
	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		WithSuccessResp(&resp).
		WithBackoff(fastBackoff(5)).
		Execute()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("expected status 200, got %d", status)
	}
	if !resp.Ok {
		t.Fatal("success response was not decoded")
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestBackoffStopsAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, status, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		WithBackoff(fastBackoff(2)).
		Execute()

	if err == nil {
		t.Fatal("expected an error after exhausting retries")
	}
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", status)
	}
	// First attempt plus two retries.
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestBackoffDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, status, err := client.Request().
		WithMethod(POST).
		WithPath("/data").
		WithBody(map[string]string{"k": "v"}).
		WithBackoff(fastBackoff(5)).
		Execute()

	if err == nil {
		t.Fatal("expected an error for the 409 response")
	}
	if status != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", status)
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("409 must not be retried, got %d attempts", got)
	}
}

func TestNilBackoffDisablesRetries(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewHttpClient(server.URL, ClientOptions{})

	_, _, _, err := client.Request().
		WithMethod(GET).
		WithPath("/data").
		Execute()

	if err == nil {
		t.Fatal("expected an error")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected a single attempt without backoff, got %d", got)
	}
}
