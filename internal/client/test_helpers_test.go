package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ledgeline-io/stripe-client/internal/httpc"
)

// newTestClient spins up a stub API server and a resource client pointed at
// it. Retries are enabled with negligible waits so retry-path tests stay
// fast.
func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	httpClient := httpc.NewClient(server.URL, "sk_test_123",
		httpc.WithRetryConfig(2, time.Millisecond, 2*time.Millisecond))

	return New(httpClient)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body string) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_, err := w.Write([]byte(body))
	if err != nil {
		t.Errorf("writing stub response: %v", err)
	}
}
