package client

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// countingTransport records how many requests actually leave the client.
type countingTransport struct {
	calls int
	next  http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	if t.next == nil {
		return nil, errors.New("no transport configured")
	}
	return t.next.RoundTrip(req)
}

type testEnv struct {
	client    *Client
	session   *Session
	transport *countingTransport
	server    *httptest.Server
}

func newTestEnv(t *testing.T, handler http.Handler) *testEnv {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	session, err := NewSession(&MemoryTokenStore{})
	require.NoError(t, err)

	transport := &countingTransport{next: http.DefaultTransport}

	env := &testEnv{
		session:   session,
		transport: transport,
		server:    server,
	}
	env.client = New(Config{
		BaseURL: server.URL,
		Session: session,
		Catalog: &StaticCatalog{
			ProductID: "11111111-1111-1111-1111-111111111111",
			StoreID:   "22222222-2222-2222-2222-222222222222",
			UnitPrice: 99.99,
		},
		HTTPClient: &http.Client{Transport: transport},
	})
	return env
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
