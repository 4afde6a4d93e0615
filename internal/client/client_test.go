package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfin-io/campfin/pkg/campfin"
)

// newTestClient builds a client pointed at the test server, with caching off
// so every call is observable.
func newTestClient(t *testing.T, serverURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &campfin.Config{
		APIKey:  "test-key",
		BaseURL: serverURL,
		Cache:   &campfin.CacheConfig{Type: campfin.CacheTypeNone},
	})
	require.NoError(t, err)

	return client
}

// writeResults writes a success envelope whose results field is the given
// value.
func writeResults(t *testing.T, writer http.ResponseWriter, results interface{}) {
	t.Helper()

	envelope := map[string]interface{}{
		"status":  "OK",
		"cycle":   2012,
		"results": results,
	}

	err := json.NewEncoder(writer).Encode(envelope)
	require.NoError(t, err)
}

func TestNew(t *testing.T) {
	t.Run("rejects nil config", func(t *testing.T) {
		_, err := New(context.Background(), nil)
		require.ErrorIs(t, err, campfin.ErrConfigRequired)
	})

	t.Run("rejects missing API key", func(t *testing.T) {
		_, err := New(context.Background(), &campfin.Config{})
		require.ErrorIs(t, err, campfin.ErrAPIKeyRequired)
	})

	t.Run("exposes topic clients", func(t *testing.T) {
		client, err := New(context.Background(), &campfin.Config{APIKey: "test-key"})
		require.NoError(t, err)
		assert.NotNil(t, client.Filings())
		assert.NotNil(t, client.Candidates())
		assert.NotNil(t, client.Committees())
	})
}

func TestClient_Fetch(t *testing.T) {
	t.Run("bare path gets the json suffix", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/2012/candidates/P80003338.json", request.URL.Path)
			assert.Equal(t, "test-key", request.URL.Query().Get("api-key"))
			writeResults(t, writer, []map[string]string{{"id": "P80003338"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		envelope, err := client.Fetch(context.Background(), "/2012/candidates/P80003338", nil)
		require.NoError(t, err)
		assert.Equal(t, "OK", envelope.Status)
		assert.Equal(t, 2012, envelope.Cycle)
	})

	t.Run("suffixed path is left alone", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/2012/candidates/P80003338.json", request.URL.Path)
			writeResults(t, writer, []map[string]string{{"id": "P80003338"}})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Fetch(context.Background(), "/2012/candidates/P80003338.json", nil)
		require.NoError(t, err)
	})

	t.Run("fully-qualified URI is used unchanged", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/2012/committees/C00553560.json", request.URL.Path)
			assert.Equal(t, "test-key", request.URL.Query().Get("api-key"))
			writeResults(t, writer, []map[string]string{{"id": "C00553560"}})
		}))
		defer server.Close()

		// Base URL deliberately unreachable; only the given URI may be used
		client := newTestClient(t, "http://unreachable.invalid")

		envelope, err := client.Fetch(context.Background(), server.URL+"/2012/committees/C00553560.json", nil)
		require.NoError(t, err)
		assert.Equal(t, "OK", envelope.Status)
	})

	t.Run("query parameters are forwarded", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "40", request.URL.Query().Get("offset"))
			writeResults(t, writer, []map[string]string{})
		}))
		defer server.Close()

		client := newTestClient(t, server.URL)

		_, err := client.Fetch(context.Background(), "/2012/filings", campfin.NewQuery().WithOffset(40))
		require.NoError(t, err)
	})
}
