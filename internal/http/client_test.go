package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	campfinhttp "github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// MockLogger for testing.
type MockLogger struct {
	logs []map[string]interface{}
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "debug", "msg": msg, "fields": fields})
}

func (l *MockLogger) Info(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "info", "msg": msg, "fields": fields})
}

func (l *MockLogger) Warn(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "warn", "msg": msg, "fields": fields})
}

func (l *MockLogger) Error(msg string, fields map[string]interface{}) {
	l.logs = append(l.logs, map[string]interface{}{"level": "error", "msg": msg, "fields": fields})
}

func newCacheManager() *campfin.CacheManager {
	return campfin.NewCacheManager(campfin.NewMemoryCache(100), nil)
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/2012/filings.json", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "test-key", request.URL.Query().Get("api-key"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))

			_, _ = writer.Write([]byte(`{"status":"OK","results":[]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.Contains(t, string(resp.Body), "OK")
	})

	t.Run("query parameters are merged with the API key", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "20", request.URL.Query().Get("offset"))
			assert.Equal(t, "smith", request.URL.Query().Get("query"))
			assert.Equal(t, "test-key", request.URL.Query().Get("api-key"))

			_, _ = writer.Write([]byte(`{"status":"OK"}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key")

		query := url.Values{}
		query.Set("offset", "20")
		query.Set("query", "smith")

		resp, err := client.Get(context.Background(), "/2012/candidates/search.json", query)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("304 is success", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotModified)
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotModified, resp.StatusCode)
	})

	t.Run("404 maps to not found", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"status":"ERROR","errors":["no such candidate"]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key")

		resp, err := client.Get(context.Background(), "/2012/candidates/XXXXX.json", nil)
		require.Error(t, err)
		assert.True(t, campfin.IsNotFound(err))
		assert.Equal(t, "no such candidate", err.Error())

		// The response is still returned alongside the error
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("other failures join the API messages", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"status":"ERROR","errors":["server error","retry later"]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key")

		_, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.Error(t, err)
		assert.False(t, campfin.IsNotFound(err))
		assert.True(t, campfin.IsAPIError(err))
		assert.Equal(t, "server error; retry later", err.Error())
	})

	t.Run("failure statuses are mapped even when retries are enabled", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)
			writer.WriteHeader(http.StatusInternalServerError)
			_, _ = writer.Write([]byte(`{"status":"ERROR","errors":["server error","retry later"]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithRetryConfig(1, time.Millisecond, time.Millisecond))

		resp, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.Error(t, err)
		assert.True(t, campfin.IsAPIError(err))
		assert.Equal(t, "server error; retry later", err.Error())

		// The terminal 5xx response must survive the retry loop
		require.NotNil(t, resp)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, int64(2), requests.Load())
	})

	t.Run("fully-qualified URL bypasses the base URL", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/2012/candidates/P80003338.json", request.URL.Path)
			assert.Equal(t, "test-key", request.URL.Query().Get("api-key"))

			_, _ = writer.Write([]byte(`{"status":"OK"}`))
		}))
		defer server.Close()

		// The base URL points somewhere unreachable; the request must go to
		// the URL given at call time.
		client := campfinhttp.NewClient("http://unreachable.invalid", "test-key")

		resp, err := client.Get(context.Background(), server.URL+"/2012/candidates/P80003338.json", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("debug logging records the request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"status":"OK"}`))
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithLogger(logger),
			campfinhttp.WithDebug(true))

		_, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)
		assert.NotEmpty(t, logger.logs)
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Caching(t *testing.T) {
	t.Parallel()
	t.Run("identical GETs within the window hit the network once", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)
			_, _ = writer.Write([]byte(`{"status":"OK","results":[{"id":1}]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithCache(newCacheManager(), 5*time.Minute))

		first, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)

		second, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)

		assert.Equal(t, int64(1), requests.Load())
		assert.Equal(t, first.Body, second.Body)
		assert.Equal(t, http.StatusOK, second.StatusCode)
	})

	t.Run("expired entries are refetched", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)
			_, _ = writer.Write([]byte(`{"status":"OK"}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithCache(newCacheManager(), 10*time.Millisecond))

		_, err := client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)

		time.Sleep(20 * time.Millisecond)

		_, err = client.Get(context.Background(), "/2012/filings.json", nil)
		require.NoError(t, err)

		assert.Equal(t, int64(2), requests.Load())
	})

	t.Run("different query parameters are cached separately", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)
			_, _ = writer.Write([]byte(`{"status":"OK"}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithCache(newCacheManager(), 5*time.Minute))

		zero := url.Values{}
		zero.Set("offset", "0")

		twenty := url.Values{}
		twenty.Set("offset", "20")

		_, err := client.Get(context.Background(), "/2012/filings.json", zero)
		require.NoError(t, err)

		_, err = client.Get(context.Background(), "/2012/filings.json", twenty)
		require.NoError(t, err)

		assert.Equal(t, int64(2), requests.Load())
	})

	t.Run("error responses are not cached", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests.Add(1)
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"errors":["not found"]}`))
		}))
		defer server.Close()

		client := campfinhttp.NewClient(server.URL, "test-key",
			campfinhttp.WithCache(newCacheManager(), 5*time.Minute))

		_, err := client.Get(context.Background(), "/2012/candidates/XXXXX.json", nil)
		require.Error(t, err)

		_, err = client.Get(context.Background(), "/2012/candidates/XXXXX.json", nil)
		require.Error(t, err)

		assert.Equal(t, int64(2), requests.Load())
	})
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "reporting-pipeline", request.Header.Get("X-Request-Source"))
		_, _ = writer.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	chain := campfin.NewInterceptorChain()
	chain.AddRequestInterceptor(campfin.HeaderInterceptor(map[string]string{
		"X-Request-Source": "reporting-pipeline",
	}))

	var responseSeen atomic.Bool

	chain.AddResponseInterceptor(func(ctx context.Context, req *campfin.Request, resp *campfin.Response) error {
		responseSeen.Store(true)

		return nil
	})

	client := campfinhttp.NewClient(server.URL, "test-key",
		campfinhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/2012/filings.json", nil)
	require.NoError(t, err)
	assert.True(t, responseSeen.Load())
}

func TestClient_InterceptorsRunOnCacheHits(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests.Add(1)
		_, _ = writer.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	var intercepted atomic.Int64

	chain := campfin.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *campfin.Request) error {
		intercepted.Add(1)

		return nil
	})

	client := campfinhttp.NewClient(server.URL, "test-key",
		campfinhttp.WithCache(newCacheManager(), 5*time.Minute),
		campfinhttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "/2012/filings.json", nil)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "/2012/filings.json", nil)
	require.NoError(t, err)

	// Second call is served from cache yet still passes the interceptors
	assert.Equal(t, int64(1), requests.Load())
	assert.Equal(t, int64(2), intercepted.Load())
}
