// Package http implements the HTTP core shared by every topic client:
// request construction, API-key injection, retryable transport, transparent
// GET caching, and mapping of failure responses to typed errors.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Request represents an API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
}

// Response represents an API response.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client performs HTTP requests against the campaign finance API. It owns
// the API key, issues exactly one GET per call (modulo transport retries
// when explicitly enabled), serves repeated identical GETs from the cache
// within the expiry window, and maps failure statuses to typed errors.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	retryClient  *retryablehttp.Client
	logger       Logger
	debug        bool
	userAgent    string
	cache        *campfin.CacheManager
	cacheTTL     time.Duration
	interceptors *campfin.InterceptorChain
}

// Option configures the Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables verbose request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.retryClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig enables transport-level retries for transient failures.
// Retries are off by default; the library contract promises none.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.retryClient.RetryMax = retryMax
		c.retryClient.RetryWaitMin = waitMin
		c.retryClient.RetryWaitMax = waitMax
	}
}

// WithCache sets the response cache manager and the expiry window applied to
// new entries.
func WithCache(manager *campfin.CacheManager, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = manager

		if ttl > 0 {
			c.cacheTTL = ttl
		}
	}
}

// WithInterceptors sets the interceptor chain run around every request.
// Request interceptors run before the cache lookup; response interceptors
// only see responses that reached the network.
func WithInterceptors(chain *campfin.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

const defaultUserAgent = "campfin-go"

// NewClient creates a new HTTP client for the given base URL and API key.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	// The passthrough handler hands the terminal response back instead of
	// discarding it, so failure statuses can be mapped to typed errors.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		apiKey:      apiKey,
		retryClient: retryClient,
		userAgent:   defaultUserAgent,
		cacheTTL:    constants.DefaultCacheTTL,
	}

	for _, opt := range opts {
		opt(client)
	}

	client.httpClient = retryClient.StandardClient()

	return client
}

// Get performs a GET request against path with the given query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{
		Method: http.MethodGet,
		Path:   path,
		Query:  query,
	})
}

// Do performs the request. The path may be a bare endpoint path or a
// fully-qualified URL previously returned by the API. Status 200 and 304 are
// success; any other status is mapped to a typed error built from the
// response body, returned alongside the response.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL, err := c.buildURL(req)
	if err != nil {
		return nil, err
	}

	interceptReq := &campfin.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(http.Header),
	}

	if c.interceptors != nil {
		err = c.interceptors.ExecuteRequestInterceptors(ctx, interceptReq)
		if err != nil {
			return nil, err
		}
	}

	cacheKey := c.cacheKey(req)

	if cached := c.fromCache(ctx, req, cacheKey); cached != nil {
		return cached, nil
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	for key, values := range interceptReq.Headers {
		for _, value := range values {
			httpReq.Header.Add(key, value)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	var apiErr error
	if !isSuccess(resp.StatusCode) {
		apiErr = campfin.ErrorFromResponse(resp.StatusCode, body)
	}

	if c.interceptors != nil {
		interceptErr := c.interceptors.ExecuteResponseInterceptors(ctx, interceptReq, &campfin.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       body,
			Error:      apiErr,
		})
		if interceptErr != nil {
			return resp, interceptErr
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("API Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": resp.StatusCode,
		})
	}

	if apiErr != nil {
		return resp, apiErr
	}

	c.store(ctx, req, cacheKey, resp)

	return resp, nil
}

// isSuccess reports whether the remote status counts as success. 304 is
// success: the body (or the cached copy) is still valid.
func isSuccess(statusCode int) bool {
	return statusCode == http.StatusOK || statusCode == http.StatusNotModified
}

// buildURL combines base URL, path, query parameters, and the API key. Paths
// that are already fully qualified (API-provided URIs) are used as-is.
func (c *Client) buildURL(req *Request) (string, error) {
	raw := req.Path
	if !strings.HasPrefix(strings.ToLower(raw), "http://") && !strings.HasPrefix(strings.ToLower(raw), "https://") {
		raw = c.baseURL + raw
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", raw, err)
	}

	values := parsed.Query()

	for key, qvalues := range req.Query {
		for _, value := range qvalues {
			values.Set(key, value)
		}
	}

	if c.apiKey != "" {
		values.Set(constants.APIKeyParam, c.apiKey)
	}

	parsed.RawQuery = values.Encode()

	return parsed.String(), nil
}

// cacheKey builds the cache key for a request. The API key is excluded so
// credential material never reaches a cache backend.
func (c *Client) cacheKey(req *Request) string {
	if c.cache == nil {
		return ""
	}

	params := make(map[string]string, len(req.Query))
	for key := range req.Query {
		params[key] = req.Query.Get(key)
	}

	return c.cache.GetCacheKey(req.Method, req.Path, params)
}

// fromCache returns a synthetic 200 response when a live cache entry exists
// for the request.
func (c *Client) fromCache(ctx context.Context, req *Request, key string) *Response {
	if c.cache == nil || req.Method != http.MethodGet {
		return nil
	}

	data, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("cache hit", map[string]interface{}{
			"method": req.Method,
			"path":   req.Path,
		})
	}

	return &Response{
		StatusCode: http.StatusOK,
		Body:       data,
	}
}

// store caches a successful response when the policy allows it.
func (c *Client) store(ctx context.Context, req *Request, key string, resp *Response) {
	if c.cache == nil || resp.StatusCode == http.StatusNotModified {
		return
	}

	if !c.cache.Policy().ShouldCache(req.Method, req.Path, resp.StatusCode) {
		return
	}

	etag := ""
	if resp.Headers != nil {
		etag = resp.Headers.Get("ETag")
	}

	err := c.cache.SetWithETag(ctx, key, resp.Body, etag, c.cacheTTL)
	if err != nil && c.logger != nil {
		c.logger.Warn("caching response failed", map[string]interface{}{
			"path":  req.Path,
			"error": err.Error(),
		})
	}
}
