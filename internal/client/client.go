// Package client implements the campfin.Client interface over the shared
// HTTP core.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// Client implements the campfin.Client interface.
type Client struct {
	httpClient *http.Client

	filings    campfin.FilingsClient
	candidates campfin.CandidatesClient
	committees campfin.CommitteesClient
}

// New creates a new campaign finance API client from the given config. The
// API key must already be resolved; the campfinclient package handles
// environment fallback.
func New(ctx context.Context, config *campfin.Config) (*Client, error) {
	if config == nil {
		return nil, campfin.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, campfin.ErrAPIKeyRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = constants.BaseURI
	}

	httpOpts, err := createHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	httpClient := http.NewClient(baseURL, config.APIKey, httpOpts...)

	client := &Client{
		httpClient: httpClient,
	}

	client.initializeTopicClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *campfin.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	cache, err := campfin.NewCacheFromConfig(config.Cache)
	if err != nil {
		return nil, fmt.Errorf("creating response cache: %w", err)
	}

	manager := campfin.NewCacheManager(cache, nil)
	httpOpts = append(httpOpts, http.WithCache(manager, config.CacheTTL))

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts, nil
}

// initializeTopicClients initializes all topic-specific clients.
func (c *Client) initializeTopicClients() {
	c.filings = NewFilingsClient(c.httpClient)
	c.candidates = NewCandidatesClient(c.httpClient)
	c.committees = NewCommitteesClient(c.httpClient)
}

// Filings implements campfin.Client.Filings.
func (c *Client) Filings() campfin.FilingsClient {
	return c.filings
}

// Candidates implements campfin.Client.Candidates.
func (c *Client) Candidates() campfin.CandidatesClient {
	return c.candidates
}

// Committees implements campfin.Client.Committees.
func (c *Client) Committees() campfin.CommitteesClient {
	return c.committees
}

// Fetch implements campfin.Client.Fetch. A bare path gets the ".json" suffix
// the API expects; a fully-qualified URI from a previous response is used
// unchanged.
func (c *Client) Fetch(ctx context.Context, uri string, query *campfin.Query) (*campfin.Envelope, error) {
	path := uri
	if strings.HasPrefix(path, "/") && !strings.HasSuffix(path, constants.PathSuffix) {
		path += constants.PathSuffix
	}

	resp, err := c.httpClient.Get(ctx, path, query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", uri, err)
	}

	var envelope campfin.Envelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing response envelope: %w", err)
	}

	return &envelope, nil
}

// loggerAdapter adapts campfin.Logger to http.Logger.
type loggerAdapter struct {
	logger campfin.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
