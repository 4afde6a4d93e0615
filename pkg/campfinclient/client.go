// Package campfinclient provides the main entry point for creating campaign
// finance API clients.
package campfinclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/campfin-io/campfin/internal/client"
	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// New creates a new campaign finance API client. When the config carries no
// API key, the NYT_CAMPFIN_API_KEY environment variable is consulted; a
// missing key fails here, at construction, rather than at first use.
func New(ctx context.Context, config *campfin.Config) (campfin.Client, error) {
	if config == nil {
		return nil, campfin.ErrConfigRequired
	}

	if config.APIKey == "" {
		config.APIKey = os.Getenv(constants.APIKeyEnvVar)
	}

	if config.APIKey == "" {
		return nil, fmt.Errorf("%w (set %s)", campfin.ErrAPIKeyRequired, constants.APIKeyEnvVar)
	}

	if config.BaseURL != "" {
		config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")
	}

	apiClient, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithKey creates a new client with just an API key.
func NewWithKey(ctx context.Context, apiKey string) (campfin.Client, error) {
	return New(ctx, &campfin.Config{
		APIKey: apiKey,
	})
}

// NewFromEnv creates a new client from the NYT_CAMPFIN_API_KEY environment
// variable.
func NewFromEnv(ctx context.Context) (campfin.Client, error) {
	return New(ctx, &campfin.Config{})
}
