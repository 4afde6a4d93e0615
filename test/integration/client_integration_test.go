//go:build integration

package integration

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campfin-io/campfin/pkg/campfin"
	"github.com/campfin-io/campfin/pkg/campfinclient"
)

// newLiveClient builds a client against the real API, skipping the test when
// no key is configured.
func newLiveClient(t *testing.T) campfin.Client {
	t.Helper()

	if os.Getenv("NYT_CAMPFIN_API_KEY") == "" {
		t.Skip("NYT_CAMPFIN_API_KEY not set, skipping integration test")
	}

	client, err := campfinclient.NewFromEnv(context.Background())
	require.NoError(t, err)

	return client
}

func TestIntegration_FilingsToday(t *testing.T) {
	client := newLiveClient(t)

	filings, err := client.Filings().Today(context.Background(), nil)
	require.NoError(t, err)

	for _, filing := range filings {
		assert.NotZero(t, filing.ID)
	}
}

func TestIntegration_FormTypes(t *testing.T) {
	client := newLiveClient(t)

	formTypes, err := client.Filings().FormTypes(context.Background(), nil)
	require.NoError(t, err)
	assert.NotEmpty(t, formTypes)
}

func TestIntegration_CandidateLookupAndRawFetch(t *testing.T) {
	client := newLiveClient(t)
	ctx := context.Background()

	candidates, err := client.Candidates().Latest(ctx, nil)
	require.NoError(t, err)

	if len(candidates) == 0 {
		t.Skip("no new candidates in the current cycle")
	}

	first := candidates[0]

	candidate, err := client.Candidates().Get(ctx, first.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, candidate.ID)

	// Follow the embedded URI through the raw fetch path
	if candidate.RelativeURI != "" {
		envelope, err := client.Fetch(ctx, candidate.RelativeURI, nil)
		require.NoError(t, err)
		assert.Equal(t, "OK", envelope.Status)
	}
}

func TestIntegration_CachedRepeat(t *testing.T) {
	client := newLiveClient(t)
	ctx := context.Background()

	first, err := client.Filings().FormTypes(ctx, nil)
	require.NoError(t, err)

	// Second call is served from cache and must decode identically
	second, err := client.Filings().FormTypes(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
