package client

import (
	"context"

	"github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// FilingsClient implements the campfin.FilingsClient interface.
type FilingsClient struct {
	httpClient *http.Client
}

// NewFilingsClient creates a new filings client.
func NewFilingsClient(httpClient *http.Client) *FilingsClient {
	return &FilingsClient{
		httpClient: httpClient,
	}
}

// Today implements campfin.FilingsClient.Today.
func (c *FilingsClient) Today(ctx context.Context, query *campfin.Query) ([]campfin.Filing, error) {
	return fetchResults[campfin.Filing](ctx, c.httpClient, epFilingsToday, query)
}

// ByDate implements campfin.FilingsClient.ByDate.
func (c *FilingsClient) ByDate(ctx context.Context, year, month, day int, query *campfin.Query) ([]campfin.Filing, error) {
	return fetchResults[campfin.Filing](ctx, c.httpClient, epFilingsByDate, query, year, month, day)
}

// FormTypes implements campfin.FilingsClient.FormTypes.
func (c *FilingsClient) FormTypes(ctx context.Context, query *campfin.Query) ([]campfin.FormType, error) {
	return fetchResults[campfin.FormType](ctx, c.httpClient, epFilingFormTypes, query)
}

// ByType implements campfin.FilingsClient.ByType.
func (c *FilingsClient) ByType(ctx context.Context, formType string, query *campfin.Query) ([]campfin.Filing, error) {
	return fetchResults[campfin.Filing](ctx, c.httpClient, epFilingsByType, query, formType)
}

// Amendments implements campfin.FilingsClient.Amendments.
func (c *FilingsClient) Amendments(ctx context.Context, query *campfin.Query) ([]campfin.Filing, error) {
	return fetchResults[campfin.Filing](ctx, c.httpClient, epFilingAmendments, query)
}
