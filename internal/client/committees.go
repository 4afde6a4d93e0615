package client

import (
	"context"

	"github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// CommitteesClient implements the campfin.CommitteesClient interface.
type CommitteesClient struct {
	httpClient *http.Client
}

// NewCommitteesClient creates a new committees client.
func NewCommitteesClient(httpClient *http.Client) *CommitteesClient {
	return &CommitteesClient{
		httpClient: httpClient,
	}
}

// Latest implements campfin.CommitteesClient.Latest.
func (c *CommitteesClient) Latest(ctx context.Context, query *campfin.Query) ([]campfin.Committee, error) {
	return fetchResults[campfin.Committee](ctx, c.httpClient, epCommitteesLatest, query)
}

// Get implements campfin.CommitteesClient.Get.
func (c *CommitteesClient) Get(ctx context.Context, committeeID string, query *campfin.Query) (*campfin.Committee, error) {
	return fetchFirst[campfin.Committee](ctx, c.httpClient, epCommitteeDetail, query, committeeID)
}

// Search implements campfin.CommitteesClient.Search.
func (c *CommitteesClient) Search(ctx context.Context, term string, query *campfin.Query) ([]campfin.Committee, error) {
	query = withParam(query, "query", term)

	return fetchResults[campfin.Committee](ctx, c.httpClient, epCommitteeSearch, query)
}

// Filings implements campfin.CommitteesClient.Filings.
func (c *CommitteesClient) Filings(ctx context.Context, committeeID string, query *campfin.Query) ([]campfin.Filing, error) {
	return fetchResults[campfin.Filing](ctx, c.httpClient, epCommitteeFilings, query, committeeID)
}

// Contributions implements campfin.CommitteesClient.Contributions.
func (c *CommitteesClient) Contributions(ctx context.Context, committeeID string, query *campfin.Query) ([]campfin.Contribution, error) {
	return fetchResults[campfin.Contribution](ctx, c.httpClient, epCommitteeContributions, query, committeeID)
}

// ContributionsToCandidate implements campfin.CommitteesClient.ContributionsToCandidate.
func (c *CommitteesClient) ContributionsToCandidate(ctx context.Context, committeeID, candidateID string, query *campfin.Query) ([]campfin.Contribution, error) {
	return fetchResults[campfin.Contribution](ctx, c.httpClient, epCommitteeContributionsToCandidate, query, committeeID, candidateID)
}

// Leadership implements campfin.CommitteesClient.Leadership.
func (c *CommitteesClient) Leadership(ctx context.Context, query *campfin.Query) ([]campfin.Committee, error) {
	return fetchResults[campfin.Committee](ctx, c.httpClient, epLeadershipCommittees, query)
}
