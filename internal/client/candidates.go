package client

import (
	"context"

	"github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// CandidatesClient implements the campfin.CandidatesClient interface.
type CandidatesClient struct {
	httpClient *http.Client
}

// NewCandidatesClient creates a new candidates client.
func NewCandidatesClient(httpClient *http.Client) *CandidatesClient {
	return &CandidatesClient{
		httpClient: httpClient,
	}
}

// Latest implements campfin.CandidatesClient.Latest.
func (c *CandidatesClient) Latest(ctx context.Context, query *campfin.Query) ([]campfin.Candidate, error) {
	return fetchResults[campfin.Candidate](ctx, c.httpClient, epCandidatesLatest, query)
}

// Get implements campfin.CandidatesClient.Get.
func (c *CandidatesClient) Get(ctx context.Context, candidateID string, query *campfin.Query) (*campfin.Candidate, error) {
	return fetchFirst[campfin.Candidate](ctx, c.httpClient, epCandidateDetail, query, candidateID)
}

// Search implements campfin.CandidatesClient.Search.
func (c *CandidatesClient) Search(ctx context.Context, term string, query *campfin.Query) ([]campfin.Candidate, error) {
	query = withParam(query, "query", term)

	return fetchResults[campfin.Candidate](ctx, c.httpClient, epCandidateSearch, query)
}

// Leaders implements campfin.CandidatesClient.Leaders.
func (c *CandidatesClient) Leaders(ctx context.Context, category string, query *campfin.Query) ([]campfin.Candidate, error) {
	return fetchResults[campfin.Candidate](ctx, c.httpClient, epCandidateLeaders, query, category)
}

// Seats implements campfin.CandidatesClient.Seats. The path narrows with each
// provided component; a district without a chamber is rejected because the
// API has no route for it.
func (c *CandidatesClient) Seats(ctx context.Context, state, chamber, district string, query *campfin.Query) ([]campfin.Candidate, error) {
	switch {
	case chamber == "" && district != "":
		return nil, campfin.ErrChamberRequired
	case chamber == "":
		return fetchResults[campfin.Candidate](ctx, c.httpClient, epSeatsByState, query, state)
	case district == "":
		return fetchResults[campfin.Candidate](ctx, c.httpClient, epSeatsByChamber, query, state, chamber)
	default:
		return fetchResults[campfin.Candidate](ctx, c.httpClient, epSeatsByDistrict, query, state, chamber, district)
	}
}

// withParam returns a copy of query with a parameter set, leaving the
// caller's query untouched.
func withParam(query *campfin.Query, key, value string) *campfin.Query {
	merged := campfin.NewQuery()

	if query != nil {
		merged.Cycle = query.Cycle
		merged.Offset = query.Offset

		for k, v := range query.Params {
			merged.Params[k] = v
		}
	}

	return merged.WithParam(key, value)
}
