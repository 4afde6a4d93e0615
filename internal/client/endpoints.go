package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/campfin-io/campfin/internal/constants"
	"github.com/campfin-io/campfin/internal/http"
	"github.com/campfin-io/campfin/pkg/campfin"
)

// endpoint is a declarative description of one API operation: a short name
// used in error messages, a path template whose first argument is always the
// election cycle, and the extraction strategy for the response envelope. The
// ".json" suffix is appended at expansion time so the templates stay
// readable.
type endpoint struct {
	name     string
	template string
	extract  campfin.Extraction
}

// Filings endpoints.
var (
	epFilingsToday = endpoint{
		name:     "today's filings",
		template: "/%d/filings",
		extract:  campfin.ExtractResults,
	}
	epFilingsByDate = endpoint{
		name:     "filings by date",
		template: "/%d/filings/%d/%d/%d",
		extract:  campfin.ExtractResults,
	}
	epFilingFormTypes = endpoint{
		name:     "filing form types",
		template: "/%d/filings/types",
		extract:  campfin.ExtractResults,
	}
	epFilingsByType = endpoint{
		name:     "filings by type",
		template: "/%d/filings/types/%s",
		extract:  campfin.ExtractResults,
	}
	epFilingAmendments = endpoint{
		name:     "filing amendments",
		template: "/%d/filings/amendments",
		extract:  campfin.ExtractResults,
	}
)

// Candidates endpoints. Seats has three shapes depending on how far the
// caller narrows the search.
var (
	epCandidatesLatest = endpoint{
		name:     "new candidates",
		template: "/%d/candidates/new",
		extract:  campfin.ExtractResults,
	}
	epCandidateDetail = endpoint{
		name:     "candidate",
		template: "/%d/candidates/%s",
		extract:  campfin.ExtractFirst,
	}
	epCandidateSearch = endpoint{
		name:     "candidate search",
		template: "/%d/candidates/search",
		extract:  campfin.ExtractResults,
	}
	epCandidateLeaders = endpoint{
		name:     "candidate leaders",
		template: "/%d/candidates/leaders/%s",
		extract:  campfin.ExtractResults,
	}
	epSeatsByState = endpoint{
		name:     "seats by state",
		template: "/%d/seats/%s",
		extract:  campfin.ExtractResults,
	}
	epSeatsByChamber = endpoint{
		name:     "seats by chamber",
		template: "/%d/seats/%s/%s",
		extract:  campfin.ExtractResults,
	}
	epSeatsByDistrict = endpoint{
		name:     "seats by district",
		template: "/%d/seats/%s/%s/%s",
		extract:  campfin.ExtractResults,
	}
)

// Committees endpoints.
var (
	epCommitteesLatest = endpoint{
		name:     "new committees",
		template: "/%d/committees/new",
		extract:  campfin.ExtractResults,
	}
	epCommitteeDetail = endpoint{
		name:     "committee",
		template: "/%d/committees/%s",
		extract:  campfin.ExtractFirst,
	}
	epCommitteeSearch = endpoint{
		name:     "committee search",
		template: "/%d/committees/search",
		extract:  campfin.ExtractResults,
	}
	epCommitteeFilings = endpoint{
		name:     "committee filings",
		template: "/%d/committees/%s/filings",
		extract:  campfin.ExtractResults,
	}
	epCommitteeContributions = endpoint{
		name:     "committee contributions",
		template: "/%d/committees/%s/contributions",
		extract:  campfin.ExtractResults,
	}
	epCommitteeContributionsToCandidate = endpoint{
		name:     "committee contributions to candidate",
		template: "/%d/committees/%s/contributions/candidates/%s",
		extract:  campfin.ExtractResults,
	}
	epLeadershipCommittees = endpoint{
		name:     "leadership committees",
		template: "/%d/committees/leadership",
		extract:  campfin.ExtractResults,
	}
)

// expand renders the endpoint path for a cycle and the template's remaining
// arguments.
func (e endpoint) expand(cycle int, args ...interface{}) string {
	templateArgs := append([]interface{}{cycle}, args...)

	return fmt.Sprintf(e.template, templateArgs...) + constants.PathSuffix
}

// fetchEnvelope performs the GET for an endpoint and decodes the response
// envelope. The cycle comes from the query, falling back to the current one.
func fetchEnvelope(ctx context.Context, httpClient *http.Client, ep endpoint, query *campfin.Query, args ...interface{}) (*campfin.Envelope, error) {
	path := ep.expand(query.CycleOrDefault(), args...)

	resp, err := httpClient.Get(ctx, path, query.ToValues())
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", ep.name, err)
	}

	var envelope campfin.Envelope

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", ep.name, err)
	}

	return &envelope, nil
}

// errRawExtraction guards against declaring ExtractRaw on a typed endpoint.
// Raw envelopes are served by Client.Fetch, never by the decoded dispatch.
var errRawExtraction = errors.New("raw extraction does not produce decoded results")

// decodePayload applies the endpoint's declared extraction strategy to the
// envelope. ExtractFirst yields a single-element slice.
func decodePayload[T any](ep endpoint, envelope *campfin.Envelope) ([]T, error) {
	switch ep.extract {
	case campfin.ExtractFirst:
		result, err := campfin.FirstResult[T](envelope)
		if err != nil {
			return nil, err
		}

		return []T{*result}, nil

	case campfin.ExtractRaw:
		return nil, errRawExtraction

	case campfin.ExtractResults:
		return campfin.AllResults[T](envelope)

	default:
		return campfin.AllResults[T](envelope)
	}
}

// fetchResults fetches an endpoint and decodes its payload as a sequence.
func fetchResults[T any](ctx context.Context, httpClient *http.Client, ep endpoint, query *campfin.Query, args ...interface{}) ([]T, error) {
	envelope, err := fetchEnvelope(ctx, httpClient, ep, query, args...)
	if err != nil {
		return nil, err
	}

	results, err := decodePayload[T](ep, envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", ep.name, err)
	}

	return results, nil
}

// fetchFirst fetches a single-resource endpoint.
func fetchFirst[T any](ctx context.Context, httpClient *http.Client, ep endpoint, query *campfin.Query, args ...interface{}) (*T, error) {
	results, err := fetchResults[T](ctx, httpClient, ep, query, args...)
	if err != nil {
		return nil, err
	}

	return &results[0], nil
}
