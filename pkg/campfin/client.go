package campfin

import (
	"context"
	"time"
)

// FilingsClient provides access to the FEC electronic filings endpoints.
type FilingsClient interface {
	// Today returns today's electronic filings.
	Today(ctx context.Context, query *Query) ([]Filing, error)
	// ByDate returns electronic filings for a given date.
	ByDate(ctx context.Context, year, month, day int, query *Query) ([]Filing, error)
	// FormTypes returns the filing form types.
	FormTypes(ctx context.Context, query *Query) ([]FormType, error)
	// ByType returns electronic filings for a given form type.
	ByType(ctx context.Context, formType string, query *Query) ([]Filing, error)
	// Amendments returns recent filing amendments.
	Amendments(ctx context.Context, query *Query) ([]Filing, error)
}

// CandidatesClient provides access to the candidates endpoints.
type CandidatesClient interface {
	// Latest returns newly registered candidates.
	Latest(ctx context.Context, query *Query) ([]Candidate, error)
	// Get returns details for a single candidate within a cycle.
	Get(ctx context.Context, candidateID string, query *Query) (*Candidate, error)
	// Search returns candidates matching a search term.
	Search(ctx context.Context, term string, query *Query) ([]Candidate, error)
	// Leaders returns leading candidates in a given category.
	Leaders(ctx context.Context, category string, query *Query) ([]Candidate, error)
	// Seats returns candidates for seats in a state, optionally narrowed to
	// a chamber and district. A district requires a chamber.
	Seats(ctx context.Context, state, chamber, district string, query *Query) ([]Candidate, error)
}

// CommitteesClient provides access to the committees endpoints.
type CommitteesClient interface {
	// Latest returns newly registered committees.
	Latest(ctx context.Context, query *Query) ([]Committee, error)
	// Get returns details for a single committee within a cycle.
	Get(ctx context.Context, committeeID string, query *Query) (*Committee, error)
	// Search returns committees matching a search term.
	Search(ctx context.Context, term string, query *Query) ([]Committee, error)
	// Filings returns a committee's filings within a cycle.
	Filings(ctx context.Context, committeeID string, query *Query) ([]Filing, error)
	// Contributions returns a committee's contributions within a cycle.
	Contributions(ctx context.Context, committeeID string, query *Query) ([]Contribution, error)
	// ContributionsToCandidate returns a committee's contributions to a
	// given candidate within a cycle.
	ContributionsToCandidate(ctx context.Context, committeeID, candidateID string, query *Query) ([]Contribution, error)
	// Leadership returns leadership committees.
	Leadership(ctx context.Context, query *Query) ([]Committee, error)
}

// Client is the aggregate interface for the campaign finance API. Topic
// clients share a single API key and HTTP core. Fetch follows API-provided
// URIs directly, bypassing the endpoint templates, so hypermedia links
// embedded in earlier responses can be resolved without bespoke helpers.
type Client interface {
	Filings() FilingsClient
	Candidates() CandidatesClient
	Committees() CommitteesClient

	// Fetch performs a GET against either a bare endpoint path (beginning
	// with "/") or a fully-qualified URL previously returned by the API, and
	// returns the undecoded envelope.
	Fetch(ctx context.Context, uri string, query *Query) (*Envelope, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a campfin.Client.
//
// # Credentials
//
// APIKey is the only credential. When empty, campfinclient.New falls back to
// the NYT_CAMPFIN_API_KEY environment variable; if that is also unset,
// construction fails with ErrAPIKeyRequired rather than at first use.
//
// # Caching
//
// GET responses are cached transparently so that identical requests within
// the expiry window do not hit the network twice. Cache selects the backend
// (memory by default); CacheTTL sets the expiry window (5 minutes when
// zero). Set Cache to a CacheTypeNone config to disable caching entirely.
type Config struct {
	// APIKey is the opaque string credential sent with every request.
	APIKey string

	// BaseURL overrides the fixed API base URL. Intended for tests.
	BaseURL string

	// Debug enables verbose request/response logging when a Logger is set,
	// including the full request URL of each extracted result.
	Debug bool

	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout is the per-request timeout. Callers needing finer control
	// should use context deadlines.
	HTTPTimeout time.Duration

	// RetryMax enables transport-level retries for transient failures when
	// greater than zero. The library itself promises no retry semantics.
	RetryMax int

	// RetryWaitMin is the minimum backoff between retries.
	RetryWaitMin time.Duration

	// RetryWaitMax is the maximum backoff between retries.
	RetryWaitMax time.Duration

	// Cache configures the response cache backend.
	Cache *CacheConfig

	// CacheTTL is the expiry window for cached GET responses.
	CacheTTL time.Duration

	// Interceptors is an optional chain run around every request.
	Interceptors *InterceptorChain
}
