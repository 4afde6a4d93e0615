package campfin

import (
	"net/url"
	"strconv"

	"github.com/campfin-io/campfin/internal/constants"
)

// Query holds the per-call parameters shared by every endpoint: the election
// cycle that scopes the request, the result offset, and any free-form query
// parameters. The zero value is usable; a nil *Query behaves the same.
type Query struct {
	// Cycle is the two-year election cycle. Zero means the current cycle.
	Cycle int

	// Offset is the result offset. Anything below zero is normalized to 0,
	// and offset is always sent, defaulted included.
	Offset int

	// Params are free-form query parameters merged into the query string.
	Params map[string]string
}

// NewQuery creates an empty Query.
func NewQuery() *Query {
	return &Query{
		Params: make(map[string]string),
	}
}

// WithCycle sets the election cycle.
func (q *Query) WithCycle(cycle int) *Query {
	q.Cycle = cycle

	return q
}

// WithOffset sets the result offset.
func (q *Query) WithOffset(offset int) *Query {
	q.Offset = offset

	return q
}

// WithParam sets a free-form query parameter.
func (q *Query) WithParam(key, value string) *Query {
	if q.Params == nil {
		q.Params = make(map[string]string)
	}

	q.Params[key] = value

	return q
}

// CycleOrDefault returns the configured cycle, or the current cycle when
// none is set.
func (q *Query) CycleOrDefault() int {
	if q == nil || q.Cycle == 0 {
		return constants.CurrentCycle
	}

	return q.Cycle
}

// ToValues converts the query to url.Values. Offset is always present and
// never negative.
func (q *Query) ToValues() url.Values {
	values := url.Values{}

	offset := 0
	if q != nil && q.Offset > 0 {
		offset = q.Offset
	}

	values.Set("offset", strconv.Itoa(offset))

	if q != nil {
		for key, value := range q.Params {
			values.Set(key, value)
		}
	}

	return values
}
