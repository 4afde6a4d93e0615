// Package campfin provides types, interfaces, and helpers for working with
// the New York Times Campaign Finance API.
//
// # Overview
//
// The campfin package defines the domain types (Filing, Candidate, Committee,
// Contribution), the response envelope, typed errors, and the interfaces for
// the topic clients (FilingsClient, CandidatesClient, CommitteesClient). A
// concrete implementation is provided by the campfinclient package, which
// wires configuration, transport, and the response cache. Most consumers
// should import campfinclient to construct a client and then interact with
// the topic client interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/campfin-io/campfin/pkg/campfin"
//	  "github.com/campfin-io/campfin/pkg/campfinclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := campfinclient.New(ctx, &campfin.Config{APIKey: "your-key"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Newly registered candidates in the current cycle
//	  candidates, err := cli.Candidates().Latest(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = candidates
//	}
//
// # Queries
//
// Use Query to express the per-call options every endpoint shares: the
// election cycle, the result offset, and free-form query parameters. A nil
// Query means the current cycle and offset 0.
//
//	q := campfin.NewQuery().WithCycle(2012).WithOffset(20)
//	candidates, err := cli.Candidates().Search(ctx, "smith", q)
//
// # Errors
//
// API failures are represented by APIError and, for 404 responses,
// NotFoundError. The IsNotFound and IsAPIError helpers make it easy to
// branch on them. Error messages carry the API's own error strings joined
// with "; ".
//
// # Caching and interceptors
//
// GET responses are cached transparently with a configurable expiry window
// (5 minutes by default) behind the pluggable Cache abstraction, with memory
// and NATS KV backends. Request/response interceptors provide hooks for
// logging and custom headers. The campfinclient package composes these for a
// sensible default client.
//
// # Raw fetch
//
// Responses embed API URIs pointing at related resources. Client.Fetch
// follows those URIs directly, attaching the API key and returning the raw
// envelope, so no bespoke helper is needed per link.
package campfin
