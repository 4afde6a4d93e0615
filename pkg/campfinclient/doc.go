// Package campfinclient provides the primary entry point for constructing a
// campaign finance API client that implements the campfin.Client interface.
//
// It layers configuration, HTTP transport, and the response cache on top of
// the topic interfaces and types defined in the campfin package. Most
// applications should import campfinclient to build a client, then use the
// returned campfin.Client to access topic-specific clients, for example
// Filings(), Candidates(), Committees().
//
// Quick start
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
//
//	  // Minimal: just an API key.
//	  cli, err := campfinclient.NewWithKey(ctx, "your-api-key")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or from the NYT_CAMPFIN_API_KEY environment variable:
//	  cli, err = campfinclient.NewFromEnv(ctx)
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with full configuration:
//	  cli, err = campfinclient.New(ctx, &campfin.Config{
//	    APIKey:   "your-api-key",
//	    CacheTTL: 0, // zero keeps the 5 minute default
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use topic clients via the campfin.Client interface
//	  filings, err := cli.Filings().Today(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = filings
//	}
//
// # Caching
//
// Identical GET requests within the cache expiry window are served from the
// configured cache backend without touching the network. The default is an
// in-process memory cache with a 5 minute window; see campfin.CacheConfig for
// the NATS-backed shared cache and for disabling caching.
//
// # Helpers
//
// The package also provides convenience constructors NewWithKey and
// NewFromEnv that wrap New with the appropriate configuration.
package campfinclient
