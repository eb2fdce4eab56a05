// Package pkg provides the libraries behind the carquery client.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [integrations/carquery] - The CarQuery API client and its data model
//  2. [integrations] - Shared HTTP transport (caching, retries, status mapping)
//  3. [cache] - Response cache backends (file, Redis, MongoDB, null)
//  4. [errors] - Coded errors and input validation for the CLI and server
//  5. [observability] - Hooks for query, cache and HTTP events
//
// # Data Flow
//
//	caller (CLI, HTTP facade, library user)
//	         ↓
//	    [integrations/carquery] builds the query and maps the response
//	         ↓
//	    [integrations] Cached → cache hit, or GET with retry
//	         ↓
//	    [cache] stores the decoded envelope
//
// # Quick Start
//
//	import "github.com/matzehuels/carquery/pkg/integrations/carquery"
//
//	client := carquery.NewClient(carquery.Options{})
//	makes, err := client.GetMakes(ctx, 2011, true)
//
// With a persistent cache:
//
//	backend, _ := cache.NewFileCache(dir)
//	client := carquery.NewClient(carquery.Options{
//	    Cache:    backend,
//	    CacheTTL: 24 * time.Hour,
//	})
//
// # Errors
//
// Library packages return sentinel errors wrapped with %w:
// [integrations.ErrNotFound], [integrations.ErrNetwork],
// [integrations.ErrRateLimited], [integrations.ErrDecode] and
// carquery.ErrMalformedResponse. Edges translate them into coded errors
// with [errors.Classify].
//
// [integrations/carquery]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations/carquery
// [integrations]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations
// [cache]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/observability
// [integrations.ErrNotFound]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations#ErrNotFound
// [integrations.ErrNetwork]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations#ErrNetwork
// [integrations.ErrRateLimited]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations#ErrRateLimited
// [integrations.ErrDecode]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/integrations#ErrDecode
// [errors.Classify]: https://pkg.go.dev/github.com/matzehuels/carquery/pkg/errors#Classify
package pkg
