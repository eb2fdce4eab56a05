// Package integrations provides the HTTP transport shared by vehicle-data
// API clients.
//
// # Overview
//
// Each remote API has its own subpackage:
//
//   - [carquery]: CarQuery years, makes, models, trims and model details
//
// # Client Pattern
//
// API clients embed [Client] and add typed operations:
//
//	client := carquery.NewClient(carquery.Options{})
//	makes, err := client.GetMakes(ctx, 2011, true)
//
// [Client] handles:
//   - GET requests with default headers and JSON decoding
//   - Status classification into [ErrNotFound], [ErrRateLimited], [ErrNetwork]
//   - Optional response caching via [cache.Cache]
//   - Optional retries of transient failures via [httputil.Retry]
//   - HTTP and cache events via [observability] hooks
//
// # Errors
//
// Transport errors wrap the sentinels in this package, so callers can use
// errors.Is regardless of how many layers added context:
//
//	if errors.Is(err, integrations.ErrNotFound) { ... }
//
// [carquery]: github.com/matzehuels/carquery/pkg/integrations/carquery
// [cache.Cache]: github.com/matzehuels/carquery/pkg/cache.Cache
// [httputil.Retry]: github.com/matzehuels/carquery/pkg/httputil.Retry
// [observability]: github.com/matzehuels/carquery/pkg/observability
package integrations
