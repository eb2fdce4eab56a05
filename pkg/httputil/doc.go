// Package httputil provides retry helpers for the vehicle-data HTTP client.
//
// # Overview
//
// [Retry] re-runs an operation when it fails with a [RetryableError]. The
// transport in [integrations] marks these failures as retryable:
//
//   - Network errors
//   - 5xx server errors
//   - 429 rate limit responses
//
// Any other error is returned immediately.
//
// # Backoff
//
// The delay doubles after each failed attempt:
//
//	err := httputil.Retry(ctx, 3, time.Second, func() error {
//	    return client.Get(ctx, url, &out)
//	})
//
// Context cancellation stops the wait between attempts and returns ctx.Err().
//
// The carquery client runs a single attempt unless retries are enabled
// (see the retry_attempts configuration key).
//
// [integrations]: github.com/matzehuels/carquery/pkg/integrations
package httputil
