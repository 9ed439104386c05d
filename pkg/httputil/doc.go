// Package httputil provides HTTP utilities for the parsing-service client.
//
// # Retry
//
// [Retry] wraps HTTP requests with automatic retry for transient failures:
//
//   - Network errors (connection refused, reset, timeout)
//   - 5xx server errors
//
// Only errors wrapped in [RetryableError] are retried; anything else is
// returned immediately. Backoff is exponential, starting at the supplied
// delay and doubling after each failed attempt.
//
//	err := httputil.RetryWithBackoff(ctx, func() error {
//	    return client.post(ctx, url, body)
//	})
//
// # Defaults
//
//   - Max attempts: 3
//   - Base backoff: 1 second
package httputil
