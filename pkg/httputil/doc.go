// Package httputil provides HTTP plumbing for the Lucid API client.
//
// It contains two pieces of infrastructure:
//
//   - [Cache]: file-based caching of JSON-marshalable API responses
//   - [Retry]: automatic retry with exponential backoff for transient
//     failures wrapped in [RetryableError]
//
// Responses are cached under ~/.cache/lucidkit/ by default, keyed by a
// SHA-256 hash of the cache key, with a configurable TTL. Retry policy
// (attempt count and initial delay) is owned by the Lucid client; the
// delay doubles after each failed attempt.
package httputil
