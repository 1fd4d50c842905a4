// Package resource bounds what a run may consume while fetching datasets and
// building the sieve.
//
//   - Fetch slots: a weighted semaphore caps concurrent source downloads
//   - IO rate: a token bucket throttles bytes read from remote sources
//   - Memory: an optional hard cap on sieve table bytes, so an absurd upper
//     bound fails fast instead of exhausting the host
//
// A nil *Controller imposes no limits.
package resource
