// Package sieve provides a bit-packed Sieve of Eratosthenes and primality queries.
//
// # Usage
//
//	s, err := sieve.New(30)
//	if err != nil { ... }
//
//	ok, err := s.IsPrime(29) // true
//
//	primes, err := sieve.FilterPrimes([]int{4, 5, 9, 11, 13}, s) // [5 11 13]
//
// # Memory
//
// The table uses one bit per integer in [0, N], i.e. ceil((N+1)/8) bytes.
// Construction is a single blocking call costing O(N log log N); choose N as
// the maximum of the candidate set (see MaxCandidate) rather than an arbitrary
// ceiling.
//
// # Positions 0 and 1
//
// Neither 0 nor 1 is ever reached by the marking loop, whose first multiple is 4.
// By default New clears both so the whole table is a correct primality table.
// WithReferenceLowBits keeps them in their initial "assumed prime" state for
// callers that need bit-for-bit parity with the historical Python tool.
//
// # Thread Safety
//
// A Sieve is immutable after New returns and may be queried from any number of
// goroutines.
package sieve
