package sieve

import (
	"fmt"
	"slices"
)

// FilterPrimes returns, in their original order, the candidates that are prime.
//
// A candidate outside [0, N] means the bound was derived inconsistently with the
// candidate set; FilterPrimes stops at the first such value and returns no
// partial result.
func FilterPrimes(candidates []int, s *Sieve) ([]int, error) {
	primes := make([]int, 0)
	for i, c := range candidates {
		ok, err := s.IsPrime(c)
		if err != nil {
			return nil, fmt.Errorf("candidate %d: %w", i, err)
		}
		if ok {
			primes = append(primes, c)
		}
	}
	return primes, nil
}

// MaxCandidate returns the largest candidate, the bound a sieve must cover.
func MaxCandidate(candidates []int) (int, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: empty candidate set", ErrInvalidArgument)
	}
	return slices.Max(candidates), nil
}
