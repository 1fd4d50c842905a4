package sieve

import (
	"math"

	"github.com/hupe1980/primeasn/internal/bitvector"
)

// MinBound is the smallest accepted upper bound.
const MinBound = 3

type options struct {
	referenceLowBits bool
}

// Option configures sieve construction.
type Option func(*options)

// WithReferenceLowBits keeps positions 0 and 1 at their initial value, so both
// read as prime. This mirrors the historical tool exactly; leave it unset for a
// correct primality table.
func WithReferenceLowBits() Option {
	return func(o *options) {
		o.referenceLowBits = true
	}
}

// Sieve is an immutable primality table for the integers in [0, N].
type Sieve struct {
	bits  *bitvector.BitVector
	bound int
}

// New builds the table for [0, n]. n must be greater than 2 and less than math.MaxInt.
func New(n int, optFns ...Option) (*Sieve, error) {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	// n+1 positions are addressed, so n == MaxInt cannot be represented.
	if n < MinBound || n == math.MaxInt {
		return nil, &BoundError{Bound: n}
	}

	bits, err := bitvector.New(n+1, true)
	if err != nil {
		return nil, err
	}

	for i := 2; i <= n; i++ {
		if !mustGet(bits, i) {
			continue
		}
		for j := 2 * i; j <= n; j += i {
			mustSet(bits, j, false)
		}
	}

	if !opts.referenceLowBits {
		mustSet(bits, 0, false)
		mustSet(bits, 1, false)
	}

	return &Sieve{bits: bits, bound: n}, nil
}

// Bound returns N, the largest value the sieve answers for.
func (s *Sieve) Bound() int {
	return s.bound
}

// IsPrime reports whether x is prime. x must lie in [0, N].
func (s *Sieve) IsPrime(x int) (bool, error) {
	if x < 0 || x > s.bound {
		return false, &IndexError{Index: x, Bound: s.bound}
	}
	return mustGet(s.bits, x), nil
}

// Count returns the number of primes in [2, N].
func (s *Sieve) Count() int {
	n := s.bits.Count()
	for i := 0; i < 2; i++ {
		if mustGet(s.bits, i) {
			n--
		}
	}
	return n
}

// Primes returns every prime in [2, N] in ascending order.
func (s *Sieve) Primes() []int {
	primes := make([]int, 0, s.Count())
	for i := 2; i <= s.bound; i++ {
		if mustGet(s.bits, i) {
			primes = append(primes, i)
		}
	}
	return primes
}

// mustGet and mustSet are only called with indices already validated against
// the bound, so an error here is a programming bug.
func mustGet(b *bitvector.BitVector, i int) bool {
	v, err := b.Get(i)
	if err != nil {
		panic(err)
	}
	return v
}

func mustSet(b *bitvector.BitVector, i int, v bool) {
	if err := b.Set(i, v); err != nil {
		panic(err)
	}
}
