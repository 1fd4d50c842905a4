package testutil

// IsPrime reports whether n is prime using trial division.
// It is the ground truth the sieve is checked against.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}
	return true
}

// PrimesUpTo returns all primes in [2, n] by trial division.
func PrimesUpTo(n int) []int {
	var primes []int
	for i := 2; i <= n; i++ {
		if IsPrime(i) {
			primes = append(primes, i)
		}
	}
	return primes
}
