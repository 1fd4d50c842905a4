// Package testutil provides testing utilities for primeasn.
//
// This package is intended for use in tests and benchmarks only.
// It provides a deterministic RNG, a trial-division primality oracle, and
// builders for delegated-extended datasets.
//
// # Random Candidates
//
//	rng := testutil.NewRNG(seed)
//	candidates := rng.Candidates(1000, 65535)
//
// # Ground Truth
//
//	ok := testutil.IsPrime(65521) // true
//
// # Datasets
//
//	data := testutil.NewDataset("ripencc").
//	    ASN("NL", 1877, "available").
//	    ASN("DE", 3320, "allocated").
//	    Bytes()
package testutil
