// Package conv provides checked integer conversions.
//
// AS numbers are 32-bit unsigned values while the sieve works on int; these
// helpers guard the boundary in both directions.
package conv
