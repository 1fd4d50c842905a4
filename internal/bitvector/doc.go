// Package bitvector provides fixed-capacity packed boolean storage.
//
// Layout:
//   - One byte holds 8 positions; position i lives in byte i/8 at bit i%8
//   - Capacity is fixed at construction; no growth
//   - Padding bits past the capacity in the last byte are never observed
//
// Used by the sieve package as the primality table.
package bitvector
