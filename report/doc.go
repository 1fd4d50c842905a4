// Package report holds the result of a run and renders it.
//
// Formats:
//
//	text     the historical console output: a title line and a bracketed list
//	json     the full Report, encoded with a codec.Codec
//	roaring  the prime set in the portable Roaring bitmap serialization
//
// The roaring format is a set: duplicate candidates collapse and order is
// ascending. Use text or json when input order matters.
package report
