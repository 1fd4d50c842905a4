// Package compression transparently decompresses dataset streams.
//
// The format is detected from the leading magic bytes, never from a file name:
//
//	BZh            bzip2 (the format RIRs publish delegated files in)
//	1f 8b          gzip  (klauspost/compress/gzip)
//	28 b5 2f fd    zstd  (klauspost/compress/zstd)
//	04 22 4d 18    lz4 frame (pierrec/lz4/v4)
//
// Anything else passes through unchanged.
package compression
