// Package fs abstracts the file operations used to write reports, so tests
// can inject failures.
//
//   - [LocalFS]: the os package
//   - [FaultyFS]: wraps another FileSystem and fails writes, syncs, closes or
//     renames of matching files
//
// Reads go through internal/mmap and are not covered here.
package fs
