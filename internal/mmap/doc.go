// Package mmap maps local dataset files read-only into memory.
//
//	m, err := mmap.Open("delegated-ripencc-extended-latest.bz2")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AccessSequential)
//	r := m.Reader() // io.Reader over the mapping, no copy
//
// Unix uses mmap(2) with madvise(2); Windows uses CreateFileMapping and
// MapViewOfFile, where Advise is a no-op.
//
// Close is idempotent. Readers obtained from a Mapping must not be used after
// Close returns.
package mmap
