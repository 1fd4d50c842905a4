// Package primeasn finds prime AS numbers among the free entries of Regional
// Internet Registry statistics.
//
// A Finder downloads one or more delegated-extended datasets, selects the
// rows accepted by its filter (unassigned AS numbers by default), builds a
// bit-packed Sieve of Eratosthenes up to the largest candidate and keeps the
// candidates that are prime.
//
// # Quick Start
//
//	finder, _ := primeasn.NewFinder()
//	r, _ := finder.Find(ctx)
//	_ = report.Write(os.Stdout, report.FormatText, r, nil)
//
// # Sources
//
// Sources are locations; see ParseLocation for the accepted forms. http(s)
// and file locations work out of the box. Other schemes are served by a
// registered StoreFactory:
//
//	store, _ := s3.New(ctx, "rir-mirror")
//	finder, _ := primeasn.NewFinder(
//	    primeasn.WithSources("s3://rir-mirror/delegated-ripencc-extended-latest.bz2"),
//	    primeasn.WithStore("s3", primeasn.StaticStore(store)),
//	)
//
// Datasets may be plain, bzip2, gzip, zstd or lz4 compressed; the format is
// detected from the stream.
//
// # Error Handling
//
// Errors can be inspected with errors.Is against ErrInvalidBound,
// ErrCandidateOutOfRange, ErrNoCandidates, ErrSourceNotFound and
// ErrMemoryLimit. Fetch failures are wrapped in a *SourceError naming the
// location.
package primeasn
