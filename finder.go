package primeasn

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/primeasn/compression"
	"github.com/hupe1980/primeasn/delegated"
	"github.com/hupe1980/primeasn/report"
	"github.com/hupe1980/primeasn/resource"
	"github.com/hupe1980/primeasn/sieve"
)

// Finder reads registry datasets and reports which selected AS numbers are prime.
//
// A Finder is safe for concurrent use; each Find call is independent.
type Finder struct {
	opts      options
	locations []Location
	rc        *resource.Controller
}

// NewFinder validates the configured sources and returns a Finder.
func NewFinder(optFns ...Option) (*Finder, error) {
	o := applyOptions(optFns)
	if len(o.sources) == 0 {
		return nil, fmt.Errorf("%w: no sources configured", ErrNoCandidates)
	}

	locs := make([]Location, len(o.sources))
	for i, s := range o.sources {
		loc, err := ParseLocation(s)
		if err != nil {
			return nil, err
		}
		if _, ok := o.stores[loc.Scheme]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnsupportedScheme, loc.Scheme)
		}
		locs[i] = loc
	}

	rc := resource.NewController(o.resource)
	cfg := rc.Config()
	o.logger.Debug("finder configured",
		"sources", len(locs),
		"max_fetches", cfg.MaxConcurrentFetches,
		"memory_limit_bytes", cfg.MemoryLimitBytes,
		"io_limit_bytes_per_sec", cfg.IOLimitBytesPerSec,
	)

	return &Finder{
		opts:      o,
		locations: locs,
		rc:        rc,
	}, nil
}

// Sources returns the configured locations in candidate order.
func (f *Finder) Sources() []string {
	out := make([]string, len(f.locations))
	for i, l := range f.locations {
		out[i] = l.String()
	}
	return out
}

// Find fetches every source, sieves up to the largest candidate and returns
// the prime candidates in input order.
func (f *Finder) Find(ctx context.Context) (*report.Report, error) {
	candidates, err := f.collect(ctx)
	if err != nil {
		return nil, translateError(err)
	}
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	bound, err := sieve.MaxCandidate(candidates)
	if err != nil {
		return nil, translateError(err)
	}
	if bound < sieve.MinBound {
		return nil, fmt.Errorf("%w: largest candidate is %d", ErrInvalidBound, bound)
	}
	logger := f.opts.logger.WithBound(bound)

	tableBytes := int64(bound/8 + 1)
	if !f.rc.TryAcquireMemory(tableBytes) {
		return nil, fmt.Errorf("%w: sieve to %d needs %d bytes", ErrMemoryLimit, bound, tableBytes)
	}
	defer f.rc.ReleaseMemory(tableBytes)

	start := time.Now()
	s, err := sieve.New(bound, f.opts.sieveOptions...)
	elapsed := time.Since(start)
	f.opts.metricsCollector.RecordSieve(bound, elapsed, err)
	if err != nil {
		logger.LogSieve(ctx, bound, 0, elapsed, err)
		return nil, translateError(err)
	}
	logger.LogSieve(ctx, bound, s.Count(), elapsed, nil)

	primes, err := sieve.FilterPrimes(candidates, s)
	f.opts.metricsCollector.RecordFilter(len(candidates), len(primes), err)
	logger.LogFilter(ctx, len(candidates), len(primes), err)
	if err != nil {
		return nil, translateError(err)
	}

	return &report.Report{
		Sources:     f.Sources(),
		Bound:       bound,
		Candidates:  len(candidates),
		Primes:      primes,
		GeneratedAt: f.opts.now().UTC(),
	}, nil
}

// collect fetches all sources concurrently and concatenates their candidates
// in source order. The first failure cancels the remaining fetches.
func (f *Finder) collect(ctx context.Context) ([]int, error) {
	results := make([][]int, len(f.locations))

	g, gctx := errgroup.WithContext(ctx)
	for i, loc := range f.locations {
		g.Go(func() error {
			c, err := f.fetch(gctx, loc)
			if err != nil {
				return &SourceError{Source: loc.String(), cause: err}
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, r := range results {
		total += len(r)
	}
	out := make([]int, 0, total)
	for _, r := range results {
		out = append(out, r...)
	}
	return out, nil
}

func (f *Finder) fetch(ctx context.Context, loc Location) (candidates []int, err error) {
	if err := f.rc.AcquireFetch(ctx); err != nil {
		return nil, err
	}
	defer f.rc.ReleaseFetch()

	source := loc.String()
	logger := f.opts.logger.WithSource(source)
	start := time.Now()
	cr := &countingReader{}
	format := compression.Plain
	defer func() {
		elapsed := time.Since(start)
		f.opts.metricsCollector.RecordFetch(source, cr.n, elapsed, err)
		logger.LogFetch(ctx, format.String(), cr.n, len(candidates), elapsed, err)
	}()

	store, err := f.opts.stores[loc.Scheme](ctx, loc)
	if err != nil {
		return nil, err
	}

	blob, err := store.Open(ctx, loc.Key)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	cr.r = resource.NewRateLimitedReader(ctx, blob, f.rc)
	dr, format, err := compression.NewReader(cr)
	if err != nil {
		return nil, err
	}
	defer dr.Close()

	r := delegated.NewReader(dr)
	candidates, err = delegated.Candidates(r, f.opts.filter)
	f.opts.metricsCollector.RecordParse(source, r.Line(), len(candidates), err)
	return candidates, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
