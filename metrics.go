package primeasn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// PrometheusCollector for a client_golang implementation.
type MetricsCollector interface {
	// RecordFetch is called after each source has been downloaded.
	// bytes counts the raw (possibly compressed) bytes read.
	RecordFetch(source string, bytes int64, duration time.Duration, err error)

	// RecordParse is called after each source has been parsed.
	// lines is the number of input lines consumed, candidates the number selected.
	RecordParse(source string, lines, candidates int, err error)

	// RecordSieve is called after the prime table has been built.
	RecordSieve(bound int, duration time.Duration, err error)

	// RecordFilter is called after the candidate filter pass.
	RecordFilter(candidates, primes int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFetch(string, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordParse(string, int, int, error)             {}
func (NoopMetricsCollector) RecordSieve(int, time.Duration, error)           {}
func (NoopMetricsCollector) RecordFilter(int, int, error)                    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FetchCount      atomic.Int64
	FetchErrors     atomic.Int64
	FetchBytes      atomic.Int64
	FetchTotalNanos atomic.Int64
	ParseLines      atomic.Int64
	ParseErrors     atomic.Int64
	CandidateCount  atomic.Int64
	SieveCount      atomic.Int64
	SieveErrors     atomic.Int64
	SieveTotalNanos atomic.Int64
	MaxBound        atomic.Int64
	FilterErrors    atomic.Int64
	PrimeCount      atomic.Int64
}

// RecordFetch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFetch(source string, bytes int64, duration time.Duration, err error) {
	b.FetchCount.Add(1)
	b.FetchBytes.Add(bytes)
	b.FetchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FetchErrors.Add(1)
	}
}

// RecordParse implements MetricsCollector.
func (b *BasicMetricsCollector) RecordParse(source string, lines, candidates int, err error) {
	b.ParseLines.Add(int64(lines))
	if err != nil {
		b.ParseErrors.Add(1)
		return
	}
	b.CandidateCount.Add(int64(candidates))
}

// RecordSieve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSieve(bound int, duration time.Duration, err error) {
	b.SieveCount.Add(1)
	b.SieveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SieveErrors.Add(1)
		return
	}
	for {
		cur := b.MaxBound.Load()
		if int64(bound) <= cur || b.MaxBound.CompareAndSwap(cur, int64(bound)) {
			break
		}
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(candidates, primes int, err error) {
	if err != nil {
		b.FilterErrors.Add(1)
		return
	}
	b.PrimeCount.Add(int64(primes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FetchCount:     b.FetchCount.Load(),
		FetchErrors:    b.FetchErrors.Load(),
		FetchBytes:     b.FetchBytes.Load(),
		FetchAvgNanos:  avg(b.FetchTotalNanos.Load(), b.FetchCount.Load()),
		ParseLines:     b.ParseLines.Load(),
		ParseErrors:    b.ParseErrors.Load(),
		CandidateCount: b.CandidateCount.Load(),
		SieveCount:     b.SieveCount.Load(),
		SieveErrors:    b.SieveErrors.Load(),
		SieveAvgNanos:  avg(b.SieveTotalNanos.Load(), b.SieveCount.Load()),
		MaxBound:       b.MaxBound.Load(),
		FilterErrors:   b.FilterErrors.Load(),
		PrimeCount:     b.PrimeCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FetchCount     int64
	FetchErrors    int64
	FetchBytes     int64
	FetchAvgNanos  int64
	ParseLines     int64
	ParseErrors    int64
	CandidateCount int64
	SieveCount     int64
	SieveErrors    int64
	SieveAvgNanos  int64
	MaxBound       int64
	FilterErrors   int64
	PrimeCount     int64
}
