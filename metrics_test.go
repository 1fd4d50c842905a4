package primeasn

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicMetricsCollector(t *testing.T) {
	m := &BasicMetricsCollector{}
	m.RecordFetch("a", 100, 10*time.Millisecond, nil)
	m.RecordFetch("b", 50, 30*time.Millisecond, errors.New("boom"))
	m.RecordParse("a", 12, 4, nil)
	m.RecordSieve(64, time.Millisecond, nil)
	m.RecordSieve(32, time.Millisecond, nil)
	m.RecordFilter(4, 2, nil)

	stats := m.GetStats()
	assert.Equal(t, int64(2), stats.FetchCount)
	assert.Equal(t, int64(1), stats.FetchErrors)
	assert.Equal(t, int64(150), stats.FetchBytes)
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), stats.FetchAvgNanos)
	assert.Equal(t, int64(12), stats.ParseLines)
	assert.Equal(t, int64(4), stats.CandidateCount)
	assert.Equal(t, int64(64), stats.MaxBound)
	assert.Equal(t, int64(2), stats.PrimeCount)
}

func TestPrometheusCollector(t *testing.T) {
	p := NewPrometheusCollector()
	p.RecordFetch("mem://a", 2048, time.Millisecond, nil)
	p.RecordParse("mem://a", 10, 6, nil)
	p.RecordSieve(97, time.Millisecond, nil)
	p.RecordFilter(6, 3, nil)
	p.RecordFilter(0, 0, errors.New("boom"))

	assert.Equal(t, 2048.0, testutil.ToFloat64(p.fetchBytes.WithLabelValues("mem://a")))
	assert.Equal(t, 6.0, testutil.ToFloat64(p.candidates))
	assert.Equal(t, 3.0, testutil.ToFloat64(p.primes))
	assert.Equal(t, 97.0, testutil.ToFloat64(p.bound))
	assert.Equal(t, 1.0, testutil.ToFloat64(p.errors.WithLabelValues("filter")))

	path := filepath.Join(t.TempDir(), "primeasn.prom")
	require.NoError(t, p.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "primeasn_primes_total 3")
}
