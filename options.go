package primeasn

import (
	"time"

	"github.com/hupe1980/primeasn/delegated"
	"github.com/hupe1980/primeasn/resource"
	"github.com/hupe1980/primeasn/sieve"
)

type options struct {
	sources          []string
	filter           delegated.Predicate
	stores           map[string]StoreFactory
	resource         resource.Config
	sieveOptions     []sieve.Option
	metricsCollector MetricsCollector
	logger           *Logger
	now              func() time.Time
}

// Option configures a Finder.
type Option func(*options)

// WithSources sets the dataset locations to read. Candidates are concatenated
// in the order given. Without this option DefaultSource is used.
func WithSources(sources ...string) Option {
	return func(o *options) {
		o.sources = append([]string(nil), sources...)
	}
}

// WithFilter selects which dataset rows become candidates.
// The default is delegated.FreeASN.
func WithFilter(p delegated.Predicate) Option {
	return func(o *options) {
		if p == nil {
			p = delegated.FreeASN
		}
		o.filter = p
	}
}

// WithStore registers the store factory for a location scheme, replacing any
// built-in one.
//
// Example:
//
//	store, _ := s3.New(ctx, "rir-mirror")
//	finder, _ := primeasn.NewFinder(
//	    primeasn.WithSources("s3://rir-mirror/ripencc/delegated-ripencc-extended-latest.bz2"),
//	    primeasn.WithStore("s3", primeasn.StaticStore(store)),
//	)
func WithStore(scheme string, f StoreFactory) Option {
	return func(o *options) {
		o.stores[scheme] = f
	}
}

// WithResourceConfig limits fetch concurrency, download throughput and sieve memory.
func WithResourceConfig(cfg resource.Config) Option {
	return func(o *options) {
		o.resource = cfg
	}
}

// WithReferenceLowBits keeps 0 and 1 marked prime in the sieve table, matching
// the historical output of this tool. Only relevant if a dataset lists AS0 or AS1.
func WithReferenceLowBits() Option {
	return func(o *options) {
		o.sieveOptions = append(o.sieveOptions, sieve.WithReferenceLowBits())
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &primeasn.BasicMetricsCollector{}
//	finder, _ := primeasn.NewFinder(primeasn.WithMetricsCollector(metrics))
//	// ... run finder ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fetched: %d bytes, primes: %d\n", stats.FetchBytes, stats.PrimeCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := primeasn.NewJSONLogger(os.Stderr, slog.LevelInfo)
//	finder, _ := primeasn.NewFinder(primeasn.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func withClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		sources:          []string{DefaultSource},
		filter:           delegated.FreeASN,
		stores:           defaultStores(),
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
		now:              time.Now,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
