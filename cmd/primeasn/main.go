// Command primeasn prints the prime AS numbers that a Regional Internet
// Registry lists as available.
//
// Usage:
//
//	primeasn [flags]
//
// With no -url the RIPE NCC delegated-extended file of 2021-11-22 is read.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/automaxprocs/maxprocs"

	"github.com/hupe1980/primeasn"
	"github.com/hupe1980/primeasn/blobstore"
	"github.com/hupe1980/primeasn/blobstore/minio"
	"github.com/hupe1980/primeasn/blobstore/s3"
	"github.com/hupe1980/primeasn/codec"
	"github.com/hupe1980/primeasn/report"
	"github.com/hupe1980/primeasn/report/ddb"
	"github.com/hupe1980/primeasn/resource"
)

type config struct {
	urls            []string
	format          string
	codec           string
	output          string
	logLevel        string
	logFormat       string
	rateLimit       int64
	maxFetches      int64
	memoryLimit     int64
	referenceLow    bool
	s3Region        string
	s3PathStyle     bool
	minioEndpoint   string
	minioTLS        bool
	ddbTable        string
	metricsTextfile string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	cfg := &config{}

	fs := flag.NewFlagSet("primeasn", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Func("url", "dataset location; repeat for several sources (default "+primeasn.DefaultSource+")", func(s string) error {
		cfg.urls = append(cfg.urls, s)
		return nil
	})
	fs.StringVar(&cfg.format, "format", "text", "report format: text, json or roaring")
	fs.StringVar(&cfg.codec, "codec", "go-json", "JSON codec for -format json: json or go-json")
	fs.StringVar(&cfg.output, "output", "", "report location; empty writes to stdout")
	fs.StringVar(&cfg.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.Int64Var(&cfg.rateLimit, "rate-limit", 0, "download limit in bytes per second across all sources (0 = unlimited)")
	fs.Int64Var(&cfg.maxFetches, "max-fetches", resource.DefaultMaxConcurrentFetches, "maximum concurrent downloads")
	fs.Int64Var(&cfg.memoryLimit, "memory-limit", 0, "maximum sieve table size in bytes (0 = unlimited)")
	fs.BoolVar(&cfg.referenceLow, "reference-low-bits", false, "report AS0 and AS1 as prime, like earlier releases")
	fs.StringVar(&cfg.s3Region, "s3-region", "", "AWS region for s3:// locations (default from AWS config)")
	fs.BoolVar(&cfg.s3PathStyle, "s3-path-style", false, "use path-style addressing for s3:// locations")
	fs.StringVar(&cfg.minioEndpoint, "minio-endpoint", "", "host:port of the MinIO server for minio:// locations")
	fs.BoolVar(&cfg.minioTLS, "minio-tls", false, "connect to MinIO over TLS")
	fs.StringVar(&cfg.ddbTable, "ddb-table", "", "DynamoDB table to publish prime AS numbers to")
	fs.StringVar(&cfg.metricsTextfile, "metrics-textfile", "", "write Prometheus metrics to this file after the run, including failed runs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

func newLogger(cfg *config, w io.Writer) (*primeasn.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid -log-level: %w", err)
	}
	switch cfg.logFormat {
	case "text":
		return primeasn.NewTextLogger(w, level), nil
	case "json":
		return primeasn.NewJSONLogger(w, level), nil
	default:
		return nil, fmt.Errorf("invalid -log-format %q (want text or json)", cfg.logFormat)
	}
}

// stores builds the factories for the cloud schemes. Clients are created per
// location so each bucket gets its own store.
func (cfg *config) stores() map[string]primeasn.StoreFactory {
	return map[string]primeasn.StoreFactory{
		"s3": func(ctx context.Context, loc primeasn.Location) (blobstore.Store, error) {
			var opts []s3.Option
			if cfg.s3Region != "" {
				opts = append(opts, s3.WithRegion(cfg.s3Region))
			}
			if cfg.s3PathStyle {
				opts = append(opts, s3.WithPathStyle())
			}
			return s3.New(ctx, loc.Bucket, opts...)
		},
		"minio": func(_ context.Context, loc primeasn.Location) (blobstore.Store, error) {
			if cfg.minioEndpoint == "" {
				return nil, errors.New("minio:// location requires -minio-endpoint")
			}
			opts := []minio.Option{
				minio.WithCredentials(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY")),
			}
			if cfg.minioTLS {
				opts = append(opts, minio.WithTLS())
			}
			return minio.New(cfg.minioEndpoint, loc.Bucket, opts...)
		},
	}
}

func storeFor(ctx context.Context, factories map[string]primeasn.StoreFactory, loc primeasn.Location) (blobstore.Store, error) {
	if loc.Scheme == "file" {
		return blobstore.NewLocalStore(""), nil
	}
	f, ok := factories[loc.Scheme]
	if !ok {
		return nil, fmt.Errorf("%w: cannot write to %q", primeasn.ErrUnsupportedScheme, loc.Scheme)
	}
	return f(ctx, loc)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) (err error) {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	if _, err := maxprocs.Set(maxprocs.Logger(func(format string, a ...any) {
		logger.Debug(fmt.Sprintf(format, a...))
	})); err != nil {
		logger.Warn("failed to set GOMAXPROCS", "error", err)
	}

	format, err := report.ParseFormat(cfg.format)
	if err != nil {
		return err
	}
	c, ok := codec.ByName(cfg.codec)
	if !ok {
		return fmt.Errorf("invalid -codec %q (want json or go-json)", cfg.codec)
	}

	metrics := primeasn.NewPrometheusCollector()
	if cfg.metricsTextfile != "" {
		// Written on failure too, so error counters reach the collector.
		defer func() {
			if werr := metrics.WriteToTextfile(cfg.metricsTextfile); werr != nil {
				err = errors.Join(err, fmt.Errorf("write metrics: %w", werr))
			}
		}()
	}
	factories := cfg.stores()

	opts := []primeasn.Option{
		primeasn.WithLogger(logger),
		primeasn.WithMetricsCollector(metrics),
		primeasn.WithResourceConfig(resource.Config{
			MemoryLimitBytes:     cfg.memoryLimit,
			MaxConcurrentFetches: cfg.maxFetches,
			IOLimitBytesPerSec:   cfg.rateLimit,
		}),
	}
	if len(cfg.urls) > 0 {
		opts = append(opts, primeasn.WithSources(cfg.urls...))
	}
	for scheme, f := range factories {
		opts = append(opts, primeasn.WithStore(scheme, f))
	}
	if cfg.referenceLow {
		opts = append(opts, primeasn.WithReferenceLowBits())
	}

	finder, err := primeasn.NewFinder(opts...)
	if err != nil {
		return err
	}

	r, err := finder.Find(ctx)
	if err != nil {
		return err
	}

	if err := writeReport(ctx, cfg, factories, format, r, c, stdout); err != nil {
		return err
	}

	if cfg.ddbTable != "" {
		pub, err := ddb.New(ctx, cfg.ddbTable)
		if err != nil {
			return err
		}
		n, err := pub.Publish(ctx, r)
		if err != nil {
			return fmt.Errorf("publish to %s: %w", cfg.ddbTable, err)
		}
		logger.Info("published report", "table", cfg.ddbTable, "items", n)
	}
	return nil
}

func writeReport(ctx context.Context, cfg *config, factories map[string]primeasn.StoreFactory, format report.Format, r *report.Report, c codec.Codec, stdout io.Writer) error {
	if cfg.output == "" {
		return report.Write(stdout, format, r, c)
	}

	loc, err := primeasn.ParseLocation(cfg.output)
	if err != nil {
		return err
	}
	store, err := storeFor(ctx, factories, loc)
	if err != nil {
		return err
	}
	data, err := report.Encode(format, r, c)
	if err != nil {
		return err
	}
	if err := store.Put(ctx, loc.Key, data); err != nil {
		return fmt.Errorf("write report to %s: %w", loc, err)
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "primeasn:", err)
		stop()
		os.Exit(1)
	}
}
