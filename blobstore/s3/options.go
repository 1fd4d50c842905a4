package s3

// Options configures a Store.
type Options struct {
	// Prefix is prepended to every key (e.g. "delegated/").
	Prefix string

	// Region overrides the region from the default configuration chain.
	Region string

	// UsePathStyle forces path-style addressing, needed by some S3-compatible endpoints.
	UsePathStyle bool

	// PartSize is the multipart upload part size in bytes.
	// Default: 8MB
	PartSize int64

	// Concurrency is the number of concurrent part uploads.
	// Default: 5
	Concurrency int
}

// Option configures a Store.
type Option func(*Options)

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(o *Options) { o.Prefix = prefix }
}

// WithRegion sets the AWS region.
func WithRegion(region string) Option {
	return func(o *Options) { o.Region = region }
}

// WithPathStyle enables path-style addressing.
func WithPathStyle() Option {
	return func(o *Options) { o.UsePathStyle = true }
}

// WithUpload configures multipart upload part size and concurrency.
func WithUpload(partSize int64, concurrency int) Option {
	return func(o *Options) {
		o.PartSize = partSize
		o.Concurrency = concurrency
	}
}

func defaultOptions() Options {
	return Options{
		PartSize:    8 * 1024 * 1024,
		Concurrency: 5,
	}
}
