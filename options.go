package fileformat

import "time"

// Option represents a configuration option
type Option func(*Options)

// Options contains all possible options for the inspect, scan and watch
// surfaces. The core classification entry points take no options.
type Options struct {
	// Include restricts scanning and watching to paths matching at least
	// one of these glob patterns. Empty means everything is included.
	Include []string

	// Exclude skips paths matching any of these glob patterns. Exclude
	// wins over Include.
	Exclude []string

	// MaxDepth limits directory recursion. 0 means unlimited.
	MaxDepth int

	// FollowSymlinks makes the scanner descend into symlinked
	// directories. Off by default to avoid walk cycles.
	FollowSymlinks bool

	// Concurrency is the number of files classified in parallel during a
	// scan. Values below 1 mean runtime.NumCPU.
	Concurrency int

	// Cache, when set, memoizes per-file reports so unchanged files skip
	// re-reading on a rescan.
	Cache Cache

	// CacheTTL bounds the lifetime of cached reports. 0 means no expiry.
	CacheTTL time.Duration

	// Checksums lists the algorithms to fingerprint content with. Empty
	// means no checksum is computed and only the leading bytes are read.
	Checksums []ChecksumAlgorithm

	// PollInterval is the polling cadence for watchers on sources without
	// native filesystem events.
	PollInterval time.Duration
}

// newOptions applies opts over the defaults.
func newOptions(opts []Option) Options {
	o := Options{
		PollInterval: 5 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithInclude adds include glob patterns, e.g. "*.png" or "images/**".
func WithInclude(patterns ...string) Option {
	return func(o *Options) {
		o.Include = append(o.Include, patterns...)
	}
}

// WithExclude adds exclude glob patterns.
func WithExclude(patterns ...string) Option {
	return func(o *Options) {
		o.Exclude = append(o.Exclude, patterns...)
	}
}

// WithMaxDepth limits directory recursion depth.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithFollowSymlinks enables descending into symlinked directories.
func WithFollowSymlinks(follow bool) Option {
	return func(o *Options) {
		o.FollowSymlinks = follow
	}
}

// WithConcurrency sets the number of parallel classification workers.
func WithConcurrency(n int) Option {
	return func(o *Options) {
		o.Concurrency = n
	}
}

// WithCache memoizes per-file reports in the given cache.
func WithCache(cache Cache) Option {
	return func(o *Options) {
		o.Cache = cache
	}
}

// WithCacheTTL bounds the lifetime of cached reports.
func WithCacheTTL(ttl time.Duration) Option {
	return func(o *Options) {
		o.CacheTTL = ttl
	}
}

// WithChecksum fingerprints content with the given algorithm.
func WithChecksum(algorithm ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Checksums = append(o.Checksums, algorithm)
	}
}

// WithChecksums fingerprints content with several algorithms in one pass.
func WithChecksums(algorithms ...ChecksumAlgorithm) Option {
	return func(o *Options) {
		o.Checksums = append(o.Checksums, algorithms...)
	}
}

// WithPollInterval sets the polling cadence for watchers without native
// filesystem events.
func WithPollInterval(interval time.Duration) Option {
	return func(o *Options) {
		o.PollInterval = interval
	}
}
