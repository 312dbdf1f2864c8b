package frag

import (
	"log/slog"
	"time"
)

// Defaults used when the corresponding option is not given.
const (
	// DefaultChunkSize is the number of pixels in one unit of pool work.
	DefaultChunkSize = 4096

	// DefaultProgressInterval is how often the progress observer samples
	// the completion counter.
	DefaultProgressInterval = 100 * time.Millisecond

	// DefaultMilestone is the percentage step between progress reports.
	DefaultMilestone = 10.0
)

// Option configures an App during creation.
//
// Example:
//
//	app, err := frag.New(State{}, frag.WithWorkers(8), frag.WithChunkSize(1024))
type Option func(*options)

// options holds optional configuration for App creation.
type options struct {
	workers    int
	multiplier int
	chunkSize  int
	encoder    Encoder
	onProgress func(Progress)
	interval   time.Duration
	milestone  float64
	logger     *slog.Logger

	sourceCache int
}

// defaultOptions returns the default app options.
func defaultOptions() options {
	return options{
		multiplier: 1,
		chunkSize:  DefaultChunkSize,
		encoder:    EncodePNG,
		interval:   DefaultProgressInterval,
		milestone:  DefaultMilestone,
	}
}

// WithWorkers sets the exact number of pool workers, overriding
// WithWorkerMultiplier. Zero selects the default; negative values make New
// fail with a *PoolError.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithWorkerMultiplier sizes the pool to GOMAXPROCS × m workers.
// The default multiplier is 1; negative values make New fail with a
// *PoolError.
func WithWorkerMultiplier(m int) Option {
	return func(o *options) {
		o.multiplier = m
	}
}

// WithChunkSize sets how many consecutive pixels form one unit of pool work.
// Non-positive values keep DefaultChunkSize.
func WithChunkSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.chunkSize = n
		}
	}
}

// WithEncoder sets the Encoder used by Run. nil keeps EncodePNG.
func WithEncoder(e Encoder) Option {
	return func(o *options) {
		if e != nil {
			o.encoder = e
		}
	}
}

// WithProgress registers a callback invoked from the progress observer at
// every milestone and once more when the run completes. The callback runs on
// its own goroutine, never on a worker, and must not block for long.
func WithProgress(fn func(Progress)) Option {
	return func(o *options) {
		o.onProgress = fn
	}
}

// WithProgressInterval sets how often the progress observer samples the
// completion counter. Non-positive values keep DefaultProgressInterval.
func WithProgressInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.interval = d
		}
	}
}

// WithMilestone sets the percentage step between progress reports.
// Values outside (0, 100] keep DefaultMilestone.
func WithMilestone(percent float64) Option {
	return func(o *options) {
		if percent > 0 && percent <= 100 {
			o.milestone = percent
		}
	}
}

// WithLogger sets a logger for this App only. nil falls back to the
// package-wide Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSourceCache keeps up to n decoded path sources in memory, so repeated
// runs over the same file skip decoding. A file whose size or modification
// time changed is decoded again. Zero, the default, disables the cache.
//
// Cached images are shared between runs and never modified.
func WithSourceCache(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.sourceCache = n
		}
	}
}
