package frag

import (
	"log/slog"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// Progress is a snapshot of a run's completion.
type Progress struct {
	// Done is the number of pixels shaded so far.
	Done int
	// Total is the number of pixels in the image.
	Total int
}

// Percent returns Done as a percentage of Total.
func (p Progress) Percent() float64 {
	if p.Total == 0 {
		return 100
	}
	return float64(p.Done) / float64(p.Total) * 100
}

// Complete reports whether every pixel has been shaded.
func (p Progress) Complete() bool {
	return p.Done >= p.Total
}

// progressReporter is a concurrent completion counter with a background
// observer. Workers call add; the observer samples the counter on a ticker
// and reports every milestone crossed, plus a final report at completion.
type progressReporter struct {
	done  atomic.Int64
	total int64

	step     float64
	interval time.Duration
	log      *slog.Logger
	notify   func(Progress)

	complete     chan struct{}
	completeOnce sync.Once
	stop         chan struct{}
	stopOnce     sync.Once
	exited       chan struct{}
}

// startProgress starts an observer expecting total completions.
// total must be positive.
func startProgress(total int, o options, log *slog.Logger) *progressReporter {
	r := &progressReporter{
		total:    int64(total),
		step:     o.milestone,
		interval: o.interval,
		log:      log,
		notify:   o.onProgress,
		complete: make(chan struct{}),
		stop:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	go r.observe()
	return r
}

// add records n completed pixels.
func (r *progressReporter) add(n int) {
	if r.done.Add(int64(n)) >= r.total {
		r.completeOnce.Do(func() { close(r.complete) })
	}
}

// abort ends observation without a final report. Used when a run fails.
func (r *progressReporter) abort() {
	r.stopOnce.Do(func() { close(r.stop) })
}

// wait blocks until the observer goroutine has exited.
func (r *progressReporter) wait() {
	<-r.exited
}

// snapshot returns the current completion state.
func (r *progressReporter) snapshot() Progress {
	return Progress{Done: int(r.done.Load()), Total: int(r.total)}
}

func (r *progressReporter) observe() {
	defer close(r.exited)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	next := r.step
	for {
		select {
		case <-r.stop:
			return
		case <-r.complete:
			r.report(r.snapshot())
			return
		case <-ticker.C:
			p := r.snapshot()
			if pct := p.Percent(); pct >= next && !p.Complete() {
				r.report(p)
				next = (math.Floor(pct/r.step) + 1) * r.step
			}
		}
	}
}

func (r *progressReporter) report(p Progress) {
	r.log.Info("progress", "done", p.Done, "total", p.Total, "percent", math.Round(p.Percent()))
	if r.notify != nil {
		r.notify(p)
	}
}
