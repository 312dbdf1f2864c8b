package frag

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/gogpu/frag/internal/cache"
	"github.com/gogpu/frag/internal/color"
	fimage "github.com/gogpu/frag/internal/image"
	"github.com/gogpu/frag/internal/parallel"
)

// App runs fragment handlers over images. It owns a worker pool and a
// read-only uniform state of type U that every handler can ask for through
// Uniforms[U].
//
// An App is safe for concurrent use. Apps derived through WithUniforms share
// the same pool; concurrent runs on them interleave their work on it.
type App[U any] struct {
	uniforms U
	pool     *parallel.WorkerPool
	sources  *cache.Cache[sourceKey, loadedSource]
	opts     options
}

// New creates an App holding uniforms, with a pool of GOMAXPROCS workers
// unless the options say otherwise. Invalid pool settings are reported as a
// *PoolError.
func New[U any](uniforms U, opts ...Option) (*App[U], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.workers < 0 || o.multiplier < 0 {
		return nil, &PoolError{Err: ErrInvalidWorkers}
	}
	workers := o.workers
	if workers == 0 {
		m := o.multiplier
		if m == 0 {
			m = 1
		}
		workers = runtime.GOMAXPROCS(0) * m
	}

	pool := parallel.NewWorkerPool(workers)
	a := &App[U]{uniforms: uniforms, pool: pool, opts: o}
	if o.sourceCache > 0 {
		a.sources = cache.New[sourceKey, loadedSource](o.sourceCache)
	}
	a.logger().Debug("worker pool created", "workers", pool.Workers(), "chunk", o.chunkSize)
	return a, nil
}

// WithUniforms returns a new App with a different uniform state, sharing
// everything else with this App. The receiver is not modified, so runs
// already in flight keep their own uniforms.
func (a *App[U]) WithUniforms(uniforms U) *App[U] {
	return &App[U]{uniforms: uniforms, pool: a.pool, sources: a.sources, opts: a.opts}
}

// Uniforms returns a copy of the App's uniform state.
func (a *App[U]) Uniforms() U {
	return a.uniforms
}

// Workers returns the size of the App's worker pool.
func (a *App[U]) Workers() int {
	return a.pool.Workers()
}

// Close stops the worker pool. It also closes the pool of every App derived
// through WithUniforms. Close is safe to call more than once, but not while
// a run is in flight.
func (a *App[U]) Close() {
	a.pool.Close()
}

// Run shades every pixel of src with h and writes the encoded result to out.
//
// The run is all or nothing: either out receives one complete image, or
// nothing is written and an error is returned. Decode failures are
// *DecodeError, encoder or write failures are *EncodeError, and a panicking
// handler aborts the run with a *PanicError. Cancelling ctx stops the run
// before the next chunk of pixels and returns ctx.Err().
//
// On success Run returns the receiver so runs can be chained with
// WithUniforms.
func (a *App[U]) Run(ctx context.Context, src Source, h Handler, out io.Writer) (*App[U], error) {
	if out == nil {
		return nil, ErrNilOutput
	}

	log := a.logger()
	img, rep, err := a.render(ctx, src, h, log)
	if err != nil {
		return nil, err
	}

	log.Info("writing output", "source", src.String())
	err = encode(out, img, a.opts.encoder)
	rep.wait()
	if err != nil {
		return nil, err
	}
	return a, nil
}

// RunImage shades every pixel of src with h and returns the result without
// encoding it. Errors are the same as for Run.
func (a *App[U]) RunImage(ctx context.Context, src Source, h Handler) (*image.NRGBA, error) {
	img, rep, err := a.render(ctx, src, h, a.logger())
	if err != nil {
		return nil, err
	}
	rep.wait()
	return img, nil
}

// render decodes src, shades it, and returns the output together with the
// still-joinable progress reporter.
func (a *App[U]) render(ctx context.Context, src Source, h Handler, log *slog.Logger) (*image.NRGBA, *progressReporter, error) {
	if h == nil {
		return nil, nil, ErrNilHandler
	}
	if !a.pool.IsRunning() {
		return nil, nil, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	log.Info("running app", "source", src.String())

	ready, err := a.load(src)
	if err != nil {
		return nil, nil, err
	}
	in := ready.img

	width, height := in.Rect.Dx(), in.Rect.Dy()
	total := width * height
	log.Debug("source ready", "format", ready.format, "width", width, "height", height,
		"converted", ready.converted, "cached", ready.cached)

	rep := startProgress(total, a.opts, log)
	dst := make([]uint8, len(in.Pix))
	spans := parallel.Split(total, a.opts.chunkSize)

	// One pointer to the uniforms is shared by every context of the run;
	// Uniforms[U] copies the value out on each extraction.
	uniforms := any(&a.uniforms)

	work := make([]func(), len(spans))
	for i, s := range spans {
		work[i] = func() {
			c := Context{uniforms: uniforms, src: in}
			for p := s.Start; p < s.End; p++ {
				c.reset(p, width)
				v := h.Shade(&c)
				color.Pack(dst[p*4:], v.X, v.Y, v.Z, v.W)
			}
			rep.add(s.Len())
		}
	}

	start := time.Now()
	if err := a.pool.ExecuteAll(ctx, work); err != nil {
		rep.abort()
		rep.wait()
		err = fromPoolError(err)
		log.Warn("run aborted", "source", src.String(), "done", rep.snapshot().Done, "total", total, "err", err)
		return nil, nil, err
	}
	log.Info("processing complete", "pixels", total, "spans", len(spans), "elapsed", time.Since(start))

	out := &image.NRGBA{Pix: dst, Stride: width * 4, Rect: image.Rect(0, 0, width, height)}
	return out, rep, nil
}

// sourceKey identifies a file on disk by path and last modification, so an
// edited file misses the cache.
type sourceKey struct {
	path    string
	modTime int64
	size    int64
}

// loadedSource is a decoded source in canonical layout.
type loadedSource struct {
	img       *image.NRGBA
	format    string
	converted bool
	cached    bool
}

// load decodes src and converts it to the canonical layout, consulting the
// source cache for path sources when one is configured.
func (a *App[U]) load(src Source) (loadedSource, error) {
	var key sourceKey
	useCache := a.sources != nil && src.kind == sourcePath
	if useCache {
		fi, err := os.Stat(src.path)
		if err != nil {
			return loadedSource{}, &DecodeError{Source: src.String(), Err: fmt.Errorf("image: open file: %w", err)}
		}
		key = sourceKey{path: src.path, modTime: fi.ModTime().UnixNano(), size: fi.Size()}
		if ls, ok := a.sources.Get(key); ok {
			ls.cached = true
			return ls, nil
		}
	}

	decoded, format, err := src.decode()
	if err != nil {
		return loadedSource{}, err
	}
	converted := !fimage.IsCanonical(decoded)
	in, err := fimage.ToNRGBA(decoded)
	if errors.Is(err, fimage.ErrEmpty) {
		return loadedSource{}, ErrEmptyImage
	}
	if err != nil {
		return loadedSource{}, &DecodeError{Source: src.String(), Err: err}
	}

	ls := loadedSource{img: in, format: format, converted: converted}
	if useCache {
		a.sources.Add(key, ls)
	}
	return ls, nil
}

// encode serializes img with enc into memory and then hands the complete
// encoding to out, so a failing encoder never leaves a partial image behind.
func encode(out io.Writer, img image.Image, enc Encoder) error {
	var buf bytes.Buffer
	if err := enc(&buf, img); err != nil {
		return &EncodeError{Err: err}
	}
	if _, err := buf.WriteTo(out); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

func (a *App[U]) logger() *slog.Logger {
	if a.opts.logger != nil {
		return a.opts.logger
	}
	return Logger()
}
