// Command frag runs a built-in fragment effect over an image.
//
// Usage:
//
//	frag -input photo.png -output out.png -effect grayscale
//	frag -input photo.png -output frame_%02d.png -effect fade -frames 10
//
// The output format follows the extension of -output.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/frag"
	fimage "github.com/gogpu/frag/internal/image"
)

func main() {
	var (
		input   = flag.String("input", "", "source image (png, jpeg, gif, bmp, tiff, webp)")
		output  = flag.String("output", "out.png", "output file; with -frames it must contain a %d verb")
		effect  = flag.String("effect", "identity", "effect: "+strings.Join(effectNames(), ", "))
		frames  = flag.Int("frames", 0, "render this many frames of the effect (batch mode)")
		texture = flag.String("texture", "", "texture image for the texture effect")
		workers = flag.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		chunk   = flag.Int("chunk", frag.DefaultChunkSize, "pixels per unit of work")
		verbose = flag.Bool("v", false, "log progress to stderr")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		frag.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := config{
		input:   *input,
		output:  *output,
		effect:  *effect,
		frames:  *frames,
		texture: *texture,
		workers: *workers,
		chunk:   *chunk,
	}
	start := time.Now()
	pixels, err := run(ctx, cfg)
	if err != nil {
		log.Fatalf("frag: %v", err)
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(os.Stderr, "shaded %d pixels with %s in %v\n", pixels, cfg.effect, time.Since(start).Round(time.Millisecond))
}

type config struct {
	input   string
	output  string
	effect  string
	frames  int
	texture string
	workers int
	chunk   int
}

// run renders cfg and returns the number of pixels shaded.
func run(ctx context.Context, cfg config) (int, error) {
	h, err := lookupEffect(cfg.effect)
	if err != nil {
		return 0, err
	}
	if cfg.frames > 0 && !strings.Contains(cfg.output, "%") {
		return 0, fmt.Errorf("-output %q needs a %%d verb in batch mode", cfg.output)
	}

	u := state{
		Ramp: [2]frag.Vec4{frag.RGBA(0, 0, 0, 1), frag.RGBA(0.95, 0.2, 0.35, 1)},
	}
	if cfg.effect == "texture" {
		if cfg.texture == "" {
			return 0, fmt.Errorf("the texture effect needs -texture")
		}
		if u.Texture, err = frag.LoadSampler(cfg.texture); err != nil {
			return 0, err
		}
	}

	var shaded atomic.Int64
	app, err := frag.New(u,
		frag.WithWorkers(cfg.workers),
		frag.WithChunkSize(cfg.chunk),
		frag.WithEncoder(frag.EncoderFor(cfg.output)),
		frag.WithProgress(func(p frag.Progress) {
			if p.Complete() {
				shaded.Add(int64(p.Total))
			}
		}),
	)
	if err != nil {
		return 0, err
	}
	defer app.Close()

	if cfg.frames <= 0 {
		err := renderFrame(ctx, app, frag.FromPath(cfg.input), cfg.output, h)
		return int(shaded.Load()), err
	}

	// Decode and convert once; every frame shades the same pixels.
	img, _, err := fimage.Load(cfg.input)
	if err != nil {
		return 0, err
	}
	src, err := fimage.ToNRGBA(img)
	if err != nil {
		return 0, err
	}

	for i := 0; i < cfg.frames; i++ {
		u.Frame, u.Frames = i, cfg.frames
		out := fmt.Sprintf(cfg.output, i)
		if err := renderFrame(ctx, app.WithUniforms(u), frag.FromImage(src), out, h); err != nil {
			return int(shaded.Load()), fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return int(shaded.Load()), nil
}

// renderFrame runs h over src into the file at path. The file is removed
// when the run fails.
func renderFrame(ctx context.Context, app *frag.App[state], src frag.Source, path string, h frag.Handler) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := app.Run(ctx, src, h, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}
