// Package frag runs CPU "fragment shaders": a user function applied to every
// pixel of an image, in parallel, with the result written to an output
// stream.
//
// # Overview
//
// A fragment is an ordinary Go function whose parameters declare what it
// needs to know about each pixel. Every parameter type is an extractor, a
// type that knows how to derive itself from the per-pixel Context:
//
//   - FragCoord: the integer pixel coordinate
//   - Resolution: the image size as floats
//   - UV: the coordinate divided by the resolution, in [0, 1)
//   - FragColor: the input color, normalized to [0, 1]
//   - Uniforms[U]: a copy of the App's uniform state
//
// Fn0 through Fn9 adapt such a function into a Handler. The adaptation is
// resolved at compile time; no reflection happens per pixel.
//
// # Quick Start
//
//	type State struct{ Frame, Frames int }
//
//	func fade(c frag.FragColor, u frag.Uniforms[State]) frag.Vec4 {
//		k := float64(u.Value.Frame) / float64(u.Value.Frames)
//		return c.Scale(k).WithAlpha(1)
//	}
//
//	app, err := frag.New(State{Frame: 3, Frames: 10})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer app.Close()
//
//	out, _ := os.Create("out.png")
//	defer out.Close()
//	_, err = app.Run(ctx, frag.FromPath("in.png"), frag.Fn2(fade), out)
//
// # Pipeline
//
// Run decodes the source, normalizes it to non-premultiplied RGBA8, splits
// the pixels into contiguous chunks for the worker pool, shades each pixel,
// and assembles the output in row-major order before encoding it (PNG by
// default). Output channels are rounded to the nearest byte and clamped to
// [0, 255].
//
// WithSourceCache keeps decoded path sources between runs, which helps batch
// renders that shade the same file many times.
//
// # Samplers
//
// A Sampler gives a handler nearest-neighbor access to a second image. It is
// meant to live in the uniform state:
//
//	type Block struct{ Texture frag.Sampler }
//
//	func blend(c frag.FragColor, uv frag.UV, u frag.Uniforms[Block]) frag.Vec4 {
//		return u.Value.Texture.Sample(uv.Vec2).Lerp(c.Vec4, uv.Y)
//	}
//
// # Logging
//
// frag is silent by default. SetLogger or WithLogger enables structured
// logging through log/slog, including periodic progress milestones.
package frag
