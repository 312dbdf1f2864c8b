package frag

import (
	"image"

	"github.com/gogpu/frag/internal/color"
)

// Context is the per-pixel bundle of facts that extractors derive their
// values from. A Context is only valid for the duration of a single Shade
// call: the engine reuses the underlying memory for the next pixel of the
// same span, so handlers and extractors must not retain it.
type Context struct {
	uniforms any // *U of the running App
	src      *image.NRGBA
	coord    UVec2
	color    Vec4
}

// NewContext builds a standalone Context for pixel (x, y) of src, which
// must be a canonical RGBA8 image (origin-based, 4 bytes per pixel).
// uniforms must be a pointer to the uniform state that Uniforms[U]
// extractors will read; it may be nil when no handler asks for uniforms.
//
// NewContext is meant for tests and custom drivers; App builds its own
// contexts.
func NewContext(src *image.NRGBA, uniforms any, x, y int) *Context {
	ctx := &Context{uniforms: uniforms, src: src}
	ctx.reset(y*src.Rect.Dx()+x, src.Rect.Dx())
	return ctx
}

// reset points the context at linear pixel index i of an image of the
// given width.
func (c *Context) reset(i, width int) {
	c.coord = UVec2{X: uint32(i % width), Y: uint32(i / width)} //nolint:gosec // i is a valid pixel index
	r, g, b, a := color.Unpack(c.src.Pix[i*4:])
	c.color = Vec4{X: r, Y: g, Z: b, W: a}
}

// Coord returns the integer coordinate of the pixel being shaded.
func (c *Context) Coord() UVec2 {
	return c.coord
}

// Color returns the input color of the pixel being shaded, normalized to
// [0, 1] per channel.
func (c *Context) Color() Vec4 {
	return c.color
}

// Width returns the width of the source image in pixels.
func (c *Context) Width() int {
	return c.src.Rect.Dx()
}

// Height returns the height of the source image in pixels.
func (c *Context) Height() int {
	return c.src.Rect.Dy()
}

// Resolution returns the source image dimensions as floats.
func (c *Context) Resolution() Vec2 {
	return Vec2{X: float64(c.src.Rect.Dx()), Y: float64(c.src.Rect.Dy())}
}

// Source returns a Sampler over the source image. The sampler shares the
// source's pixels; no copy is made.
func (c *Context) Source() Sampler {
	return Sampler{pix: c.src.Pix, width: c.src.Rect.Dx(), height: c.src.Rect.Dy()}
}
