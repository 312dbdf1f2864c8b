package frag

import (
	"image"

	"github.com/gogpu/frag/internal/color"
	fimage "github.com/gogpu/frag/internal/image"
)

// Sampler provides nearest-neighbor lookups into a secondary image, such as
// a texture carried in uniform state.
//
// A Sampler is a small value (a slice header and two ints); copying it
// shares the underlying pixels, so embedding one in a uniform struct keeps
// per-pixel uniform copies cheap. Samplers are read-only after construction
// and safe for concurrent use.
//
// The zero Sampler has no pixels and samples as transparent black.
type Sampler struct {
	pix    []uint8
	width  int
	height int
}

// NewSampler wraps img. Images that are not already tightly packed RGBA8 are
// converted; canonical *image.NRGBA values are shared, not copied, and must
// not be modified while the sampler is in use.
func NewSampler(img image.Image) (Sampler, error) {
	n, err := fimage.ToNRGBA(img)
	if err != nil {
		return Sampler{}, err
	}
	return Sampler{pix: n.Pix, width: n.Rect.Dx(), height: n.Rect.Dy()}, nil
}

// LoadSampler decodes the image at path and wraps it.
// Decode failures are reported as *DecodeError.
func LoadSampler(path string) (Sampler, error) {
	img, _, err := fimage.Load(path)
	if err != nil {
		return Sampler{}, &DecodeError{Source: path, Err: err}
	}
	s, err := NewSampler(img)
	if err != nil {
		return Sampler{}, &DecodeError{Source: path, Err: err}
	}
	return s, nil
}

// Resolution returns the sampler's dimensions as floats.
func (s Sampler) Resolution() Vec2 {
	return Vec2{X: float64(s.width), Y: float64(s.height)}
}

// Bounds returns the sampler's dimensions in pixels.
func (s Sampler) Bounds() (width, height int) {
	return s.width, s.height
}

// At returns the normalized color of pixel (x, y). Coordinates outside the
// image are clamped to the nearest edge pixel.
func (s Sampler) At(x, y int) Vec4 {
	if s.width == 0 || s.height == 0 {
		return Vec4{}
	}
	x = clampInt(x, 0, s.width-1)
	y = clampInt(y, 0, s.height-1)
	r, g, b, a := color.Unpack(s.pix[(y*s.width+x)*4:])
	return Vec4{X: r, Y: g, Z: b, W: a}
}

// Sample returns the color at normalized coordinate uv. uv is scaled by the
// sampler's dimensions and truncated toward zero, so (0, 0) is the top-left
// pixel and values just below (1, 1) hit the bottom-right one.
//
// Coordinates outside [0, 1) are clamped to the edge; NaN maps to 0.
func (s Sampler) Sample(uv Vec2) Vec4 {
	return s.At(texel(uv.X, s.width), texel(uv.Y, s.height))
}

// texel maps a normalized coordinate to a pixel index in [0, n-1] without
// relying on float-to-int conversion of out-of-range values.
func texel(u float64, n int) int {
	f := u * float64(n)
	if !(f > 0) {
		return 0
	}
	if f >= float64(n) {
		return n - 1
	}
	return int(f)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
