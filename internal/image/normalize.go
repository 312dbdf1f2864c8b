// Package image decodes, normalizes and encodes the pixel buffers processed
// by frag.
//
// Every decoded image is normalized to a non-premultiplied RGBA8 buffer
// (*image.NRGBA) whose bounds start at the origin and whose stride is exactly
// 4 bytes per pixel, so pixel i lives at byte offset 4*i.
package image

import (
	"errors"
	"image"

	xdraw "golang.org/x/image/draw"
)

// ErrEmpty is returned when an image has zero width or height.
var ErrEmpty = errors.New("image: zero-area image")

// IsCanonical reports whether img is already a tightly packed, origin-based
// RGBA8 buffer that can be used without copying.
func IsCanonical(img image.Image) bool {
	n, ok := img.(*image.NRGBA)
	if !ok {
		return false
	}
	return n.Rect.Min == (image.Point{}) && n.Stride == 4*n.Rect.Dx() &&
		len(n.Pix) == n.Stride*n.Rect.Dy()
}

// ToNRGBA converts img to canonical RGBA8.
//
// Images that already satisfy IsCanonical are returned as is and must be
// treated as read-only by the caller. Any other layout (premultiplied RGBA,
// paletted, grayscale, YCbCr, 16-bit, offset sub-images) is redrawn into a
// fresh buffer with the Src operator.
func ToNRGBA(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, ErrEmpty
	}
	if IsCanonical(img) {
		return img.(*image.NRGBA), nil
	}

	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst, nil
}
