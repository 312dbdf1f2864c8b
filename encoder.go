package frag

import (
	"image"
	"image/png"
	"io"

	fimage "github.com/gogpu/frag/internal/image"
)

// Encoder serializes the output image of a run to w.
//
// Encoders only need sequential writes. Run encodes into memory first and
// writes the finished encoding to its output in one pass.
type Encoder func(w io.Writer, img image.Image) error

// EncodePNG encodes img as PNG with default compression. It is the default
// Encoder.
func EncodePNG(w io.Writer, img image.Image) error {
	return fimage.EncodePNG(w, img, png.DefaultCompression)
}

// EncodeBMP encodes img as BMP.
func EncodeBMP(w io.Writer, img image.Image) error {
	return fimage.EncodeBMP(w, img)
}

// EncodeTIFF encodes img as Deflate-compressed TIFF.
func EncodeTIFF(w io.Writer, img image.Image) error {
	return fimage.EncodeTIFF(w, img)
}

// PNGEncoder returns a PNG Encoder with the given compression level.
func PNGEncoder(level png.CompressionLevel) Encoder {
	return func(w io.Writer, img image.Image) error {
		return fimage.EncodePNG(w, img, level)
	}
}

// JPEGEncoder returns a JPEG Encoder with the given quality (1-100).
// JPEG has no alpha channel; alpha is dropped.
func JPEGEncoder(quality int) Encoder {
	return func(w io.Writer, img image.Image) error {
		return fimage.EncodeJPEG(w, img, quality)
	}
}

// EncoderFor picks an Encoder from the extension of path:
// .jpg/.jpeg, .bmp, .tif/.tiff, and PNG for anything else.
func EncoderFor(path string) Encoder {
	switch fimage.FormatFromPath(path) {
	case "jpeg":
		return JPEGEncoder(90)
	case "bmp":
		return EncodeBMP
	case "tiff":
		return EncodeTIFF
	default:
		return EncodePNG
	}
}
