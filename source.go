package frag

import (
	"errors"
	"image"
	"io"

	fimage "github.com/gogpu/frag/internal/image"
)

// errNoSource is reported for the zero Source.
var errNoSource = errors.New("no source image")

type sourceKind uint8

const (
	sourceNone sourceKind = iota
	sourcePath
	sourceReader
	sourceImage
	sourceError
)

// Source identifies the image a run processes: a file path, a reader of
// encoded bytes, an already-decoded image, or a decode failure obtained
// elsewhere. Decoding is deferred until Run, which reports any failure as a
// *DecodeError before starting workers.
//
// Recognized encodings: PNG, JPEG, GIF, BMP, TIFF and WebP.
type Source struct {
	kind sourceKind
	path string
	r    io.Reader
	img  image.Image
	err  error
}

// FromPath returns a Source that decodes the file at path.
func FromPath(path string) Source {
	return Source{kind: sourcePath, path: path}
}

// FromReader returns a Source that decodes r. The reader is consumed by the
// first run that uses the Source.
func FromReader(r io.Reader) Source {
	return Source{kind: sourceReader, r: r}
}

// FromImage returns a Source for an already-decoded image. A canonical
// *image.NRGBA is used in place and must not be modified during the run.
func FromImage(img image.Image) Source {
	return Source{kind: sourceImage, img: img}
}

// FromError returns a Source that fails with err when run.
func FromError(err error) Source {
	return Source{kind: sourceError, err: err}
}

// String names the source for logs and errors.
func (s Source) String() string {
	switch s.kind {
	case sourcePath:
		return s.path
	case sourceReader:
		return "reader"
	case sourceImage:
		return "image"
	case sourceError:
		return "error"
	default:
		return "none"
	}
}

// decode resolves the source to a decoded image and its format name.
func (s Source) decode() (image.Image, string, error) {
	var (
		img    image.Image
		format string
		err    error
	)
	switch s.kind {
	case sourcePath:
		img, format, err = fimage.Load(s.path)
	case sourceReader:
		if s.r == nil {
			err = errNoSource
			break
		}
		img, format, err = fimage.Decode(s.r)
	case sourceImage:
		img, format = s.img, "image"
		if img == nil {
			err = errNoSource
		}
	case sourceError:
		err = s.err
		if err == nil {
			err = errNoSource
		}
	default:
		err = errNoSource
	}
	if err != nil {
		return nil, "", &DecodeError{Source: s.String(), Err: err}
	}
	return img, format, nil
}
