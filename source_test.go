package frag

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSourceString(t *testing.T) {
	tests := []struct {
		src  Source
		want string
	}{
		{FromPath("in/photo.png"), "in/photo.png"},
		{FromReader(bytes.NewReader(nil)), "reader"},
		{FromImage(quad()), "image"},
		{FromError(errors.New("x")), "error"},
		{Source{}, "none"},
	}
	for _, tt := range tests {
		if got := tt.src.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSourceDecode(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, quad()); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "quad.png")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		src    Source
		format string
	}{
		{"path", FromPath(path), "png"},
		{"reader", FromReader(bytes.NewReader(buf.Bytes())), "png"},
		{"image", FromImage(quad()), "image"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := tt.src.decode()
			if err != nil {
				t.Fatalf("decode() error = %v", err)
			}
			if format != tt.format {
				t.Errorf("format = %q, want %q", format, tt.format)
			}
			if img.Bounds() != image.Rect(0, 0, 2, 2) {
				t.Errorf("bounds = %v, want 2x2", img.Bounds())
			}
		})
	}
}

func TestSourceDecodeErrors(t *testing.T) {
	upstream := errors.New("camera offline")

	tests := []struct {
		name string
		src  Source
		is   error
	}{
		{"zero", Source{}, errNoSource},
		{"nil image", FromImage(nil), errNoSource},
		{"nil reader", FromReader(nil), errNoSource},
		{"nil error", FromError(nil), errNoSource},
		{"error", FromError(upstream), upstream},
		{"missing file", FromPath(filepath.Join(t.TempDir(), "nope.png")), os.ErrNotExist},
		{"garbage", FromReader(bytes.NewReader([]byte("not an image"))), image.ErrFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := tt.src.decode()
			var de *DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("decode() error = %v, want *DecodeError", err)
			}
			if de.Source != tt.src.String() {
				t.Errorf("DecodeError.Source = %q, want %q", de.Source, tt.src.String())
			}
			if !errors.Is(err, tt.is) {
				t.Errorf("decode() error = %v, want it to wrap %v", err, tt.is)
			}
		})
	}
}
