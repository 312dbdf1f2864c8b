package frag

import (
	"errors"
	"testing"
)

func TestFragCoord_Extract(t *testing.T) {
	img := gradient(5, 3)
	ctx := NewContext(img, nil, 4, 2)

	got := extract[FragCoord](ctx)
	if got.X != 4 || got.Y != 2 {
		t.Errorf("FragCoord = %v, want (4, 2)", got.UVec2)
	}
}

func TestResolution_SameForEveryPixel(t *testing.T) {
	img := gradient(7, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 7; x++ {
			got := extract[Resolution](NewContext(img, nil, x, y))
			if got.Vec2 != V2(7, 3) {
				t.Fatalf("Resolution at (%d, %d) = %v, want (7, 3)", x, y, got.Vec2)
			}
		}
	}
}

func TestUV_Extract(t *testing.T) {
	const w, h = 8, 4
	img := gradient(w, h)

	if got := extract[UV](NewContext(img, nil, 0, 0)); got.Vec2 != V2(0, 0) {
		t.Errorf("UV(0, 0) = %v, want (0, 0)", got.Vec2)
	}
	if got := extract[UV](NewContext(img, nil, w-1, 0)); got.Vec2 != V2(float64(w-1)/w, 0) {
		t.Errorf("UV(W-1, 0) = %v, want (%v, 0)", got.Vec2, float64(w-1)/w)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uv := extract[UV](NewContext(img, nil, x, y))
			if uv.X < 0 || uv.X >= 1 || uv.Y < 0 || uv.Y >= 1 {
				t.Errorf("UV(%d, %d) = %v, want within [0, 1)", x, y, uv.Vec2)
			}
		}
	}
}

func TestFragColor_Extract(t *testing.T) {
	ctx := NewContext(quad(), nil, 1, 1)
	got := extract[FragColor](ctx)
	if got.Vec4 != V4(1, 1, 0, 1) {
		t.Errorf("FragColor = %v, want yellow", got.Vec4)
	}
	if got.Vec4 != ctx.Color() {
		t.Errorf("FragColor = %v, ctx.Color() = %v", got.Vec4, ctx.Color())
	}
}

type testState struct {
	Frame  int
	Frames int
}

func TestUniforms_Extract(t *testing.T) {
	state := testState{Frame: 3, Frames: 10}
	ctx := NewContext(quad(), &state, 0, 0)

	got := extract[Uniforms[testState]](ctx)
	if got.Value != state {
		t.Errorf("Uniforms = %+v, want %+v", got.Value, state)
	}

	// The extractor hands out a copy.
	got.Value.Frame = 99
	if state.Frame != 3 {
		t.Error("mutating extracted uniforms changed the shared state")
	}
}

func TestUniforms_TypeMismatchPanics(t *testing.T) {
	state := testState{}
	ctx := NewContext(quad(), &state, 0, 0)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUniformsType) {
			t.Errorf("recover() = %v, want error wrapping ErrUniformsType", r)
		}
	}()
	_ = extract[Uniforms[int]](ctx)
}

// aspect is a user-defined extractor.
type aspect float64

func (aspect) Extract(ctx *Context) aspect {
	r := ctx.Resolution()
	return aspect(r.X / r.Y)
}

func TestCustomExtractor(t *testing.T) {
	ctx := NewContext(gradient(8, 2), nil, 0, 0)
	if got := extract[aspect](ctx); got != 4 {
		t.Errorf("aspect = %v, want 4", got)
	}
}

func TestContext_Accessors(t *testing.T) {
	img := gradient(6, 4)
	ctx := NewContext(img, nil, 5, 3)

	if ctx.Width() != 6 || ctx.Height() != 4 {
		t.Errorf("Width, Height = %d, %d, want 6, 4", ctx.Width(), ctx.Height())
	}
	if ctx.Coord() != (UVec2{X: 5, Y: 3}) {
		t.Errorf("Coord() = %v, want (5, 3)", ctx.Coord())
	}
	want := V4(5.0/255, 3.0/255, 8.0/255, 1)
	if !ctx.Color().Approx(want, 1e-12) {
		t.Errorf("Color() = %v, want %v", ctx.Color(), want)
	}
	if got := ctx.Source().At(5, 3); !got.Approx(want, 1e-12) {
		t.Errorf("Source().At(5, 3) = %v, want %v", got, want)
	}
}
