package frag

import "fmt"

// Extractor is implemented by every type that can derive itself from a
// Context. Extract must be pure: it may read the context but must not
// retain it or mutate shared state, since it runs concurrently on every
// worker. The receiver is always the zero value.
//
// Any type with this method can be used as a parameter of a function passed
// to Fn1 through Fn9. For example, an aspect-ratio extractor:
//
//	type Aspect float64
//
//	func (Aspect) Extract(ctx *frag.Context) Aspect {
//		r := ctx.Resolution()
//		return Aspect(r.X / r.Y)
//	}
type Extractor[T any] interface {
	Extract(ctx *Context) T
}

// extract derives a T from ctx.
func extract[T Extractor[T]](ctx *Context) T {
	var zero T
	return zero.Extract(ctx)
}

// FragCoord is the integer coordinate of the pixel being shaded.
// (0, 0) is the top-left pixel.
type FragCoord struct {
	UVec2
}

// Extract implements Extractor.
func (FragCoord) Extract(ctx *Context) FragCoord {
	return FragCoord{ctx.coord}
}

// Resolution is the size of the source image in pixels, as floats.
type Resolution struct {
	Vec2
}

// Extract implements Extractor.
func (Resolution) Extract(ctx *Context) Resolution {
	return Resolution{ctx.Resolution()}
}

// UV is the pixel coordinate divided by the resolution. For every pixel of
// the image both components lie in [0, 1).
type UV struct {
	Vec2
}

// Extract implements Extractor.
func (UV) Extract(ctx *Context) UV {
	res := extract[Resolution](ctx)
	return UV{ctx.coord.Vec2().Div(res.Vec2)}
}

// FragColor is the input color of the pixel being shaded, normalized to
// [0, 1] per channel.
type FragColor struct {
	Vec4
}

// Extract implements Extractor.
func (FragColor) Extract(ctx *Context) FragColor {
	return FragColor{ctx.color}
}

// Uniforms is a copy of the App's uniform state. U must be the exact type
// the App was created with; asking for any other type panics with an error
// wrapping ErrUniformsType, which Run reports as a *PanicError.
//
// The copy is a plain Go assignment. Uniform types that are expensive to copy
// should be passed to New as a pointer and treated as read-only.
type Uniforms[U any] struct {
	Value U
}

// Extract implements Extractor.
func (Uniforms[U]) Extract(ctx *Context) Uniforms[U] {
	p, ok := ctx.uniforms.(*U)
	if !ok {
		var zero U
		panic(fmt.Errorf("%w: handler wants %T, app holds %T", ErrUniformsType, zero, ctx.uniforms))
	}
	return Uniforms[U]{Value: *p}
}
