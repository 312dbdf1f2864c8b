package frag

// Handler shades a single pixel: given the pixel's Context it returns the
// output color. Handlers are invoked concurrently from every worker and must
// not share mutable state between calls.
type Handler interface {
	Shade(ctx *Context) Vec4
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ctx *Context) Vec4

// Shade calls f(ctx).
func (f HandlerFunc) Shade(ctx *Context) Vec4 {
	return f(ctx)
}

type nopShader struct{}

func (nopShader) Shade(*Context) Vec4 { return Vec4{W: 1} }

// Nop is the zero-parameter placeholder handler. It ignores the context and
// always returns opaque black.
var Nop Handler = nopShader{}

// The FnN adapters turn a function of N extractor-typed parameters into a
// Handler. Parameter types are resolved at compile time; at run time each
// parameter is extracted from the shared Context in declaration order and
// the function is called exactly once per pixel.
//
//	func fade(c frag.FragColor, u frag.Uniforms[State]) frag.Vec4 {
//		k := float64(u.Value.Frame) / float64(u.Value.Frames)
//		return c.Scale(k).WithAlpha(1)
//	}
//
//	h := frag.Fn2(fade)

// Fn0 adapts a function with no parameters.
func Fn0(f func() Vec4) HandlerFunc {
	return func(*Context) Vec4 {
		return f()
	}
}

// Fn1 adapts a function of one extractor.
func Fn1[A Extractor[A]](f func(A) Vec4) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx))
	}
}

// Fn2 adapts a function of two extractors.
func Fn2[A Extractor[A], B Extractor[B]](f func(A, B) Vec4) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx))
	}
}

// Fn3 adapts a function of three extractors.
func Fn3[A Extractor[A], B Extractor[B], C Extractor[C]](f func(A, B, C) Vec4) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx))
	}
}

// Fn4 adapts a function of four extractors.
func Fn4[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D]](
	f func(A, B, C, D) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx))
	}
}

// Fn5 adapts a function of five extractors.
func Fn5[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D], E Extractor[E]](
	f func(A, B, C, D, E) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx),
			extract[E](ctx))
	}
}

// Fn6 adapts a function of six extractors.
func Fn6[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D], E Extractor[E],
	F Extractor[F]](
	f func(A, B, C, D, E, F) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx),
			extract[E](ctx), extract[F](ctx))
	}
}

// Fn7 adapts a function of seven extractors.
func Fn7[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D], E Extractor[E],
	F Extractor[F], G Extractor[G]](
	f func(A, B, C, D, E, F, G) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx),
			extract[E](ctx), extract[F](ctx), extract[G](ctx))
	}
}

// Fn8 adapts a function of eight extractors.
func Fn8[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D], E Extractor[E],
	F Extractor[F], G Extractor[G], H Extractor[H]](
	f func(A, B, C, D, E, F, G, H) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx),
			extract[E](ctx), extract[F](ctx), extract[G](ctx), extract[H](ctx))
	}
}

// Fn9 adapts a function of nine extractors.
func Fn9[A Extractor[A], B Extractor[B], C Extractor[C], D Extractor[D], E Extractor[E],
	F Extractor[F], G Extractor[G], H Extractor[H], I Extractor[I]](
	f func(A, B, C, D, E, F, G, H, I) Vec4,
) HandlerFunc {
	return func(ctx *Context) Vec4 {
		return f(extract[A](ctx), extract[B](ctx), extract[C](ctx), extract[D](ctx),
			extract[E](ctx), extract[F](ctx), extract[G](ctx), extract[H](ctx),
			extract[I](ctx))
	}
}
