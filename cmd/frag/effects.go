package main

import (
	"fmt"
	"sort"

	"github.com/gogpu/frag"
)

// state is the uniform block shared by every built-in effect.
type state struct {
	Frame   int
	Frames  int
	Ramp    [2]frag.Vec4
	Texture frag.Sampler
}

// progress returns Frame/Frames, or 1 outside batch mode.
func (s state) progress() float64 {
	if s.Frames <= 0 {
		return 1
	}
	return float64(s.Frame) / float64(s.Frames)
}

func luminance(c frag.Vec4) float64 {
	return (c.X + c.Y + c.Z) / 3
}

var effects = map[string]frag.Handler{
	"identity": frag.Fn1(func(c frag.FragColor) frag.Vec4 {
		return c.Vec4
	}),
	"uv": frag.Fn1(func(uv frag.UV) frag.Vec4 {
		return frag.RGBA(uv.X, uv.Y, 0, 1)
	}),
	"grayscale": frag.Fn1(func(c frag.FragColor) frag.Vec4 {
		l := luminance(c.Vec4)
		return frag.RGBA(l, l, l, c.W)
	}),
	"ramp": frag.Fn2(func(c frag.FragColor, u frag.Uniforms[state]) frag.Vec4 {
		return u.Value.Ramp[0].Lerp(u.Value.Ramp[1], luminance(c.Vec4))
	}),
	"fade": frag.Fn2(func(c frag.FragColor, u frag.Uniforms[state]) frag.Vec4 {
		return c.Scale(u.Value.progress()).WithAlpha(1)
	}),
	"texture": frag.Fn3(func(c frag.FragColor, uv frag.UV, u frag.Uniforms[state]) frag.Vec4 {
		return u.Value.Texture.Sample(uv.Vec2).Lerp(c.Vec4, uv.Y)
	}),
}

func effectNames() []string {
	names := make([]string, 0, len(effects))
	for name := range effects {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupEffect(name string) (frag.Handler, error) {
	h, ok := effects[name]
	if !ok {
		return nil, fmt.Errorf("unknown effect %q (have %v)", name, effectNames())
	}
	return h, nil
}
