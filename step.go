package frag

// Step returns 0 if x < edge and 1 otherwise.
func Step(edge, x float64) float64 {
	if x < edge {
		return 0
	}
	return 1
}

// Smoothstep performs Hermite interpolation between 0 and 1 as x moves from
// edge0 to edge1. x is clamped to the edges first.
func Smoothstep(edge0, edge1, x float64) float64 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Step applies Step per component, with edge as the per-component edge.
func (v Vec2) Step(edge Vec2) Vec2 {
	return Vec2{X: Step(edge.X, v.X), Y: Step(edge.Y, v.Y)}
}

// Smoothstep applies Smoothstep per component.
func (v Vec2) Smoothstep(edge0, edge1 Vec2) Vec2 {
	return Vec2{
		X: Smoothstep(edge0.X, edge1.X, v.X),
		Y: Smoothstep(edge0.Y, edge1.Y, v.Y),
	}
}

// Step applies Step per component, with edge as the per-component edge.
func (v Vec4) Step(edge Vec4) Vec4 {
	return Vec4{
		X: Step(edge.X, v.X),
		Y: Step(edge.Y, v.Y),
		Z: Step(edge.Z, v.Z),
		W: Step(edge.W, v.W),
	}
}

// Smoothstep applies Smoothstep per component.
func (v Vec4) Smoothstep(edge0, edge1 Vec4) Vec4 {
	return Vec4{
		X: Smoothstep(edge0.X, edge1.X, v.X),
		Y: Smoothstep(edge0.Y, edge1.Y, v.Y),
		Z: Smoothstep(edge0.Z, edge1.Z, v.Z),
		W: Smoothstep(edge0.W, edge1.W, v.W),
	}
}
