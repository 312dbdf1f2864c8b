package color

// UnitToByte converts a normalized channel value to a byte.
//
// The value is scaled by 255 and rounded to the nearest integer. Values at
// or below 0 (and NaN) map to 0, values at or above 1 map to 255, so an
// out-of-range fragment output saturates instead of wrapping.
func UnitToByte(v float64) uint8 {
	// !(v > 0) also catches NaN.
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255.0 + 0.5)
}

// Unpack reads four RGBA bytes from p and returns them normalized.
// p must hold at least 4 bytes.
func Unpack(p []uint8) (r, g, b, a float64) {
	_ = p[3] // bounds check hint
	return unitLUT[p[0]], unitLUT[p[1]], unitLUT[p[2]], unitLUT[p[3]]
}

// Pack writes four normalized channels into dst as RGBA bytes.
// dst must hold at least 4 bytes.
func Pack(dst []uint8, r, g, b, a float64) {
	_ = dst[3] // bounds check hint
	dst[0] = UnitToByte(r)
	dst[1] = UnitToByte(g)
	dst[2] = UnitToByte(b)
	dst[3] = UnitToByte(a)
}
