// Package color converts between 8-bit channel bytes and the normalized
// [0,1] floating-point channels fragments operate on.
//
// Byte to unit conversion goes through a 256-entry lookup table built at
// init time; the reverse direction rounds to the nearest byte and clamps.
// No gamma or color-space transform is applied: channel values are treated
// as linear in both directions.
package color

// unitLUT maps a channel byte [0-255] to its normalized value [0.0-1.0].
// 256 entries, 2KB.
var unitLUT [256]float64

func init() {
	for i := range unitLUT {
		unitLUT[i] = float64(i) / 255.0
	}
}

// ByteToUnit converts a channel byte to a normalized float64 using the
// lookup table.
//
// Example:
//
//	v := ByteToUnit(255) // 1.0
func ByteToUnit(b uint8) float64 {
	return unitLUT[b]
}

// ByteToUnitSlow is the reference division used to validate the table.
func ByteToUnitSlow(b uint8) float64 {
	return float64(b) / 255.0
}
