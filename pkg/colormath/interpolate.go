package colormath

import "math"

// Ratio returns the gradient position of step within length visible
// characters: step/(length-1), or 0 when length <= 1.
func Ratio(length, step int) float64 {
	if length <= 1 {
		return 0
	}
	return float64(step) / float64(length-1)
}

// Interpolate returns the color at step of a linear gradient from start to
// end spread over length characters. Channels round to the nearest
// integer, ties to even.
func Interpolate(start, end RGB, length, step int) RGB {
	ratio := Ratio(length, step)
	return RGB{
		R: lerp(start.R, end.R, ratio),
		G: lerp(start.G, end.G, ratio),
		B: lerp(start.B, end.B, ratio),
	}
}

func lerp(a, b uint8, ratio float64) uint8 {
	v := math.RoundToEven(float64(a) + (float64(b)-float64(a))*ratio)
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}
