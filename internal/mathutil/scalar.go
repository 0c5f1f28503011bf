package mathutil

import "github.com/chewxy/math32"

// Lerp returns a·(1-t) + b·t. At t == 1 the result is exactly b.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// Wrap returns the truncated remainder of x / period, keeping the sign of x.
// A period that is not strictly positive leaves x unchanged.
func Wrap(x, period float32) float32 {
	if !(period > 0) || math32.IsInf(period, 1) {
		return x
	}
	return math32.Mod(x, period)
}
