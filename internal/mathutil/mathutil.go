package mathutil

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Wrap folds v into the range [lo, hi), preserving the offset past either edge.
func Wrap(v, lo, hi float64) float64 {
	span := hi - lo
	for v < lo {
		v += span
	}
	for v >= hi {
		v -= span
	}
	return v
}

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}
