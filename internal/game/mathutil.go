package game

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// easeOut is a quadratic ease-out on t in [0,1].
func easeOut(t float64) float64 {
	t = clampF(t, 0, 1)
	return 1 - (1-t)*(1-t)
}
