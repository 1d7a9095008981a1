package drop

import "math"

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Smoothstep is the GLSL smoothstep: cubic ease 3x²-2x³ of x mapped from [edge0,edge1] and clamped to [0,1].
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge1 == edge0 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := clampF((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// unit clamps a coordinate into [0,1]; NaN maps to 0.
func unit(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return clampF(v, 0, 1)
}
