package habits

import "math"

// mean returns the arithmetic mean of vs, or 0 for an empty slice.
func mean(vs []float64) float64 {
	if len(vs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vs {
		sum += v
	}
	return sum / float64(len(vs))
}

// stdDev returns the population standard deviation of vs, or 0 when fewer
// than two values are present.
func stdDev(vs []float64) float64 {
	if len(vs) < 2 {
		return 0
	}
	m := mean(vs)
	var sq float64
	for _, v := range vs {
		d := v - m
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(vs)))
}

// coefficientOfVariation returns stdDev/mean as a percentage, or 0 when the
// mean is 0.
func coefficientOfVariation(vs []float64) float64 {
	m := mean(vs)
	if m == 0 {
		return 0
	}
	return stdDev(vs) / m * 100
}
