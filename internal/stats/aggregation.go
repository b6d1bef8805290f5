package stats

// Mean calculates the arithmetic mean of a slice of float64 values.
// An empty slice has mean 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Sum returns the sum of all values
func Sum(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum
}

// Margin returns (sum(prices) - sum(costs)) / len(prices).
// It is 0 unless both slices hold observations.
func Margin(prices, costs []float64) float64 {
	if len(prices) == 0 || len(costs) == 0 {
		return 0
	}
	return (Sum(prices) - Sum(costs)) / float64(len(prices))
}

// SafeDiv divides, returning 0 for a zero denominator
func SafeDiv(num float64, den int) float64 {
	if den == 0 {
		return 0
	}
	return num / float64(den)
}
